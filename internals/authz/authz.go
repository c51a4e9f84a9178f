// Package authz memusatkan cek izin sebagai fungsi murni
// (actor, action, resource) → allow/deny, supaya bisa dites tanpa HTTP.
package authz

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

type Action string

const (
	ActionCreate   Action = "create"
	ActionRead     Action = "read"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
	ActionPay      Action = "pay"
	ActionRefund   Action = "refund"
)

type ResourceKind string

const (
	ResEnrollment       ResourceKind = "enrollment"
	ResInvoice          ResourceKind = "invoice"
	ResPayment          ResourceKind = "payment"
	ResReceipt          ResourceKind = "receipt"
	ResGradeLevelFee    ResourceKind = "grade_level_fee"
	ResSchoolYear       ResourceKind = "school_year"
	ResEnrollmentPeriod ResourceKind = "enrollment_period"
	ResStudent          ResourceKind = "student"
	ResGuardian         ResourceKind = "guardian"
	ResUser             ResourceKind = "user"
)

// Actor: siapa yang melakukan aksi, diambil dari token.
type Actor struct {
	UserID     uuid.UUID
	Role       string
	GuardianID *uuid.UUID
}

// Resource: apa yang dikenai aksi. OwnerGuardianID diisi untuk
// entitas milik guardian (enrollment, invoice, payment miliknya).
type Resource struct {
	Kind            ResourceKind
	OwnerGuardianID *uuid.UUID
}

// IsStaff: registrar, cashier, atau superadmin.
func (a Actor) IsStaff() bool {
	switch a.Role {
	case constants.RoleRegistrar, constants.RoleCashier, constants.RoleSuperAdmin:
		return true
	}
	return false
}

func (a Actor) owns(r Resource) bool {
	if a.GuardianID == nil || r.OwnerGuardianID == nil {
		return false
	}
	return *a.GuardianID == *r.OwnerGuardianID
}

// Can memutuskan satu aksi. Matrix-nya sengaja eksplisit per resource
// supaya gampang diaudit; default deny.
func Can(a Actor, action Action, r Resource) bool {
	if a.Role == constants.RoleSuperAdmin {
		return true
	}

	switch r.Kind {
	case ResEnrollment:
		switch action {
		case ActionCreate:
			return a.Role == constants.RoleGuardian
		case ActionRead:
			return a.IsStaff() || a.owns(r)
		case ActionUpdate:
			// guardian hanya lewat alur reply-info; staf registrar bebas
			return a.Role == constants.RoleRegistrar || a.owns(r)
		case ActionApprove, ActionReject, ActionComplete, ActionDelete:
			return a.Role == constants.RoleRegistrar
		}

	case ResInvoice:
		switch action {
		case ActionRead:
			return a.IsStaff() || a.owns(r)
		case ActionCreate, ActionUpdate, ActionDelete:
			return a.Role == constants.RoleRegistrar || a.Role == constants.RoleCashier
		case ActionPay:
			// guardian bayar invoice miliknya via gateway, cashier catat manual
			return a.Role == constants.RoleCashier || a.owns(r)
		}

	case ResPayment:
		switch action {
		case ActionRead:
			return a.IsStaff() || a.owns(r)
		case ActionCreate, ActionUpdate, ActionDelete, ActionRefund:
			return a.Role == constants.RoleCashier || a.Role == constants.RoleRegistrar
		}

	case ResReceipt:
		switch action {
		case ActionRead:
			return a.IsStaff() || a.owns(r)
		case ActionCreate:
			return a.Role == constants.RoleCashier || a.Role == constants.RoleRegistrar
		}

	case ResGradeLevelFee, ResSchoolYear, ResEnrollmentPeriod:
		switch action {
		case ActionRead:
			return true // tabel harga & periode boleh dibaca semua yang login
		case ActionCreate, ActionUpdate, ActionDelete:
			return a.Role == constants.RoleRegistrar
		}

	case ResStudent, ResGuardian:
		switch action {
		case ActionRead, ActionUpdate:
			return a.IsStaff() || a.owns(r)
		case ActionCreate, ActionDelete:
			return a.Role == constants.RoleRegistrar || a.Role == constants.RoleGuardian && action == ActionCreate
		}

	case ResUser:
		// manajemen akun murni superadmin (sudah ditangani di atas)
		return false
	}

	return false
}
