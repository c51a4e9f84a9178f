package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/constants"
)

func TestCanMatrix(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	guardian := Actor{UserID: uuid.New(), Role: constants.RoleGuardian, GuardianID: &ownerID}
	otherGuardian := Actor{UserID: uuid.New(), Role: constants.RoleGuardian, GuardianID: &otherID}
	registrar := Actor{UserID: uuid.New(), Role: constants.RoleRegistrar}
	cashier := Actor{UserID: uuid.New(), Role: constants.RoleCashier}
	superadmin := Actor{UserID: uuid.New(), Role: constants.RoleSuperAdmin}

	owned := func(kind ResourceKind) Resource {
		return Resource{Kind: kind, OwnerGuardianID: &ownerID}
	}

	tests := []struct {
		name   string
		actor  Actor
		action Action
		res    Resource
		want   bool
	}{
		// enrollment
		{"guardian membuat enrollment", guardian, ActionCreate, Resource{Kind: ResEnrollment}, true},
		{"registrar tidak membuat enrollment", registrar, ActionCreate, Resource{Kind: ResEnrollment}, false},
		{"guardian baca miliknya", guardian, ActionRead, owned(ResEnrollment), true},
		{"guardian lain tidak baca", otherGuardian, ActionRead, owned(ResEnrollment), false},
		{"registrar baca semua", registrar, ActionRead, owned(ResEnrollment), true},
		{"registrar approve", registrar, ActionApprove, owned(ResEnrollment), true},
		{"cashier tidak approve", cashier, ActionApprove, owned(ResEnrollment), false},
		{"guardian tidak approve miliknya sendiri", guardian, ActionApprove, owned(ResEnrollment), false},
		{"registrar complete", registrar, ActionComplete, owned(ResEnrollment), true},
		{"guardian update miliknya (reply-info)", guardian, ActionUpdate, owned(ResEnrollment), true},

		// invoice
		{"cashier membuat invoice", cashier, ActionCreate, Resource{Kind: ResInvoice}, true},
		{"guardian tidak membuat invoice", guardian, ActionCreate, Resource{Kind: ResInvoice}, false},
		{"guardian bayar invoice miliknya", guardian, ActionPay, owned(ResInvoice), true},
		{"guardian lain tidak bayar", otherGuardian, ActionPay, owned(ResInvoice), false},
		{"cashier catat bayar", cashier, ActionPay, owned(ResInvoice), true},

		// payment
		{"cashier refund", cashier, ActionRefund, Resource{Kind: ResPayment}, true},
		{"guardian tidak refund", guardian, ActionRefund, owned(ResPayment), false},
		{"guardian baca pembayarannya", guardian, ActionRead, owned(ResPayment), true},

		// receipt
		{"guardian baca kwitansinya", guardian, ActionRead, owned(ResReceipt), true},
		{"cashier terbitkan kwitansi", cashier, ActionCreate, Resource{Kind: ResReceipt}, true},

		// referensi akademik
		{"semua baca tarif", guardian, ActionRead, Resource{Kind: ResGradeLevelFee}, true},
		{"guardian tidak ubah tarif", guardian, ActionUpdate, Resource{Kind: ResGradeLevelFee}, false},
		{"registrar kelola tahun ajaran", registrar, ActionCreate, Resource{Kind: ResSchoolYear}, true},
		{"cashier tidak kelola periode", cashier, ActionDelete, Resource{Kind: ResEnrollmentPeriod}, false},

		// student/guardian
		{"guardian ubah profilnya", guardian, ActionUpdate, owned(ResGuardian), true},
		{"guardian tambah siswa", guardian, ActionCreate, Resource{Kind: ResStudent}, true},
		{"guardian tidak hapus siswa", guardian, ActionDelete, owned(ResStudent), false},

		// user management
		{"registrar tidak kelola user", registrar, ActionUpdate, Resource{Kind: ResUser}, false},

		// superadmin selalu boleh
		{"superadmin approve", superadmin, ActionApprove, owned(ResEnrollment), true},
		{"superadmin kelola user", superadmin, ActionDelete, Resource{Kind: ResUser}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Can(tt.actor, tt.action, tt.res))
		})
	}
}

func TestIsStaff(t *testing.T) {
	assert.True(t, Actor{Role: constants.RoleRegistrar}.IsStaff())
	assert.True(t, Actor{Role: constants.RoleCashier}.IsStaff())
	assert.True(t, Actor{Role: constants.RoleSuperAdmin}.IsStaff())
	assert.False(t, Actor{Role: constants.RoleGuardian}.IsStaff())
}
