package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	feemodel "sekolahku_backend/internals/features/academics/fees/model"
	feeservice "sekolahku_backend/internals/features/academics/fees/service"
	"sekolahku_backend/internals/features/enrollment/admissions/model"
)

const maxRemarksLen = 500

// SeedFees: salin snapshot biaya dari tarif ke enrollment, lalu hitung ulang.
func SeedFees(e *model.EnrollmentModel, fee feemodel.GradeLevelFeeModel) {
	e.EnrollmentTuitionCents = fee.GradeLevelFeeTuitionCents
	e.EnrollmentMiscellaneousCents = fee.GradeLevelFeeMiscellaneousCents
	e.EnrollmentLaboratoryCents = fee.GradeLevelFeeLaboratoryCents
	e.EnrollmentLibraryCents = fee.GradeLevelFeeLibraryCents
	e.EnrollmentSportsCents = fee.GradeLevelFeeSportsCents
	e.EnrollmentOtherCents = fee.GradeLevelFeeOtherCents
	e.EnrollmentDownPaymentCents = fee.GradeLevelFeeDownPaymentCents
	RecalcTotals(e, time.Now())
}

// RecalcTotals: tegakkan invariant total/net/balance lalu turunkan
// payment_status. Panggil setelah SETIAP mutasi nominal.
func RecalcTotals(e *model.EnrollmentModel, now time.Time) {
	e.EnrollmentTotalCents = feeservice.ComputeTotal(feeservice.FeeComponents{
		TuitionCents:       e.EnrollmentTuitionCents,
		MiscellaneousCents: e.EnrollmentMiscellaneousCents,
		LaboratoryCents:    e.EnrollmentLaboratoryCents,
		LibraryCents:       e.EnrollmentLibraryCents,
		SportsCents:        e.EnrollmentSportsCents,
		OtherCents:         e.EnrollmentOtherCents,
	})
	e.EnrollmentNetCents = feeservice.ComputeNet(e.EnrollmentTotalCents, e.EnrollmentDiscountCents)
	// balance boleh negatif (kelebihan bayar), jangan di-clamp
	e.EnrollmentBalanceCents = e.EnrollmentNetCents - e.EnrollmentAmountPaidCents
	e.EnrollmentPaymentStatus = DerivePaymentStatus(e, now)
}

// DerivePaymentStatus: paid kalau balance <= 0; partial kalau sudah ada
// pembayaran; selain itu pending. Lewat due date dan masih ada sisa ->
// overdue (menimpa pending/partial, tidak pernah menimpa paid).
func DerivePaymentStatus(e *model.EnrollmentModel, now time.Time) string {
	if e.EnrollmentBalanceCents <= 0 {
		return model.PaymentStatusPaid
	}
	if e.EnrollmentPaymentDueDate != nil && now.After(*e.EnrollmentPaymentDueDate) {
		return model.PaymentStatusOverdue
	}
	if e.EnrollmentAmountPaidCents > 0 {
		return model.PaymentStatusPartial
	}
	return model.PaymentStatusPending
}

/* ===================== State machine ===================== */

// Approve: pending -> ready_for_payment (atau langsung enrolled kalau
// sudah lunas). Status lain -> 409 tanpa perubahan.
func Approve(e *model.EnrollmentModel, registrarID uuid.UUID, now time.Time) error {
	if e.EnrollmentStatus != model.EnrollmentStatusPending {
		return fiber.NewError(fiber.StatusConflict,
			"Enrollment berstatus "+e.EnrollmentStatus+", hanya pending yang bisa disetujui")
	}
	if e.IsFullyPaid() {
		e.EnrollmentStatus = model.EnrollmentStatusEnrolled
	} else {
		e.EnrollmentStatus = model.EnrollmentStatusReadyForPayment
	}
	e.EnrollmentApprovedBy = &registrarID
	e.EnrollmentApprovedAt = &now
	return nil
}

// Reject: pending -> rejected (terminal), alasan wajib.
func Reject(e *model.EnrollmentModel, registrarID uuid.UUID, reason string, now time.Time) error {
	if e.EnrollmentStatus != model.EnrollmentStatusPending {
		return fiber.NewError(fiber.StatusConflict,
			"Enrollment berstatus "+e.EnrollmentStatus+", hanya pending yang bisa ditolak")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Alasan penolakan wajib diisi")
	}
	if len(reason) > maxRemarksLen {
		return fiber.NewError(fiber.StatusBadRequest, "Alasan penolakan maksimal 500 karakter")
	}
	e.EnrollmentStatus = model.EnrollmentStatusRejected
	e.EnrollmentRejectedAt = &now
	e.EnrollmentRemarks = &reason
	e.EnrollmentInfoMeta = mergeMeta(e.EnrollmentInfoMeta, datatypes.JSONMap{
		"rejected_by": registrarID.String(),
		"rejected_at": now.UTC().Format(time.RFC3339),
	})
	return nil
}

// RequestInfo: registrar minta kelengkapan; enrollment approved pun
// ditarik balik ke pending sampai guardian membalas.
func RequestInfo(e *model.EnrollmentModel, registrarID uuid.UUID, message string, now time.Time) error {
	if e.IsTerminal() {
		return fiber.NewError(fiber.StatusConflict, "Enrollment sudah final, tidak bisa diminta kelengkapan")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Pesan permintaan wajib diisi")
	}
	if len(message) > maxRemarksLen {
		return fiber.NewError(fiber.StatusBadRequest, "Pesan maksimal 500 karakter")
	}
	e.EnrollmentStatus = model.EnrollmentStatusPending
	e.EnrollmentInfoRequestMessage = &message
	e.EnrollmentInfoReplyMessage = nil
	e.EnrollmentInfoMeta = mergeMeta(e.EnrollmentInfoMeta, datatypes.JSONMap{
		"info_requested_by": registrarID.String(),
		"info_requested_at": now.UTC().Format(time.RFC3339),
	})
	return nil
}

// ReplyInfo: balasan guardian atas permintaan kelengkapan.
func ReplyInfo(e *model.EnrollmentModel, reply string, now time.Time) error {
	if e.EnrollmentInfoRequestMessage == nil {
		return fiber.NewError(fiber.StatusConflict, "Tidak ada permintaan kelengkapan yang menunggu balasan")
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Balasan wajib diisi")
	}
	if len(reply) > maxRemarksLen {
		return fiber.NewError(fiber.StatusBadRequest, "Balasan maksimal 500 karakter")
	}
	e.EnrollmentInfoReplyMessage = &reply
	e.EnrollmentInfoMeta = mergeMeta(e.EnrollmentInfoMeta, datatypes.JSONMap{
		"info_replied_at": now.UTC().Format(time.RFC3339),
	})
	return nil
}

// MarkEnrolled: ready_for_payment -> enrolled setelah pembayaran
// terkonfirmasi. Annual harus lunas; semestral/monthly cukup uang muka.
func MarkEnrolled(e *model.EnrollmentModel) error {
	if e.EnrollmentStatus != model.EnrollmentStatusReadyForPayment {
		return fiber.NewError(fiber.StatusConflict,
			"Enrollment berstatus "+e.EnrollmentStatus+", hanya ready_for_payment yang bisa masuk enrolled")
	}
	if !DownPaymentSatisfied(e) {
		return fiber.NewError(fiber.StatusConflict, "Pembayaran belum memenuhi syarat minimum")
	}
	e.EnrollmentStatus = model.EnrollmentStatusEnrolled
	return nil
}

// DownPaymentSatisfied: lunas selalu memenuhi; untuk skema non-annual
// cukup amount_paid >= uang muka.
func DownPaymentSatisfied(e *model.EnrollmentModel) bool {
	if e.IsFullyPaid() {
		return true
	}
	if e.EnrollmentPaymentTerms == feemodel.PaymentTermsAnnual {
		return false
	}
	return e.EnrollmentDownPaymentCents > 0 &&
		e.EnrollmentAmountPaidCents >= e.EnrollmentDownPaymentCents
}

// Complete: enrolled + paid -> completed (terminal).
func Complete(e *model.EnrollmentModel) error {
	if e.EnrollmentStatus != model.EnrollmentStatusEnrolled {
		return fiber.NewError(fiber.StatusConflict,
			"Enrollment berstatus "+e.EnrollmentStatus+", hanya enrolled yang bisa diselesaikan")
	}
	if e.EnrollmentPaymentStatus != model.PaymentStatusPaid {
		return fiber.NewError(fiber.StatusConflict, "Pembayaran belum lunas, enrollment belum bisa diselesaikan")
	}
	e.EnrollmentStatus = model.EnrollmentStatusCompleted
	return nil
}

// ApplyPaymentDelta: dipanggil modul pembayaran saat ada pembayaran
// baru / void / refund terhadap enrollment ini (delta boleh negatif).
// Setelah recalc, ready_for_payment naik sendiri ke enrolled begitu
// syarat minimum terpenuhi.
func ApplyPaymentDelta(e *model.EnrollmentModel, deltaCents int64, now time.Time) {
	e.EnrollmentAmountPaidCents += deltaCents
	RecalcTotals(e, now)
	if e.EnrollmentStatus == model.EnrollmentStatusReadyForPayment && DownPaymentSatisfied(e) {
		e.EnrollmentStatus = model.EnrollmentStatusEnrolled
	}
}

func mergeMeta(dst, src datatypes.JSONMap) datatypes.JSONMap {
	if dst == nil {
		dst = datatypes.JSONMap{}
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
