package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feemodel "sekolahku_backend/internals/features/academics/fees/model"
	"sekolahku_backend/internals/features/enrollment/admissions/model"
)

var now = time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

func newEnrollment() *model.EnrollmentModel {
	return &model.EnrollmentModel{
		EnrollmentStatus:             model.EnrollmentStatusPending,
		EnrollmentPaymentTerms:       feemodel.PaymentTermsMonthly,
		EnrollmentTuitionCents:       2_050_000,
		EnrollmentMiscellaneousCents: 650_000,
		EnrollmentDownPaymentCents:   410_000 + 650_000,
	}
}

func TestRecalcTotalsInvariants(t *testing.T) {
	e := newEnrollment()
	e.EnrollmentDiscountCents = 200_000
	e.EnrollmentAmountPaidCents = 1_000_000
	RecalcTotals(e, now)

	assert.Equal(t, int64(2_700_000), e.EnrollmentTotalCents)
	assert.Equal(t, int64(2_500_000), e.EnrollmentNetCents)
	assert.Equal(t, int64(1_500_000), e.EnrollmentBalanceCents)
	assert.Equal(t, model.PaymentStatusPartial, e.EnrollmentPaymentStatus)
}

func TestRecalcTotalsOverpaymentNotClamped(t *testing.T) {
	e := newEnrollment()
	e.EnrollmentAmountPaidCents = 3_000_000
	RecalcTotals(e, now)

	assert.Equal(t, int64(-300_000), e.EnrollmentBalanceCents)
	assert.Equal(t, model.PaymentStatusPaid, e.EnrollmentPaymentStatus)
}

func TestDerivePaymentStatus(t *testing.T) {
	past := now.AddDate(0, 0, -3)
	future := now.AddDate(0, 0, 3)

	tests := []struct {
		name    string
		paid    int64
		due     *time.Time
		want    string
	}{
		{"belum bayar", 0, nil, model.PaymentStatusPending},
		{"bayar sebagian", 1_000_000, nil, model.PaymentStatusPartial},
		{"lunas", 2_700_000, nil, model.PaymentStatusPaid},
		{"lewat due date belum bayar", 0, &past, model.PaymentStatusOverdue},
		{"lewat due date bayar sebagian", 1_000_000, &past, model.PaymentStatusOverdue},
		{"lewat due date tapi lunas tetap paid", 2_700_000, &past, model.PaymentStatusPaid},
		{"due date masih jauh", 1_000_000, &future, model.PaymentStatusPartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnrollment()
			e.EnrollmentAmountPaidCents = tt.paid
			e.EnrollmentPaymentDueDate = tt.due
			RecalcTotals(e, now)
			assert.Equal(t, tt.want, e.EnrollmentPaymentStatus)
		})
	}
}

func TestApprove(t *testing.T) {
	registrar := uuid.New()

	t.Run("pending belum bayar jadi ready_for_payment", func(t *testing.T) {
		e := newEnrollment()
		RecalcTotals(e, now)
		require.NoError(t, Approve(e, registrar, now))
		assert.Equal(t, model.EnrollmentStatusReadyForPayment, e.EnrollmentStatus)
		require.NotNil(t, e.EnrollmentApprovedBy)
		assert.Equal(t, registrar, *e.EnrollmentApprovedBy)
		assert.Equal(t, now, *e.EnrollmentApprovedAt)
	})

	t.Run("pending sudah lunas langsung enrolled", func(t *testing.T) {
		e := newEnrollment()
		e.EnrollmentAmountPaidCents = 2_700_000
		RecalcTotals(e, now)
		require.NoError(t, Approve(e, registrar, now))
		assert.Equal(t, model.EnrollmentStatusEnrolled, e.EnrollmentStatus)
	})

	t.Run("approve dua kali ditolak 409 tanpa perubahan", func(t *testing.T) {
		e := newEnrollment()
		RecalcTotals(e, now)
		require.NoError(t, Approve(e, registrar, now))
		before := *e

		err := Approve(e, registrar, now.Add(time.Hour))
		require.Error(t, err)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
		assert.Equal(t, before, *e)
	})
}

func TestReject(t *testing.T) {
	registrar := uuid.New()

	t.Run("pending dengan alasan", func(t *testing.T) {
		e := newEnrollment()
		require.NoError(t, Reject(e, registrar, "  berkas tidak lengkap  ", now))
		assert.Equal(t, model.EnrollmentStatusRejected, e.EnrollmentStatus)
		assert.Equal(t, "berkas tidak lengkap", *e.EnrollmentRemarks)
		assert.Equal(t, registrar.String(), e.EnrollmentInfoMeta["rejected_by"])
		assert.NotNil(t, e.EnrollmentRejectedAt)
	})

	t.Run("tanpa alasan ditolak", func(t *testing.T) {
		e := newEnrollment()
		err := Reject(e, registrar, "   ", now)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, model.EnrollmentStatusPending, e.EnrollmentStatus)
	})

	t.Run("alasan kepanjangan ditolak", func(t *testing.T) {
		e := newEnrollment()
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'x'
		}
		err := Reject(e, registrar, string(long), now)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	})

	t.Run("rejected terminal", func(t *testing.T) {
		e := newEnrollment()
		require.NoError(t, Reject(e, registrar, "alasan", now))
		err := Approve(e, registrar, now)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
	})
}

func TestRequestInfoRoundTrip(t *testing.T) {
	registrar := uuid.New()

	e := newEnrollment()
	RecalcTotals(e, now)
	require.NoError(t, Approve(e, registrar, now))
	require.Equal(t, model.EnrollmentStatusReadyForPayment, e.EnrollmentStatus)

	// approved ditarik balik ke pending
	require.NoError(t, RequestInfo(e, registrar, "lampirkan akta kelahiran", now))
	assert.Equal(t, model.EnrollmentStatusPending, e.EnrollmentStatus)
	assert.Equal(t, "lampirkan akta kelahiran", *e.EnrollmentInfoRequestMessage)
	assert.Nil(t, e.EnrollmentInfoReplyMessage)

	require.NoError(t, ReplyInfo(e, "sudah diunggah", now.Add(time.Hour)))
	assert.Equal(t, "sudah diunggah", *e.EnrollmentInfoReplyMessage)

	// masih pending, bisa disetujui lagi
	require.NoError(t, Approve(e, registrar, now.Add(2*time.Hour)))
}

func TestReplyInfoWithoutRequest(t *testing.T) {
	e := newEnrollment()
	err := ReplyInfo(e, "halo", now)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestRequestInfoOnTerminal(t *testing.T) {
	registrar := uuid.New()
	e := newEnrollment()
	require.NoError(t, Reject(e, registrar, "alasan", now))

	err := RequestInfo(e, registrar, "tolong lengkapi", now)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestMarkEnrolled(t *testing.T) {
	registrar := uuid.New()

	t.Run("monthly cukup uang muka", func(t *testing.T) {
		e := newEnrollment()
		RecalcTotals(e, now)
		require.NoError(t, Approve(e, registrar, now))

		e.EnrollmentAmountPaidCents = 1_060_000 // == uang muka
		RecalcTotals(e, now)
		require.NoError(t, MarkEnrolled(e))
		assert.Equal(t, model.EnrollmentStatusEnrolled, e.EnrollmentStatus)
	})

	t.Run("annual harus lunas", func(t *testing.T) {
		e := newEnrollment()
		e.EnrollmentPaymentTerms = feemodel.PaymentTermsAnnual
		RecalcTotals(e, now)
		require.NoError(t, Approve(e, registrar, now))

		e.EnrollmentAmountPaidCents = 2_000_000
		RecalcTotals(e, now)
		err := MarkEnrolled(e)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusConflict, fe.Code)

		e.EnrollmentAmountPaidCents = 2_700_000
		RecalcTotals(e, now)
		require.NoError(t, MarkEnrolled(e))
	})

	t.Run("belum memenuhi uang muka ditolak", func(t *testing.T) {
		e := newEnrollment()
		RecalcTotals(e, now)
		require.NoError(t, Approve(e, registrar, now))

		e.EnrollmentAmountPaidCents = 500_000
		RecalcTotals(e, now)
		err := MarkEnrolled(e)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
	})
}

func TestComplete(t *testing.T) {
	registrar := uuid.New()

	t.Run("enrolled dan lunas", func(t *testing.T) {
		e := newEnrollment()
		e.EnrollmentAmountPaidCents = 2_700_000
		RecalcTotals(e, now)
		require.NoError(t, Approve(e, registrar, now))
		require.Equal(t, model.EnrollmentStatusEnrolled, e.EnrollmentStatus)

		require.NoError(t, Complete(e))
		assert.Equal(t, model.EnrollmentStatusCompleted, e.EnrollmentStatus)
	})

	t.Run("enrolled belum lunas ditolak", func(t *testing.T) {
		e := newEnrollment()
		RecalcTotals(e, now)
		require.NoError(t, Approve(e, registrar, now))
		ApplyPaymentDelta(e, 1_060_000, now)
		require.Equal(t, model.EnrollmentStatusEnrolled, e.EnrollmentStatus)

		err := Complete(e)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
		assert.Equal(t, model.EnrollmentStatusEnrolled, e.EnrollmentStatus)
	})

	t.Run("completed terminal", func(t *testing.T) {
		e := newEnrollment()
		e.EnrollmentAmountPaidCents = 2_700_000
		RecalcTotals(e, now)
		require.NoError(t, Approve(e, registrar, now))
		require.NoError(t, Complete(e))

		err := Complete(e)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
	})
}

func TestApplyPaymentDelta(t *testing.T) {
	registrar := uuid.New()

	t.Run("contoh pembayaran sebagian", func(t *testing.T) {
		e := newEnrollment()
		RecalcTotals(e, now)
		ApplyPaymentDelta(e, 1_000_000, now)
		assert.Equal(t, int64(1_700_000), e.EnrollmentBalanceCents)
		assert.Equal(t, model.PaymentStatusPartial, e.EnrollmentPaymentStatus)
	})

	t.Run("ready_for_payment naik otomatis ke enrolled", func(t *testing.T) {
		e := newEnrollment()
		RecalcTotals(e, now)
		require.NoError(t, Approve(e, registrar, now))

		ApplyPaymentDelta(e, 1_060_000, now)
		assert.Equal(t, model.EnrollmentStatusEnrolled, e.EnrollmentStatus)
	})

	t.Run("delta negatif mengembalikan status pembayaran", func(t *testing.T) {
		e := newEnrollment()
		e.EnrollmentAmountPaidCents = 2_700_000
		RecalcTotals(e, now)
		require.Equal(t, model.PaymentStatusPaid, e.EnrollmentPaymentStatus)

		ApplyPaymentDelta(e, -1_700_000, now)
		assert.Equal(t, int64(1_000_000), e.EnrollmentAmountPaidCents)
		assert.Equal(t, model.PaymentStatusPartial, e.EnrollmentPaymentStatus)
	})
}
