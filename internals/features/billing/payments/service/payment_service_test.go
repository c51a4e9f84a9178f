package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/billing/payments/model"
)

func TestReceiptNumberFor(t *testing.T) {
	assert.Equal(t, "RCP-2026-00001", ReceiptNumberFor(2026, 1))
	assert.Equal(t, "RCP-2026-00042", ReceiptNumberFor(2026, 42))

	// urut ketat per tahun
	prev := ""
	for seq := int64(1); seq <= 5; seq++ {
		cur := ReceiptNumberFor(2026, seq)
		assert.Greater(t, cur, prev)
		prev = cur
	}
}

func TestValidateRefund(t *testing.T) {
	confirmed := model.PaymentModel{
		PaymentStatus:      model.PaymentStatusConfirmed,
		PaymentAmountCents: 1_000_000,
	}

	t.Run("dalam batas", func(t *testing.T) {
		assert.NoError(t, ValidateRefund(confirmed, 400_000))
		assert.NoError(t, ValidateRefund(confirmed, 1_000_000))
	})

	t.Run("melebihi sisa ditolak 409", func(t *testing.T) {
		err := ValidateRefund(confirmed, 1_000_001)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
	})

	t.Run("nominal nol atau negatif ditolak", func(t *testing.T) {
		err := ValidateRefund(confirmed, 0)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	})

	t.Run("pending dan voided tidak bisa direfund", func(t *testing.T) {
		for _, st := range []string{model.PaymentStatusPending, model.PaymentStatusVoided} {
			p := confirmed
			p.PaymentStatus = st
			err := ValidateRefund(p, 100)
			var fe *fiber.Error
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, fiber.StatusConflict, fe.Code)
		}
	})

	t.Run("sisa setelah refund sebagian", func(t *testing.T) {
		p := confirmed
		p.PaymentRefundedCents = 700_000
		p.PaymentStatus = model.PaymentStatusPartiallyRefunded
		assert.NoError(t, ValidateRefund(p, 300_000))

		err := ValidateRefund(p, 300_001)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
	})
}

func TestApplyRefund(t *testing.T) {
	t.Run("refund sebagian", func(t *testing.T) {
		p := model.PaymentModel{
			PaymentStatus:      model.PaymentStatusConfirmed,
			PaymentAmountCents: 1_000_000,
		}
		require.NoError(t, ApplyRefund(&p, 400_000))
		assert.Equal(t, model.PaymentStatusPartiallyRefunded, p.PaymentStatus)
		assert.Equal(t, int64(400_000), p.PaymentRefundedCents)
		assert.Equal(t, int64(600_000), p.EffectiveCents())
	})

	t.Run("refund habis", func(t *testing.T) {
		p := model.PaymentModel{
			PaymentStatus:      model.PaymentStatusConfirmed,
			PaymentAmountCents: 1_000_000,
		}
		require.NoError(t, ApplyRefund(&p, 600_000))
		require.NoError(t, ApplyRefund(&p, 400_000))
		assert.Equal(t, model.PaymentStatusRefunded, p.PaymentStatus)
		assert.Zero(t, p.EffectiveCents())

		// sudah habis, refund lagi ditolak
		err := ApplyRefund(&p, 1)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
	})
}

func TestBuildReceipt(t *testing.T) {
	p := model.PaymentModel{
		PaymentID:          uuid.New(),
		PaymentInvoiceID:   uuid.New(),
		PaymentAmountCents: 1_000_000,
	}
	receivedBy := uuid.New()

	r := BuildReceipt(p, ReceiptNumberFor(2026, 7), receivedBy)
	assert.Equal(t, p.PaymentID, r.ReceiptPaymentID)
	// kwitansi merujuk ke pembayaran DAN invoice-nya
	assert.Equal(t, p.PaymentInvoiceID, r.ReceiptInvoiceID)
	assert.Equal(t, "RCP-2026-00007", r.ReceiptNumber)
	assert.Equal(t, int64(1_000_000), r.ReceiptAmountCents)
	assert.Equal(t, receivedBy, r.ReceiptReceivedBy)
}

func TestSumEffective(t *testing.T) {
	pays := []model.PaymentModel{
		{PaymentStatus: model.PaymentStatusConfirmed, PaymentAmountCents: 1_000_000},
		{PaymentStatus: model.PaymentStatusPartiallyRefunded, PaymentAmountCents: 500_000, PaymentRefundedCents: 200_000},
		{PaymentStatus: model.PaymentStatusVoided, PaymentAmountCents: 999_999},
		{PaymentStatus: model.PaymentStatusPending, PaymentAmountCents: 123_456},
		{PaymentStatus: model.PaymentStatusRefunded, PaymentAmountCents: 300_000, PaymentRefundedCents: 300_000},
	}
	// confirmed + (500k-200k); void/pending/refunded tidak dihitung
	assert.Equal(t, int64(1_300_000), SumEffective(pays))
}
