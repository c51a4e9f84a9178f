package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Metode pembayaran
const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodGateway      = "gateway"
	PaymentMethodQRIS         = "qris"
	PaymentMethodOther        = "other"
)

// Status pembayaran
const (
	PaymentStatusPending           = "pending"
	PaymentStatusConfirmed         = "confirmed"
	PaymentStatusPartiallyRefunded = "partially_refunded"
	PaymentStatusRefunded          = "refunded"
	PaymentStatusVoided            = "voided"
)

// PaymentModel: satu pembayaran terhadap invoice. Nominal sen.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentInvoiceID  uuid.UUID `gorm:"column:payment_invoice_id;type:uuid;not null;index" json:"payment_invoice_id"`
	PaymentGuardianID uuid.UUID `gorm:"column:payment_guardian_id;type:uuid;not null;index" json:"payment_guardian_id"`

	PaymentAmountCents   int64 `gorm:"column:payment_amount_cents;not null" json:"payment_amount_cents"`
	PaymentRefundedCents int64 `gorm:"column:payment_refunded_cents;not null;default:0" json:"payment_refunded_cents"`

	PaymentMethod string `gorm:"column:payment_method;size:16;not null" json:"payment_method"`
	PaymentStatus string `gorm:"column:payment_status;size:20;not null;default:'pending';index" json:"payment_status"`

	// Kunci idempoten dari klien; submit ganda mengembalikan baris yang sama
	PaymentIdempotencyKey *string `gorm:"column:payment_idempotency_key;size:64;uniqueIndex" json:"payment_idempotency_key,omitempty"`

	PaymentProcessedBy *uuid.UUID `gorm:"column:payment_processed_by;type:uuid" json:"payment_processed_by,omitempty"`
	PaymentPaidAt      *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentNotes       *string    `gorm:"column:payment_notes;size:255" json:"payment_notes,omitempty"`

	// Field gateway (midtrans)
	PaymentGatewayOrderID *string           `gorm:"column:payment_gateway_order_id;size:64;index" json:"payment_gateway_order_id,omitempty"`
	PaymentGatewayToken   *string           `gorm:"column:payment_gateway_token;size:128" json:"payment_gateway_token,omitempty"`
	PaymentGatewayPayload datatypes.JSONMap `gorm:"column:payment_gateway_payload;type:jsonb" json:"payment_gateway_payload,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }

// RefundableCents: sisa yang masih bisa direfund dari pembayaran ini.
func (m *PaymentModel) RefundableCents() int64 {
	if m.PaymentStatus == PaymentStatusVoided || m.PaymentStatus == PaymentStatusPending {
		return 0
	}
	return m.PaymentAmountCents - m.PaymentRefundedCents
}

// EffectiveCents: kontribusi bersih ke paid_cents invoice.
func (m *PaymentModel) EffectiveCents() int64 {
	switch m.PaymentStatus {
	case PaymentStatusConfirmed, PaymentStatusPartiallyRefunded, PaymentStatusRefunded:
		return m.PaymentAmountCents - m.PaymentRefundedCents
	default:
		return 0
	}
}
