package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRefundModel: satu refund atas satu pembayaran, baris terpisah
// supaya nominal asli dan yang dikembalikan tetap bisa diaudit.
type PaymentRefundModel struct {
	PaymentRefundID        uuid.UUID `gorm:"column:payment_refund_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_refund_id"`
	PaymentRefundPaymentID uuid.UUID `gorm:"column:payment_refund_payment_id;type:uuid;not null;index" json:"payment_refund_payment_id"`

	PaymentRefundAmountCents int64  `gorm:"column:payment_refund_amount_cents;not null" json:"payment_refund_amount_cents"`
	PaymentRefundReason      string `gorm:"column:payment_refund_reason;size:255;not null" json:"payment_refund_reason"`

	PaymentRefundRefundedBy uuid.UUID `gorm:"column:payment_refund_refunded_by;type:uuid;not null" json:"payment_refund_refunded_by"`

	PaymentRefundCreatedAt time.Time `gorm:"column:payment_refund_created_at;autoCreateTime" json:"payment_refund_created_at"`
}

func (PaymentRefundModel) TableName() string { return "payment_refunds" }
