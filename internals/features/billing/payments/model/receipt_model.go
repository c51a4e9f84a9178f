package model

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptModel: kwitansi resmi per pembayaran terkonfirmasi.
// Nomor urut per tahun, tidak pernah dipakai ulang.
type ReceiptModel struct {
	ReceiptID        uuid.UUID `gorm:"column:receipt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"receipt_id"`
	ReceiptPaymentID uuid.UUID `gorm:"column:receipt_payment_id;type:uuid;not null;uniqueIndex" json:"receipt_payment_id"`
	ReceiptInvoiceID uuid.UUID `gorm:"column:receipt_invoice_id;type:uuid;not null;index" json:"receipt_invoice_id"`

	ReceiptNumber      string    `gorm:"column:receipt_number;size:20;not null;uniqueIndex" json:"receipt_number"`
	ReceiptAmountCents int64     `gorm:"column:receipt_amount_cents;not null" json:"receipt_amount_cents"`
	ReceiptReceivedBy  uuid.UUID `gorm:"column:receipt_received_by;type:uuid;not null" json:"receipt_received_by"`

	ReceiptIssuedAt  time.Time `gorm:"column:receipt_issued_at;autoCreateTime" json:"receipt_issued_at"`
	ReceiptCreatedAt time.Time `gorm:"column:receipt_created_at;autoCreateTime" json:"receipt_created_at"`
}

func (ReceiptModel) TableName() string { return "receipts" }
