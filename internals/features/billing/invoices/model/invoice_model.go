package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status dasar invoice (yang tersimpan bisa berupa turunan pembayaran)
const (
	InvoiceStatusDraft         = "draft"
	InvoiceStatusSent          = "sent"
	InvoiceStatusPartiallyPaid = "partially_paid"
	InvoiceStatusPaid          = "paid"
	InvoiceStatusOverdue       = "overdue"
	InvoiceStatusCancelled     = "cancelled"
)

// InvoiceModel: tagihan resmi untuk satu enrollment. Nominal sen.
type InvoiceModel struct {
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invoice_id"`

	InvoiceEnrollmentID uuid.UUID `gorm:"column:invoice_enrollment_id;type:uuid;not null;index" json:"invoice_enrollment_id"`
	InvoiceGuardianID   uuid.UUID `gorm:"column:invoice_guardian_id;type:uuid;not null;index" json:"invoice_guardian_id"`

	InvoiceNumber string `gorm:"column:invoice_number;size:30;not null;uniqueIndex" json:"invoice_number"`
	InvoiceStatus string `gorm:"column:invoice_status;size:16;not null;default:'draft';index" json:"invoice_status"`

	InvoiceTotalCents int64 `gorm:"column:invoice_total_cents;not null;default:0" json:"invoice_total_cents"`
	InvoicePaidCents  int64 `gorm:"column:invoice_paid_cents;not null;default:0" json:"invoice_paid_cents"`

	InvoiceDueDate  *time.Time `gorm:"column:invoice_due_date;type:date" json:"invoice_due_date,omitempty"`
	InvoiceIssuedAt *time.Time `gorm:"column:invoice_issued_at" json:"invoice_issued_at,omitempty"`

	InvoiceItems []InvoiceItemModel `gorm:"foreignKey:InvoiceItemInvoiceID;references:InvoiceID" json:"invoice_items,omitempty"`

	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;autoCreateTime" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;autoUpdateTime" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"invoice_deleted_at,omitempty"`
}

func (InvoiceModel) TableName() string { return "invoices" }

// InvoiceItemModel: baris tagihan, amount = qty x unit_price.
type InvoiceItemModel struct {
	InvoiceItemID        uuid.UUID `gorm:"column:invoice_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invoice_item_id"`
	InvoiceItemInvoiceID uuid.UUID `gorm:"column:invoice_item_invoice_id;type:uuid;not null;index" json:"invoice_item_invoice_id"`

	InvoiceItemDescription    string `gorm:"column:invoice_item_description;size:120;not null" json:"invoice_item_description"`
	InvoiceItemQuantity       int64  `gorm:"column:invoice_item_quantity;not null;default:1" json:"invoice_item_quantity"`
	InvoiceItemUnitPriceCents int64  `gorm:"column:invoice_item_unit_price_cents;not null;default:0" json:"invoice_item_unit_price_cents"`
	InvoiceItemAmountCents    int64  `gorm:"column:invoice_item_amount_cents;not null;default:0" json:"invoice_item_amount_cents"`

	// Urutan tampil di invoice
	InvoiceItemPosition int `gorm:"column:invoice_item_position;not null;default:0" json:"invoice_item_position"`

	InvoiceItemCreatedAt time.Time      `gorm:"column:invoice_item_created_at;autoCreateTime" json:"invoice_item_created_at"`
	InvoiceItemUpdatedAt time.Time      `gorm:"column:invoice_item_updated_at;autoUpdateTime" json:"invoice_item_updated_at"`
	InvoiceItemDeletedAt gorm.DeletedAt `gorm:"column:invoice_item_deleted_at;index" json:"invoice_item_deleted_at,omitempty"`
}

func (InvoiceItemModel) TableName() string { return "invoice_items" }
