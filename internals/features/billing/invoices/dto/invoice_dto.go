package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/billing/invoices/model"
)

type InvoiceGenerateDTO struct {
	InvoiceEnrollmentID uuid.UUID  `json:"invoice_enrollment_id" validate:"required"`
	InvoiceDueDate      *time.Time `json:"invoice_due_date,omitempty"`
}

type InvoiceItemCreateDTO struct {
	InvoiceItemDescription    string `json:"invoice_item_description" validate:"required,max=120"`
	InvoiceItemQuantity       int64  `json:"invoice_item_quantity" validate:"required,gt=0"`
	InvoiceItemUnitPriceCents int64  `json:"invoice_item_unit_price_cents" validate:"required"`
}

type InvoiceItemUpdateDTO struct {
	InvoiceItemDescription    *string `json:"invoice_item_description,omitempty" validate:"omitempty,max=120"`
	InvoiceItemQuantity       *int64  `json:"invoice_item_quantity,omitempty" validate:"omitempty,gt=0"`
	InvoiceItemUnitPriceCents *int64  `json:"invoice_item_unit_price_cents,omitempty"`
}

type InvoiceItemResponse struct {
	InvoiceItemID             uuid.UUID `json:"invoice_item_id"`
	InvoiceItemDescription    string    `json:"invoice_item_description"`
	InvoiceItemQuantity       int64     `json:"invoice_item_quantity"`
	InvoiceItemUnitPriceCents int64     `json:"invoice_item_unit_price_cents"`
	InvoiceItemAmountCents    int64     `json:"invoice_item_amount_cents"`
	InvoiceItemPosition       int       `json:"invoice_item_position"`
}

type InvoiceResponse struct {
	InvoiceID           uuid.UUID `json:"invoice_id"`
	InvoiceEnrollmentID uuid.UUID `json:"invoice_enrollment_id"`
	InvoiceGuardianID   uuid.UUID `json:"invoice_guardian_id"`

	InvoiceNumber string `json:"invoice_number"`
	InvoiceStatus string `json:"invoice_status"`

	InvoiceTotalCents int64 `json:"invoice_total_cents"`
	InvoicePaidCents  int64 `json:"invoice_paid_cents"`

	InvoiceDueDate  *time.Time `json:"invoice_due_date,omitempty"`
	InvoiceIssuedAt *time.Time `json:"invoice_issued_at,omitempty"`

	InvoiceItems []InvoiceItemResponse `json:"invoice_items,omitempty"`

	InvoiceCreatedAt time.Time `json:"invoice_created_at"`
}

func ToInvoiceItemResponse(m model.InvoiceItemModel) InvoiceItemResponse {
	return InvoiceItemResponse{
		InvoiceItemID:             m.InvoiceItemID,
		InvoiceItemDescription:    m.InvoiceItemDescription,
		InvoiceItemQuantity:       m.InvoiceItemQuantity,
		InvoiceItemUnitPriceCents: m.InvoiceItemUnitPriceCents,
		InvoiceItemAmountCents:    m.InvoiceItemAmountCents,
		InvoiceItemPosition:       m.InvoiceItemPosition,
	}
}

func ToInvoiceResponse(m model.InvoiceModel) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(m.InvoiceItems))
	for _, it := range m.InvoiceItems {
		items = append(items, ToInvoiceItemResponse(it))
	}
	return InvoiceResponse{
		InvoiceID:           m.InvoiceID,
		InvoiceEnrollmentID: m.InvoiceEnrollmentID,
		InvoiceGuardianID:   m.InvoiceGuardianID,
		InvoiceNumber:       m.InvoiceNumber,
		InvoiceStatus:       m.InvoiceStatus,
		InvoiceTotalCents:   m.InvoiceTotalCents,
		InvoicePaidCents:    m.InvoicePaidCents,
		InvoiceDueDate:      m.InvoiceDueDate,
		InvoiceIssuedAt:     m.InvoiceIssuedAt,
		InvoiceItems:        items,
		InvoiceCreatedAt:    m.InvoiceCreatedAt,
	}
}

func ToInvoiceResponses(list []model.InvoiceModel) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToInvoiceResponse(v))
	}
	return out
}
