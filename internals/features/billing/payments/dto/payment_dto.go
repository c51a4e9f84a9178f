package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/billing/payments/model"
)

type PaymentCreateDTO struct {
	PaymentInvoiceID   uuid.UUID `json:"payment_invoice_id" validate:"required"`
	PaymentAmountCents int64     `json:"payment_amount_cents" validate:"required,gt=0"`
	PaymentMethod      string    `json:"payment_method" validate:"required,oneof=cash bank_transfer gateway qris other"`

	PaymentIdempotencyKey *string `json:"payment_idempotency_key,omitempty" validate:"omitempty,max=64"`
	PaymentNotes          *string `json:"payment_notes,omitempty" validate:"omitempty,max=255"`
}

type PaymentRefundDTO struct {
	Amount int64  `json:"amount_cents" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"required,max=255"`
}

type GatewayCheckoutDTO struct {
	InvoiceID uuid.UUID `json:"invoice_id" validate:"required"`
}

type PaymentResponse struct {
	PaymentID         uuid.UUID `json:"payment_id"`
	PaymentInvoiceID  uuid.UUID `json:"payment_invoice_id"`
	PaymentGuardianID uuid.UUID `json:"payment_guardian_id"`

	PaymentAmountCents   int64 `json:"payment_amount_cents"`
	PaymentRefundedCents int64 `json:"payment_refunded_cents"`

	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`

	PaymentIdempotencyKey *string    `json:"payment_idempotency_key,omitempty"`
	PaymentProcessedBy    *uuid.UUID `json:"payment_processed_by,omitempty"`
	PaymentPaidAt         *time.Time `json:"payment_paid_at,omitempty"`
	PaymentNotes          *string    `json:"payment_notes,omitempty"`

	PaymentGatewayOrderID *string `json:"payment_gateway_order_id,omitempty"`

	PaymentCreatedAt time.Time `json:"payment_created_at"`
}

type PaymentRefundResponse struct {
	PaymentRefundID          uuid.UUID `json:"payment_refund_id"`
	PaymentRefundPaymentID   uuid.UUID `json:"payment_refund_payment_id"`
	PaymentRefundAmountCents int64     `json:"payment_refund_amount_cents"`
	PaymentRefundReason      string    `json:"payment_refund_reason"`
	PaymentRefundRefundedBy  uuid.UUID `json:"payment_refund_refunded_by"`
	PaymentRefundCreatedAt   time.Time `json:"payment_refund_created_at"`
}

type ReceiptResponse struct {
	ReceiptID          uuid.UUID `json:"receipt_id"`
	ReceiptPaymentID   uuid.UUID `json:"receipt_payment_id"`
	ReceiptNumber      string    `json:"receipt_number"`
	ReceiptAmountCents int64     `json:"receipt_amount_cents"`
	ReceiptReceivedBy  uuid.UUID `json:"receipt_received_by"`
	ReceiptIssuedAt    time.Time `json:"receipt_issued_at"`
}

type GatewayCheckoutResponse struct {
	PaymentID uuid.UUID `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	SnapToken string    `json:"snap_token"`
}

func ToPaymentResponse(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:             m.PaymentID,
		PaymentInvoiceID:      m.PaymentInvoiceID,
		PaymentGuardianID:     m.PaymentGuardianID,
		PaymentAmountCents:    m.PaymentAmountCents,
		PaymentRefundedCents:  m.PaymentRefundedCents,
		PaymentMethod:         m.PaymentMethod,
		PaymentStatus:         m.PaymentStatus,
		PaymentIdempotencyKey: m.PaymentIdempotencyKey,
		PaymentProcessedBy:    m.PaymentProcessedBy,
		PaymentPaidAt:         m.PaymentPaidAt,
		PaymentNotes:          m.PaymentNotes,
		PaymentGatewayOrderID: m.PaymentGatewayOrderID,
		PaymentCreatedAt:      m.PaymentCreatedAt,
	}
}

func ToPaymentResponses(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToPaymentResponse(v))
	}
	return out
}

func ToPaymentRefundResponse(m model.PaymentRefundModel) PaymentRefundResponse {
	return PaymentRefundResponse{
		PaymentRefundID:          m.PaymentRefundID,
		PaymentRefundPaymentID:   m.PaymentRefundPaymentID,
		PaymentRefundAmountCents: m.PaymentRefundAmountCents,
		PaymentRefundReason:      m.PaymentRefundReason,
		PaymentRefundRefundedBy:  m.PaymentRefundRefundedBy,
		PaymentRefundCreatedAt:   m.PaymentRefundCreatedAt,
	}
}

func ToReceiptResponse(m model.ReceiptModel) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:          m.ReceiptID,
		ReceiptPaymentID:   m.ReceiptPaymentID,
		ReceiptNumber:      m.ReceiptNumber,
		ReceiptAmountCents: m.ReceiptAmountCents,
		ReceiptReceivedBy:  m.ReceiptReceivedBy,
		ReceiptIssuedAt:    m.ReceiptIssuedAt,
	}
}

func ToReceiptResponses(list []model.ReceiptModel) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToReceiptResponse(v))
	}
	return out
}
