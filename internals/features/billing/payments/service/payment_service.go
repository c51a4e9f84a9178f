package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/features/billing/counters"
	invoicemodel "sekolahku_backend/internals/features/billing/invoices/model"
	invoiceservice "sekolahku_backend/internals/features/billing/invoices/service"
	"sekolahku_backend/internals/features/billing/payments/model"
	enrollmodel "sekolahku_backend/internals/features/enrollment/admissions/model"
	enrollservice "sekolahku_backend/internals/features/enrollment/admissions/service"
)

// ReceiptNumberFor: RCP-<tahun>-<urut 5 digit>.
func ReceiptNumberFor(year int, seq int64) string {
	return fmt.Sprintf("RCP-%d-%05d", year, seq)
}

// ValidateRefund: refund dibatasi sisa yang bisa dikembalikan dari
// pembayaran asal; lebih dari itu ditolak 409.
func ValidateRefund(p model.PaymentModel, amountCents int64) error {
	if amountCents <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Nominal refund harus lebih dari nol")
	}
	refundable := p.RefundableCents()
	if refundable <= 0 {
		return fiber.NewError(fiber.StatusConflict, "Pembayaran ini tidak bisa direfund")
	}
	if amountCents > refundable {
		return fiber.NewError(fiber.StatusConflict, "Nominal refund melebihi sisa yang bisa dikembalikan")
	}
	return nil
}

// ApplyRefund: catat nominal refund pada pembayaran dan turunkan
// statusnya (refunded kalau habis, partially_refunded kalau sisa).
func ApplyRefund(p *model.PaymentModel, amountCents int64) error {
	if err := ValidateRefund(*p, amountCents); err != nil {
		return err
	}
	p.PaymentRefundedCents += amountCents
	if p.PaymentRefundedCents >= p.PaymentAmountCents {
		p.PaymentStatus = model.PaymentStatusRefunded
	} else {
		p.PaymentStatus = model.PaymentStatusPartiallyRefunded
	}
	return nil
}

// SumEffective: paid_cents invoice dihitung ulang dari pembayaran yang
// masih hidup, bukan ditambah-kurang inkremental. Void/koreksi otomatis
// benar.
func SumEffective(payments []model.PaymentModel) int64 {
	var sum int64
	for i := range payments {
		sum += payments[i].EffectiveCents()
	}
	return sum
}

// Reconcile: hitung ulang paid_cents invoice dari pembayaran yang
// masih hidup, re-derive status invoice, lalu dorong hasilnya ke
// enrollment (amount_paid/balance/payment_status, auto-enrolled).
// Dipanggil di dalam transaksi yang sama dengan mutasi pembayarannya.
func Reconcile(tx *gorm.DB, invoiceID uuid.UUID, now time.Time) (*invoicemodel.InvoiceModel, error) {
	var inv invoicemodel.InvoiceModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&inv, "invoice_id = ?", invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "invoice tidak ditemukan")
		}
		return nil, err
	}

	var pays []model.PaymentModel
	if err := tx.Where("payment_invoice_id = ?", invoiceID).Find(&pays).Error; err != nil {
		return nil, err
	}

	inv.InvoicePaidCents = SumEffective(pays)
	inv.InvoiceStatus = invoiceservice.DeriveStatus(inv, invoiceservice.BaseStatusOf(inv.InvoiceStatus), now)
	if err := tx.Save(&inv).Error; err != nil {
		return nil, err
	}

	var e enrollmodel.EnrollmentModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&e, "enrollment_id = ?", inv.InvoiceEnrollmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &inv, nil
	}
	if err != nil {
		return nil, err
	}

	delta := inv.InvoicePaidCents - e.EnrollmentAmountPaidCents
	enrollservice.ApplyPaymentDelta(&e, delta, now)
	if err := tx.Save(&e).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// BuildReceipt: isi kwitansi dari pembayaran asalnya; nomor disuplai
// pemanggil (dari counter tahunan).
func BuildReceipt(p model.PaymentModel, number string, receivedBy uuid.UUID) model.ReceiptModel {
	return model.ReceiptModel{
		ReceiptPaymentID:   p.PaymentID,
		ReceiptInvoiceID:   p.PaymentInvoiceID,
		ReceiptNumber:      number,
		ReceiptAmountCents: p.PaymentAmountCents,
		ReceiptReceivedBy:  receivedBy,
	}
}

// IssueReceipt: kwitansi untuk pembayaran terkonfirmasi, nomor dari
// counter tahunan yang dikunci FOR UPDATE di transaksi pemanggil.
func IssueReceipt(tx *gorm.DB, p model.PaymentModel, receivedBy uuid.UUID, now time.Time) (*model.ReceiptModel, error) {
	seq, err := counters.Next(tx, counters.ScopeReceipt, now.Year())
	if err != nil {
		return nil, err
	}
	r := BuildReceipt(p, ReceiptNumberFor(now.Year(), seq), receivedBy)
	if err := tx.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}
