package service

import (
	"fmt"
	"time"

	"sekolahku_backend/internals/features/billing/invoices/model"
	enrollmodel "sekolahku_backend/internals/features/enrollment/admissions/model"
)

// DeriveStatus: status tersimpan diturunkan dari pembayaran.
// cancelled final; paid kalau paid >= total (total > 0); partially_paid
// kalau 0 < paid < total; selain itu balik ke status dasar (draft/sent,
// atau overdue kalau sudah lewat due date). Koreksi yang menurunkan
// paid_cents otomatis mundur paid -> partially_paid -> dasar.
func DeriveStatus(inv model.InvoiceModel, base string, now time.Time) string {
	if inv.InvoiceStatus == model.InvoiceStatusCancelled {
		return model.InvoiceStatusCancelled
	}
	if inv.InvoiceTotalCents > 0 && inv.InvoicePaidCents >= inv.InvoiceTotalCents {
		return model.InvoiceStatusPaid
	}
	if inv.InvoicePaidCents > 0 {
		return model.InvoiceStatusPartiallyPaid
	}
	if inv.InvoiceDueDate != nil && now.After(*inv.InvoiceDueDate) && base == model.InvoiceStatusSent {
		return model.InvoiceStatusOverdue
	}
	return base
}

// BaseStatusOf: status dasar (draft/sent) dari status tersimpan,
// dipakai saat re-derive setelah koreksi pembayaran.
func BaseStatusOf(stored string) string {
	switch stored {
	case model.InvoiceStatusDraft:
		return model.InvoiceStatusDraft
	case model.InvoiceStatusCancelled:
		return model.InvoiceStatusCancelled
	default:
		// paid/partially_paid/overdue semuanya berangkat dari sent
		return model.InvoiceStatusSent
	}
}

// RecalcTotal: total = jumlah amount semua item; tiap amount
// ditegakkan = qty x unit_price. Status ikut di-derive ulang.
func RecalcTotal(inv *model.InvoiceModel, now time.Time) {
	var total int64
	for i := range inv.InvoiceItems {
		it := &inv.InvoiceItems[i]
		it.InvoiceItemAmountCents = it.InvoiceItemQuantity * it.InvoiceItemUnitPriceCents
		total += it.InvoiceItemAmountCents
	}
	inv.InvoiceTotalCents = total
	inv.InvoiceStatus = DeriveStatus(*inv, BaseStatusOf(inv.InvoiceStatus), now)
}

// ItemsFromEnrollment: satu baris per komponen biaya yang tidak nol,
// urut tetap, ditambah baris diskon negatif bila ada.
func ItemsFromEnrollment(e enrollmodel.EnrollmentModel) []model.InvoiceItemModel {
	type comp struct {
		desc  string
		cents int64
	}
	comps := []comp{
		{"Tuition", e.EnrollmentTuitionCents},
		{"Miscellaneous", e.EnrollmentMiscellaneousCents},
		{"Laboratory", e.EnrollmentLaboratoryCents},
		{"Library", e.EnrollmentLibraryCents},
		{"Sports", e.EnrollmentSportsCents},
		{"Other", e.EnrollmentOtherCents},
	}
	items := make([]model.InvoiceItemModel, 0, len(comps)+1)
	pos := 0
	for _, cpt := range comps {
		if cpt.cents == 0 {
			continue
		}
		items = append(items, model.InvoiceItemModel{
			InvoiceItemDescription:    cpt.desc,
			InvoiceItemQuantity:       1,
			InvoiceItemUnitPriceCents: cpt.cents,
			InvoiceItemAmountCents:    cpt.cents,
			InvoiceItemPosition:       pos,
		})
		pos++
	}
	if e.EnrollmentDiscountCents > 0 {
		items = append(items, model.InvoiceItemModel{
			InvoiceItemDescription:    "Discount",
			InvoiceItemQuantity:       1,
			InvoiceItemUnitPriceCents: -e.EnrollmentDiscountCents,
			InvoiceItemAmountCents:    -e.EnrollmentDiscountCents,
			InvoiceItemPosition:       pos,
		})
	}
	return items
}

// NumberFor: nomor invoice INV-<tahun>-<urut 5 digit>.
func NumberFor(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%05d", year, seq)
}
