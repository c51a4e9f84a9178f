package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/billing/invoices/model"
	enrollmodel "sekolahku_backend/internals/features/enrollment/admissions/model"
)

var now = time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

func TestDeriveStatus(t *testing.T) {
	past := now.AddDate(0, 0, -1)

	tests := []struct {
		name  string
		inv   model.InvoiceModel
		base  string
		want  string
	}{
		{
			name: "lunas",
			inv:  model.InvoiceModel{InvoiceTotalCents: 1000, InvoicePaidCents: 1000},
			base: model.InvoiceStatusSent,
			want: model.InvoiceStatusPaid,
		},
		{
			name: "lebih bayar tetap paid",
			inv:  model.InvoiceModel{InvoiceTotalCents: 1000, InvoicePaidCents: 1500},
			base: model.InvoiceStatusSent,
			want: model.InvoiceStatusPaid,
		},
		{
			name: "bayar sebagian",
			inv:  model.InvoiceModel{InvoiceTotalCents: 1000, InvoicePaidCents: 400},
			base: model.InvoiceStatusSent,
			want: model.InvoiceStatusPartiallyPaid,
		},
		{
			name: "belum bayar kembali ke base",
			inv:  model.InvoiceModel{InvoiceTotalCents: 1000},
			base: model.InvoiceStatusDraft,
			want: model.InvoiceStatusDraft,
		},
		{
			name: "total nol tidak pernah paid",
			inv:  model.InvoiceModel{InvoiceTotalCents: 0, InvoicePaidCents: 0},
			base: model.InvoiceStatusDraft,
			want: model.InvoiceStatusDraft,
		},
		{
			name: "sent lewat due date jadi overdue",
			inv:  model.InvoiceModel{InvoiceTotalCents: 1000, InvoiceDueDate: &past},
			base: model.InvoiceStatusSent,
			want: model.InvoiceStatusOverdue,
		},
		{
			name: "cancelled final",
			inv:  model.InvoiceModel{InvoiceStatus: model.InvoiceStatusCancelled, InvoiceTotalCents: 1000, InvoicePaidCents: 1000},
			base: model.InvoiceStatusSent,
			want: model.InvoiceStatusCancelled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.inv, tt.base, now))
		})
	}
}

func TestDeriveStatusRevertsOnCorrection(t *testing.T) {
	inv := model.InvoiceModel{InvoiceTotalCents: 1000, InvoicePaidCents: 1000, InvoiceStatus: model.InvoiceStatusPaid}

	// koreksi menurunkan paid -> mundur ke partially_paid
	inv.InvoicePaidCents = 400
	inv.InvoiceStatus = DeriveStatus(inv, BaseStatusOf(inv.InvoiceStatus), now)
	assert.Equal(t, model.InvoiceStatusPartiallyPaid, inv.InvoiceStatus)

	// koreksi penuh -> mundur ke base (sent)
	inv.InvoicePaidCents = 0
	inv.InvoiceStatus = DeriveStatus(inv, BaseStatusOf(inv.InvoiceStatus), now)
	assert.Equal(t, model.InvoiceStatusSent, inv.InvoiceStatus)
}

func TestRecalcTotal(t *testing.T) {
	inv := model.InvoiceModel{
		InvoiceStatus: model.InvoiceStatusSent,
		InvoiceItems: []model.InvoiceItemModel{
			{InvoiceItemQuantity: 2, InvoiceItemUnitPriceCents: 500},
			{InvoiceItemQuantity: 1, InvoiceItemUnitPriceCents: 250},
		},
	}
	RecalcTotal(&inv, now)

	assert.Equal(t, int64(1250), inv.InvoiceTotalCents)
	assert.Equal(t, int64(1000), inv.InvoiceItems[0].InvoiceItemAmountCents)
	assert.Equal(t, int64(250), inv.InvoiceItems[1].InvoiceItemAmountCents)
	assert.Equal(t, model.InvoiceStatusSent, inv.InvoiceStatus)
}

func TestItemsFromEnrollment(t *testing.T) {
	e := enrollmodel.EnrollmentModel{
		EnrollmentTuitionCents:       2_050_000,
		EnrollmentMiscellaneousCents: 650_000,
		EnrollmentLaboratoryCents:    0, // komponen nol tidak jadi baris
		EnrollmentDiscountCents:      200_000,
	}
	items := ItemsFromEnrollment(e)
	require.Len(t, items, 3)

	assert.Equal(t, "Tuition", items[0].InvoiceItemDescription)
	assert.Equal(t, int64(2_050_000), items[0].InvoiceItemAmountCents)
	assert.Equal(t, "Miscellaneous", items[1].InvoiceItemDescription)
	assert.Equal(t, "Discount", items[2].InvoiceItemDescription)
	assert.Equal(t, int64(-200_000), items[2].InvoiceItemAmountCents)

	// posisi berurutan
	for i, it := range items {
		assert.Equal(t, i, it.InvoiceItemPosition)
	}

	// total baris = net enrollment
	var sum int64
	for _, it := range items {
		sum += it.InvoiceItemAmountCents
	}
	assert.Equal(t, int64(2_500_000), sum)
}

func TestNumberFor(t *testing.T) {
	assert.Equal(t, "INV-2026-00001", NumberFor(2026, 1))
	assert.Equal(t, "INV-2026-00123", NumberFor(2026, 123))
}
