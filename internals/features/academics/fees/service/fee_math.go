package service

import (
	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/academics/fees/model"
)

// FeeComponents: enam komponen biaya dalam sen.
type FeeComponents struct {
	TuitionCents       int64
	MiscellaneousCents int64
	LaboratoryCents    int64
	LibraryCents       int64
	SportsCents        int64
	OtherCents         int64
}

func ComponentsOf(m model.GradeLevelFeeModel) FeeComponents {
	return FeeComponents{
		TuitionCents:       m.GradeLevelFeeTuitionCents,
		MiscellaneousCents: m.GradeLevelFeeMiscellaneousCents,
		LaboratoryCents:    m.GradeLevelFeeLaboratoryCents,
		LibraryCents:       m.GradeLevelFeeLibraryCents,
		SportsCents:        m.GradeLevelFeeSportsCents,
		OtherCents:         m.GradeLevelFeeOtherCents,
	}
}

// ComputeTotal: total = jumlah enam komponen.
func ComputeTotal(f FeeComponents) int64 {
	return f.TuitionCents + f.MiscellaneousCents + f.LaboratoryCents +
		f.LibraryCents + f.SportsCents + f.OtherCents
}

// ComputeNet: net = total - diskon. Diskon negatif dianggap 0.
func ComputeNet(totalCents, discountCents int64) int64 {
	if discountCents < 0 {
		discountCents = 0
	}
	return totalCents - discountCents
}

// ComputeDownPayment: uang muka untuk skema semestral/monthly =
// persen dari tuition (pembulatan ke bawah) + miscellaneous penuh.
// Skema annual tidak pakai uang muka (bayar penuh).
func ComputeDownPayment(f FeeComponents, paymentTerms string, tuitionPercent int) int64 {
	if paymentTerms == model.PaymentTermsAnnual {
		return 0
	}
	if tuitionPercent < 0 {
		tuitionPercent = 0
	}
	return f.TuitionCents*int64(tuitionPercent)/100 + f.MiscellaneousCents
}

// DefaultDownPayment: ComputeDownPayment dengan persen dari env.
func DefaultDownPayment(f FeeComponents, paymentTerms string) int64 {
	return ComputeDownPayment(f, paymentTerms, configs.DownPaymentTuitionPercent())
}
