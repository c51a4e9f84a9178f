package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/features/academics/fees/model"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name string
		in   FeeComponents
		want int64
	}{
		{
			name: "tuition plus miscellaneous",
			in:   FeeComponents{TuitionCents: 2_050_000, MiscellaneousCents: 650_000},
			want: 2_700_000,
		},
		{
			name: "all six components",
			in: FeeComponents{
				TuitionCents:       2_050_000,
				MiscellaneousCents: 650_000,
				LaboratoryCents:    100_000,
				LibraryCents:       50_000,
				SportsCents:        75_000,
				OtherCents:         25_000,
			},
			want: 2_950_000,
		},
		{name: "zero", in: FeeComponents{}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotal(tt.in))
		})
	}
}

func TestComputeNet(t *testing.T) {
	assert.Equal(t, int64(2_700_000), ComputeNet(2_700_000, 0))
	assert.Equal(t, int64(2_500_000), ComputeNet(2_700_000, 200_000))
	// diskon negatif tidak boleh menaikkan net
	assert.Equal(t, int64(2_700_000), ComputeNet(2_700_000, -100))
}

func TestComputeDownPayment(t *testing.T) {
	f := FeeComponents{TuitionCents: 2_050_000, MiscellaneousCents: 650_000}

	t.Run("monthly pakai 20 persen tuition plus misc penuh", func(t *testing.T) {
		got := ComputeDownPayment(f, model.PaymentTermsMonthly, 20)
		assert.Equal(t, int64(410_000+650_000), got)
	})

	t.Run("semestral sama dengan monthly", func(t *testing.T) {
		assert.Equal(t,
			ComputeDownPayment(f, model.PaymentTermsMonthly, 20),
			ComputeDownPayment(f, model.PaymentTermsSemestral, 20))
	})

	t.Run("annual tanpa uang muka", func(t *testing.T) {
		assert.Zero(t, ComputeDownPayment(f, model.PaymentTermsAnnual, 20))
	})

	t.Run("pembulatan ke bawah", func(t *testing.T) {
		odd := FeeComponents{TuitionCents: 999, MiscellaneousCents: 0}
		// 999 * 20 / 100 = 199.8 -> 199
		assert.Equal(t, int64(199), ComputeDownPayment(odd, model.PaymentTermsMonthly, 20))
	})

	t.Run("persen negatif dianggap nol", func(t *testing.T) {
		assert.Equal(t, f.MiscellaneousCents, ComputeDownPayment(f, model.PaymentTermsMonthly, -5))
	})
}

func TestComponentsOf(t *testing.T) {
	m := model.GradeLevelFeeModel{
		GradeLevelFeeTuitionCents:       1,
		GradeLevelFeeMiscellaneousCents: 2,
		GradeLevelFeeLaboratoryCents:    3,
		GradeLevelFeeLibraryCents:       4,
		GradeLevelFeeSportsCents:        5,
		GradeLevelFeeOtherCents:         6,
	}
	assert.Equal(t, int64(21), ComputeTotal(ComponentsOf(m)))
	assert.Equal(t, m.TotalCents(), ComputeTotal(ComponentsOf(m)))
}
