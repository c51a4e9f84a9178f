package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skema pembayaran
const (
	PaymentTermsAnnual    = "annual"
	PaymentTermsSemestral = "semestral"
	PaymentTermsMonthly   = "monthly"
)

var AllPaymentTerms = []string{PaymentTermsAnnual, PaymentTermsSemestral, PaymentTermsMonthly}

func IsValidPaymentTerms(s string) bool {
	for _, t := range AllPaymentTerms {
		if t == s {
			return true
		}
	}
	return false
}

// GradeLevelFeeModel: tarif per grade level + periode + skema pembayaran.
// Semua nominal dalam sen (int64).
type GradeLevelFeeModel struct {
	GradeLevelFeeID uuid.UUID `gorm:"column:grade_level_fee_id;type:uuid;default:gen_random_uuid();primaryKey" json:"grade_level_fee_id"`

	GradeLevelFeeGradeLevel         string    `gorm:"column:grade_level_fee_grade_level;size:30;not null;uniqueIndex:uq_fee_grade_period_terms" json:"grade_level_fee_grade_level"`
	GradeLevelFeeEnrollmentPeriodID uuid.UUID `gorm:"column:grade_level_fee_enrollment_period_id;type:uuid;not null;uniqueIndex:uq_fee_grade_period_terms" json:"grade_level_fee_enrollment_period_id"`
	GradeLevelFeePaymentTerms       string    `gorm:"column:grade_level_fee_payment_terms;size:12;not null;uniqueIndex:uq_fee_grade_period_terms" json:"grade_level_fee_payment_terms"`

	GradeLevelFeeTuitionCents       int64 `gorm:"column:grade_level_fee_tuition_cents;not null;default:0" json:"grade_level_fee_tuition_cents"`
	GradeLevelFeeMiscellaneousCents int64 `gorm:"column:grade_level_fee_miscellaneous_cents;not null;default:0" json:"grade_level_fee_miscellaneous_cents"`
	GradeLevelFeeLaboratoryCents    int64 `gorm:"column:grade_level_fee_laboratory_cents;not null;default:0" json:"grade_level_fee_laboratory_cents"`
	GradeLevelFeeLibraryCents       int64 `gorm:"column:grade_level_fee_library_cents;not null;default:0" json:"grade_level_fee_library_cents"`
	GradeLevelFeeSportsCents        int64 `gorm:"column:grade_level_fee_sports_cents;not null;default:0" json:"grade_level_fee_sports_cents"`
	GradeLevelFeeOtherCents         int64 `gorm:"column:grade_level_fee_other_cents;not null;default:0" json:"grade_level_fee_other_cents"`

	// Disimpan agar uang muka tidak berubah kalau persentase env diganti
	GradeLevelFeeDownPaymentCents int64 `gorm:"column:grade_level_fee_down_payment_cents;not null;default:0" json:"grade_level_fee_down_payment_cents"`

	GradeLevelFeeCreatedAt time.Time      `gorm:"column:grade_level_fee_created_at;autoCreateTime" json:"grade_level_fee_created_at"`
	GradeLevelFeeUpdatedAt time.Time      `gorm:"column:grade_level_fee_updated_at;autoUpdateTime" json:"grade_level_fee_updated_at"`
	GradeLevelFeeDeletedAt gorm.DeletedAt `gorm:"column:grade_level_fee_deleted_at;index" json:"grade_level_fee_deleted_at,omitempty"`
}

func (GradeLevelFeeModel) TableName() string { return "grade_level_fees" }

// TotalCents: jumlah enam komponen biaya.
func (m *GradeLevelFeeModel) TotalCents() int64 {
	return m.GradeLevelFeeTuitionCents +
		m.GradeLevelFeeMiscellaneousCents +
		m.GradeLevelFeeLaboratoryCents +
		m.GradeLevelFeeLibraryCents +
		m.GradeLevelFeeSportsCents +
		m.GradeLevelFeeOtherCents
}
