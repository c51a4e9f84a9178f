package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/academics/fees/model"
)

type GradeLevelFeeCreateDTO struct {
	GradeLevelFeeGradeLevel         string    `json:"grade_level_fee_grade_level" validate:"required,max=30"`
	GradeLevelFeeEnrollmentPeriodID uuid.UUID `json:"grade_level_fee_enrollment_period_id" validate:"required"`
	GradeLevelFeePaymentTerms       string    `json:"grade_level_fee_payment_terms" validate:"required,oneof=annual semestral monthly"`

	GradeLevelFeeTuitionCents       int64 `json:"grade_level_fee_tuition_cents" validate:"gte=0"`
	GradeLevelFeeMiscellaneousCents int64 `json:"grade_level_fee_miscellaneous_cents" validate:"gte=0"`
	GradeLevelFeeLaboratoryCents    int64 `json:"grade_level_fee_laboratory_cents" validate:"gte=0"`
	GradeLevelFeeLibraryCents       int64 `json:"grade_level_fee_library_cents" validate:"gte=0"`
	GradeLevelFeeSportsCents        int64 `json:"grade_level_fee_sports_cents" validate:"gte=0"`
	GradeLevelFeeOtherCents         int64 `json:"grade_level_fee_other_cents" validate:"gte=0"`
}

type GradeLevelFeeUpdateDTO struct {
	GradeLevelFeeTuitionCents       *int64 `json:"grade_level_fee_tuition_cents,omitempty" validate:"omitempty,gte=0"`
	GradeLevelFeeMiscellaneousCents *int64 `json:"grade_level_fee_miscellaneous_cents,omitempty" validate:"omitempty,gte=0"`
	GradeLevelFeeLaboratoryCents    *int64 `json:"grade_level_fee_laboratory_cents,omitempty" validate:"omitempty,gte=0"`
	GradeLevelFeeLibraryCents       *int64 `json:"grade_level_fee_library_cents,omitempty" validate:"omitempty,gte=0"`
	GradeLevelFeeSportsCents        *int64 `json:"grade_level_fee_sports_cents,omitempty" validate:"omitempty,gte=0"`
	GradeLevelFeeOtherCents         *int64 `json:"grade_level_fee_other_cents,omitempty" validate:"omitempty,gte=0"`
}

type GradeLevelFeeResponse struct {
	GradeLevelFeeID                 uuid.UUID `json:"grade_level_fee_id"`
	GradeLevelFeeGradeLevel         string    `json:"grade_level_fee_grade_level"`
	GradeLevelFeeEnrollmentPeriodID uuid.UUID `json:"grade_level_fee_enrollment_period_id"`
	GradeLevelFeePaymentTerms       string    `json:"grade_level_fee_payment_terms"`

	GradeLevelFeeTuitionCents       int64 `json:"grade_level_fee_tuition_cents"`
	GradeLevelFeeMiscellaneousCents int64 `json:"grade_level_fee_miscellaneous_cents"`
	GradeLevelFeeLaboratoryCents    int64 `json:"grade_level_fee_laboratory_cents"`
	GradeLevelFeeLibraryCents       int64 `json:"grade_level_fee_library_cents"`
	GradeLevelFeeSportsCents        int64 `json:"grade_level_fee_sports_cents"`
	GradeLevelFeeOtherCents         int64 `json:"grade_level_fee_other_cents"`

	GradeLevelFeeTotalCents       int64 `json:"grade_level_fee_total_cents"`
	GradeLevelFeeDownPaymentCents int64 `json:"grade_level_fee_down_payment_cents"`

	GradeLevelFeeCreatedAt time.Time `json:"grade_level_fee_created_at"`
}

func ToGradeLevelFeeResponse(m model.GradeLevelFeeModel) GradeLevelFeeResponse {
	return GradeLevelFeeResponse{
		GradeLevelFeeID:                 m.GradeLevelFeeID,
		GradeLevelFeeGradeLevel:         m.GradeLevelFeeGradeLevel,
		GradeLevelFeeEnrollmentPeriodID: m.GradeLevelFeeEnrollmentPeriodID,
		GradeLevelFeePaymentTerms:       m.GradeLevelFeePaymentTerms,
		GradeLevelFeeTuitionCents:       m.GradeLevelFeeTuitionCents,
		GradeLevelFeeMiscellaneousCents: m.GradeLevelFeeMiscellaneousCents,
		GradeLevelFeeLaboratoryCents:    m.GradeLevelFeeLaboratoryCents,
		GradeLevelFeeLibraryCents:       m.GradeLevelFeeLibraryCents,
		GradeLevelFeeSportsCents:        m.GradeLevelFeeSportsCents,
		GradeLevelFeeOtherCents:         m.GradeLevelFeeOtherCents,
		GradeLevelFeeTotalCents:         m.TotalCents(),
		GradeLevelFeeDownPaymentCents:   m.GradeLevelFeeDownPaymentCents,
		GradeLevelFeeCreatedAt:          m.GradeLevelFeeCreatedAt,
	}
}

func ToGradeLevelFeeResponses(list []model.GradeLevelFeeModel) []GradeLevelFeeResponse {
	out := make([]GradeLevelFeeResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToGradeLevelFeeResponse(v))
	}
	return out
}

func GradeLevelFeeCreateDTOToModel(d GradeLevelFeeCreateDTO) model.GradeLevelFeeModel {
	return model.GradeLevelFeeModel{
		GradeLevelFeeGradeLevel:         d.GradeLevelFeeGradeLevel,
		GradeLevelFeeEnrollmentPeriodID: d.GradeLevelFeeEnrollmentPeriodID,
		GradeLevelFeePaymentTerms:       d.GradeLevelFeePaymentTerms,
		GradeLevelFeeTuitionCents:       d.GradeLevelFeeTuitionCents,
		GradeLevelFeeMiscellaneousCents: d.GradeLevelFeeMiscellaneousCents,
		GradeLevelFeeLaboratoryCents:    d.GradeLevelFeeLaboratoryCents,
		GradeLevelFeeLibraryCents:       d.GradeLevelFeeLibraryCents,
		GradeLevelFeeSportsCents:        d.GradeLevelFeeSportsCents,
		GradeLevelFeeOtherCents:         d.GradeLevelFeeOtherCents,
	}
}

func ApplyGradeLevelFeeUpdate(m *model.GradeLevelFeeModel, d GradeLevelFeeUpdateDTO) {
	if d.GradeLevelFeeTuitionCents != nil {
		m.GradeLevelFeeTuitionCents = *d.GradeLevelFeeTuitionCents
	}
	if d.GradeLevelFeeMiscellaneousCents != nil {
		m.GradeLevelFeeMiscellaneousCents = *d.GradeLevelFeeMiscellaneousCents
	}
	if d.GradeLevelFeeLaboratoryCents != nil {
		m.GradeLevelFeeLaboratoryCents = *d.GradeLevelFeeLaboratoryCents
	}
	if d.GradeLevelFeeLibraryCents != nil {
		m.GradeLevelFeeLibraryCents = *d.GradeLevelFeeLibraryCents
	}
	if d.GradeLevelFeeSportsCents != nil {
		m.GradeLevelFeeSportsCents = *d.GradeLevelFeeSportsCents
	}
	if d.GradeLevelFeeOtherCents != nil {
		m.GradeLevelFeeOtherCents = *d.GradeLevelFeeOtherCents
	}
}
