package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/enrollment/admissions/model"
)

type EnrollmentCreateDTO struct {
	EnrollmentStudentID    uuid.UUID `json:"enrollment_student_id" validate:"required"`
	EnrollmentPeriodID     uuid.UUID `json:"enrollment_period_id" validate:"required"`
	EnrollmentGradeLevel   string    `json:"enrollment_grade_level" validate:"required,max=30"`
	EnrollmentPaymentTerms string    `json:"enrollment_payment_terms" validate:"required,oneof=annual semestral monthly"`

	EnrollmentDiscountCents  int64      `json:"enrollment_discount_cents" validate:"gte=0"`
	EnrollmentPaymentDueDate *time.Time `json:"enrollment_payment_due_date,omitempty"`
}

type EnrollmentRejectDTO struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type EnrollmentInfoRequestDTO struct {
	Message string `json:"message" validate:"required,max=500"`
}

type EnrollmentInfoReplyDTO struct {
	Reply string `json:"reply" validate:"required,max=500"`
}

type EnrollmentResponse struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`

	EnrollmentStudentID    uuid.UUID `json:"enrollment_student_id"`
	EnrollmentGuardianID   uuid.UUID `json:"enrollment_guardian_id"`
	EnrollmentSchoolYearID uuid.UUID `json:"enrollment_school_year_id"`
	EnrollmentPeriodID     uuid.UUID `json:"enrollment_period_id"`

	EnrollmentGradeLevel   string `json:"enrollment_grade_level"`
	EnrollmentPaymentTerms string `json:"enrollment_payment_terms"`

	EnrollmentStatus        string `json:"enrollment_status"`
	EnrollmentPaymentStatus string `json:"enrollment_payment_status"`

	EnrollmentTuitionCents       int64 `json:"enrollment_tuition_cents"`
	EnrollmentMiscellaneousCents int64 `json:"enrollment_miscellaneous_cents"`
	EnrollmentLaboratoryCents    int64 `json:"enrollment_laboratory_cents"`
	EnrollmentLibraryCents       int64 `json:"enrollment_library_cents"`
	EnrollmentSportsCents        int64 `json:"enrollment_sports_cents"`
	EnrollmentOtherCents         int64 `json:"enrollment_other_cents"`

	EnrollmentTotalCents       int64 `json:"enrollment_total_cents"`
	EnrollmentDiscountCents    int64 `json:"enrollment_discount_cents"`
	EnrollmentNetCents         int64 `json:"enrollment_net_cents"`
	EnrollmentAmountPaidCents  int64 `json:"enrollment_amount_paid_cents"`
	EnrollmentBalanceCents     int64 `json:"enrollment_balance_cents"`
	EnrollmentDownPaymentCents int64 `json:"enrollment_down_payment_cents"`

	EnrollmentPaymentDueDate *time.Time `json:"enrollment_payment_due_date,omitempty"`
	EnrollmentInvoiceID      *uuid.UUID `json:"enrollment_invoice_id,omitempty"`

	EnrollmentApprovedBy *uuid.UUID `json:"enrollment_approved_by,omitempty"`
	EnrollmentApprovedAt *time.Time `json:"enrollment_approved_at,omitempty"`
	EnrollmentRejectedAt *time.Time `json:"enrollment_rejected_at,omitempty"`
	EnrollmentRemarks    *string    `json:"enrollment_remarks,omitempty"`

	EnrollmentInfoRequestMessage *string           `json:"enrollment_info_request_message,omitempty"`
	EnrollmentInfoReplyMessage   *string           `json:"enrollment_info_reply_message,omitempty"`
	EnrollmentInfoMeta           datatypes.JSONMap `json:"enrollment_info_meta,omitempty"`

	EnrollmentCreatedAt time.Time `json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time `json:"enrollment_updated_at"`
}

func ToEnrollmentResponse(m model.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:                 m.EnrollmentID,
		EnrollmentStudentID:          m.EnrollmentStudentID,
		EnrollmentGuardianID:         m.EnrollmentGuardianID,
		EnrollmentSchoolYearID:       m.EnrollmentSchoolYearID,
		EnrollmentPeriodID:           m.EnrollmentPeriodID,
		EnrollmentGradeLevel:         m.EnrollmentGradeLevel,
		EnrollmentPaymentTerms:       m.EnrollmentPaymentTerms,
		EnrollmentStatus:             m.EnrollmentStatus,
		EnrollmentPaymentStatus:      m.EnrollmentPaymentStatus,
		EnrollmentTuitionCents:       m.EnrollmentTuitionCents,
		EnrollmentMiscellaneousCents: m.EnrollmentMiscellaneousCents,
		EnrollmentLaboratoryCents:    m.EnrollmentLaboratoryCents,
		EnrollmentLibraryCents:       m.EnrollmentLibraryCents,
		EnrollmentSportsCents:        m.EnrollmentSportsCents,
		EnrollmentOtherCents:         m.EnrollmentOtherCents,
		EnrollmentTotalCents:         m.EnrollmentTotalCents,
		EnrollmentDiscountCents:      m.EnrollmentDiscountCents,
		EnrollmentNetCents:           m.EnrollmentNetCents,
		EnrollmentAmountPaidCents:    m.EnrollmentAmountPaidCents,
		EnrollmentBalanceCents:       m.EnrollmentBalanceCents,
		EnrollmentDownPaymentCents:   m.EnrollmentDownPaymentCents,
		EnrollmentPaymentDueDate:     m.EnrollmentPaymentDueDate,
		EnrollmentInvoiceID:          m.EnrollmentInvoiceID,
		EnrollmentApprovedBy:         m.EnrollmentApprovedBy,
		EnrollmentApprovedAt:         m.EnrollmentApprovedAt,
		EnrollmentRejectedAt:         m.EnrollmentRejectedAt,
		EnrollmentRemarks:            m.EnrollmentRemarks,
		EnrollmentInfoRequestMessage: m.EnrollmentInfoRequestMessage,
		EnrollmentInfoReplyMessage:   m.EnrollmentInfoReplyMessage,
		EnrollmentInfoMeta:           m.EnrollmentInfoMeta,
		EnrollmentCreatedAt:          m.EnrollmentCreatedAt,
		EnrollmentUpdatedAt:          m.EnrollmentUpdatedAt,
	}
}

func ToEnrollmentResponses(list []model.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToEnrollmentResponse(v))
	}
	return out
}
