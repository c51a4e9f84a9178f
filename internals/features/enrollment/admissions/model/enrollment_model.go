package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status pendaftaran
const (
	EnrollmentStatusPending         = "pending"
	EnrollmentStatusApproved        = "approved"
	EnrollmentStatusReadyForPayment = "ready_for_payment"
	EnrollmentStatusEnrolled        = "enrolled"
	EnrollmentStatusCompleted       = "completed"
	EnrollmentStatusRejected        = "rejected"
)

// Status pembayaran (turunan, jangan di-set manual di luar service)
const (
	PaymentStatusPending = "pending"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

// EnrollmentModel: pendaftaran siswa per periode, lengkap dengan
// snapshot biaya dalam sen supaya perubahan tarif tidak mengubah
// tagihan pendaftaran yang sudah jalan.
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	EnrollmentStudentID    uuid.UUID `gorm:"column:enrollment_student_id;type:uuid;not null;index" json:"enrollment_student_id"`
	EnrollmentGuardianID   uuid.UUID `gorm:"column:enrollment_guardian_id;type:uuid;not null;index" json:"enrollment_guardian_id"`
	EnrollmentSchoolYearID uuid.UUID `gorm:"column:enrollment_school_year_id;type:uuid;not null;index" json:"enrollment_school_year_id"`
	EnrollmentPeriodID     uuid.UUID `gorm:"column:enrollment_period_id;type:uuid;not null;index" json:"enrollment_period_id"`

	EnrollmentGradeLevel   string `gorm:"column:enrollment_grade_level;size:30;not null" json:"enrollment_grade_level"`
	EnrollmentPaymentTerms string `gorm:"column:enrollment_payment_terms;size:12;not null" json:"enrollment_payment_terms"`

	EnrollmentStatus        string `gorm:"column:enrollment_status;size:20;not null;default:'pending';index" json:"enrollment_status"`
	EnrollmentPaymentStatus string `gorm:"column:enrollment_payment_status;size:10;not null;default:'pending';index" json:"enrollment_payment_status"`

	// Snapshot biaya (sen)
	EnrollmentTuitionCents       int64 `gorm:"column:enrollment_tuition_cents;not null;default:0" json:"enrollment_tuition_cents"`
	EnrollmentMiscellaneousCents int64 `gorm:"column:enrollment_miscellaneous_cents;not null;default:0" json:"enrollment_miscellaneous_cents"`
	EnrollmentLaboratoryCents    int64 `gorm:"column:enrollment_laboratory_cents;not null;default:0" json:"enrollment_laboratory_cents"`
	EnrollmentLibraryCents       int64 `gorm:"column:enrollment_library_cents;not null;default:0" json:"enrollment_library_cents"`
	EnrollmentSportsCents        int64 `gorm:"column:enrollment_sports_cents;not null;default:0" json:"enrollment_sports_cents"`
	EnrollmentOtherCents         int64 `gorm:"column:enrollment_other_cents;not null;default:0" json:"enrollment_other_cents"`

	EnrollmentTotalCents      int64 `gorm:"column:enrollment_total_cents;not null;default:0" json:"enrollment_total_cents"`
	EnrollmentDiscountCents   int64 `gorm:"column:enrollment_discount_cents;not null;default:0" json:"enrollment_discount_cents"`
	EnrollmentNetCents        int64 `gorm:"column:enrollment_net_cents;not null;default:0" json:"enrollment_net_cents"`
	EnrollmentAmountPaidCents int64 `gorm:"column:enrollment_amount_paid_cents;not null;default:0" json:"enrollment_amount_paid_cents"`
	EnrollmentBalanceCents    int64 `gorm:"column:enrollment_balance_cents;not null;default:0" json:"enrollment_balance_cents"`

	EnrollmentDownPaymentCents int64 `gorm:"column:enrollment_down_payment_cents;not null;default:0" json:"enrollment_down_payment_cents"`

	EnrollmentPaymentDueDate *time.Time `gorm:"column:enrollment_payment_due_date;type:date" json:"enrollment_payment_due_date,omitempty"`
	EnrollmentInvoiceID      *uuid.UUID `gorm:"column:enrollment_invoice_id;type:uuid;index" json:"enrollment_invoice_id,omitempty"`

	// Metadata persetujuan
	EnrollmentApprovedBy *uuid.UUID `gorm:"column:enrollment_approved_by;type:uuid" json:"enrollment_approved_by,omitempty"`
	EnrollmentApprovedAt *time.Time `gorm:"column:enrollment_approved_at" json:"enrollment_approved_at,omitempty"`
	EnrollmentRejectedAt *time.Time `gorm:"column:enrollment_rejected_at" json:"enrollment_rejected_at,omitempty"`
	EnrollmentRemarks    *string    `gorm:"column:enrollment_remarks;size:500" json:"enrollment_remarks,omitempty"`

	// Tanya-jawab registrar <-> guardian
	EnrollmentInfoRequestMessage *string           `gorm:"column:enrollment_info_request_message;size:500" json:"enrollment_info_request_message,omitempty"`
	EnrollmentInfoReplyMessage   *string           `gorm:"column:enrollment_info_reply_message;size:500" json:"enrollment_info_reply_message,omitempty"`
	EnrollmentInfoMeta           datatypes.JSONMap `gorm:"column:enrollment_info_meta;type:jsonb" json:"enrollment_info_meta,omitempty"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) IsTerminal() bool {
	return m.EnrollmentStatus == EnrollmentStatusCompleted ||
		m.EnrollmentStatus == EnrollmentStatusRejected
}

func (m *EnrollmentModel) IsFullyPaid() bool {
	return m.EnrollmentBalanceCents <= 0
}
