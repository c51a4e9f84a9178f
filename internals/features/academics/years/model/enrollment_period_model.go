package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// EnrollmentPeriodModel: jendela penerimaan dalam satu tahun ajaran,
// dengan sub-deadline early/regular/late.
type EnrollmentPeriodModel struct {
	EnrollmentPeriodID           uuid.UUID `gorm:"column:enrollment_period_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_period_id"`
	EnrollmentPeriodSchoolYearID uuid.UUID `gorm:"column:enrollment_period_school_year_id;type:uuid;not null;index" json:"enrollment_period_school_year_id"`

	EnrollmentPeriodName     string    `gorm:"column:enrollment_period_name;size:60;not null" json:"enrollment_period_name"`
	EnrollmentPeriodStartsOn time.Time `gorm:"column:enrollment_period_starts_on;type:date;not null;index" json:"enrollment_period_starts_on"`
	EnrollmentPeriodEndsOn   time.Time `gorm:"column:enrollment_period_ends_on;type:date;not null" json:"enrollment_period_ends_on"`

	EnrollmentPeriodEarlyDeadline   *time.Time `gorm:"column:enrollment_period_early_deadline;type:date" json:"enrollment_period_early_deadline,omitempty"`
	EnrollmentPeriodRegularDeadline *time.Time `gorm:"column:enrollment_period_regular_deadline;type:date" json:"enrollment_period_regular_deadline,omitempty"`
	EnrollmentPeriodLateDeadline    *time.Time `gorm:"column:enrollment_period_late_deadline;type:date" json:"enrollment_period_late_deadline,omitempty"`

	// Grade level yang dibuka pada periode ini (text[], kosong = semua)
	EnrollmentPeriodGradeLevels pq.StringArray `gorm:"column:enrollment_period_grade_levels;type:text[]" json:"enrollment_period_grade_levels,omitempty"`

	EnrollmentPeriodIsOpen bool `gorm:"column:enrollment_period_is_open;not null;default:true;index" json:"enrollment_period_is_open"`

	EnrollmentPeriodCreatedAt time.Time      `gorm:"column:enrollment_period_created_at;autoCreateTime" json:"enrollment_period_created_at"`
	EnrollmentPeriodUpdatedAt time.Time      `gorm:"column:enrollment_period_updated_at;autoUpdateTime" json:"enrollment_period_updated_at"`
	EnrollmentPeriodDeletedAt gorm.DeletedAt `gorm:"column:enrollment_period_deleted_at;index" json:"enrollment_period_deleted_at,omitempty"`
}

func (EnrollmentPeriodModel) TableName() string { return "enrollment_periods" }

// AcceptsGrade: cek grade level dibuka di periode ini.
func (p *EnrollmentPeriodModel) AcceptsGrade(grade string) bool {
	if len(p.EnrollmentPeriodGradeLevels) == 0 {
		return true
	}
	for _, g := range p.EnrollmentPeriodGradeLevels {
		if g == grade {
			return true
		}
	}
	return false
}
