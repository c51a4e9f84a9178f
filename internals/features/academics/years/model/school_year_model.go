package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolYearModel: tahun ajaran, mis. "2026/2027".
type SchoolYearModel struct {
	SchoolYearID uuid.UUID `gorm:"column:school_year_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_year_id"`

	SchoolYearName     string    `gorm:"column:school_year_name;size:20;not null;uniqueIndex" json:"school_year_name"`
	SchoolYearStartsOn time.Time `gorm:"column:school_year_starts_on;type:date;not null" json:"school_year_starts_on"`
	SchoolYearEndsOn   time.Time `gorm:"column:school_year_ends_on;type:date;not null" json:"school_year_ends_on"`
	SchoolYearIsActive bool      `gorm:"column:school_year_is_active;not null;default:false;index" json:"school_year_is_active"`

	SchoolYearCreatedAt time.Time      `gorm:"column:school_year_created_at;autoCreateTime" json:"school_year_created_at"`
	SchoolYearUpdatedAt time.Time      `gorm:"column:school_year_updated_at;autoUpdateTime" json:"school_year_updated_at"`
	SchoolYearDeletedAt gorm.DeletedAt `gorm:"column:school_year_deleted_at;index" json:"school_year_deleted_at,omitempty"`
}

func (SchoolYearModel) TableName() string { return "school_years" }
