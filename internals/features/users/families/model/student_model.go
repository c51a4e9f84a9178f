package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel: calon/peserta didik milik satu guardian.
type StudentModel struct {
	StudentID         uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentGuardianID uuid.UUID `gorm:"column:student_guardian_id;type:uuid;not null;index" json:"student_guardian_id"`

	StudentFullName   string     `gorm:"column:student_full_name;size:120;not null" json:"student_full_name"`
	StudentBirthDate  *time.Time `gorm:"column:student_birth_date;type:date" json:"student_birth_date,omitempty"`
	StudentGradeLevel *string    `gorm:"column:student_grade_level;size:20" json:"student_grade_level,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
