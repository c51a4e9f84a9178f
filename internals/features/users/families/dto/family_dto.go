package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/users/families/model"
)

/* ===================== Guardian ===================== */

type GuardianUpdateDTO struct {
	GuardianFullName *string `json:"guardian_full_name,omitempty" validate:"omitempty,min=3,max=120"`
	GuardianPhone    *string `json:"guardian_phone,omitempty" validate:"omitempty,max=30"`
	GuardianAddress  *string `json:"guardian_address,omitempty" validate:"omitempty,max=255"`
}

type GuardianResponse struct {
	GuardianID       uuid.UUID `json:"guardian_id"`
	GuardianUserID   uuid.UUID `json:"guardian_user_id"`
	GuardianFullName string    `json:"guardian_full_name"`
	GuardianPhone    *string   `json:"guardian_phone,omitempty"`
	GuardianAddress  *string   `json:"guardian_address,omitempty"`
	GuardianCreatedAt time.Time `json:"guardian_created_at"`
}

func ToGuardianResponse(m model.GuardianModel) GuardianResponse {
	return GuardianResponse{
		GuardianID:        m.GuardianID,
		GuardianUserID:    m.GuardianUserID,
		GuardianFullName:  m.GuardianFullName,
		GuardianPhone:     m.GuardianPhone,
		GuardianAddress:   m.GuardianAddress,
		GuardianCreatedAt: m.GuardianCreatedAt,
	}
}

func ApplyGuardianUpdate(m *model.GuardianModel, d GuardianUpdateDTO) {
	if d.GuardianFullName != nil {
		m.GuardianFullName = *d.GuardianFullName
	}
	if d.GuardianPhone != nil {
		m.GuardianPhone = d.GuardianPhone
	}
	if d.GuardianAddress != nil {
		m.GuardianAddress = d.GuardianAddress
	}
}

/* ===================== Student ===================== */

type StudentCreateDTO struct {
	StudentGuardianID uuid.UUID  `json:"student_guardian_id" validate:"required"`
	StudentFullName   string     `json:"student_full_name" validate:"required,min=3,max=120"`
	StudentBirthDate  *time.Time `json:"student_birth_date,omitempty"`
	StudentGradeLevel *string    `json:"student_grade_level,omitempty" validate:"omitempty,max=20"`
}

type StudentUpdateDTO struct {
	StudentFullName   *string    `json:"student_full_name,omitempty" validate:"omitempty,min=3,max=120"`
	StudentBirthDate  *time.Time `json:"student_birth_date,omitempty"`
	StudentGradeLevel *string    `json:"student_grade_level,omitempty" validate:"omitempty,max=20"`
}

type StudentResponse struct {
	StudentID         uuid.UUID  `json:"student_id"`
	StudentGuardianID uuid.UUID  `json:"student_guardian_id"`
	StudentFullName   string     `json:"student_full_name"`
	StudentBirthDate  *time.Time `json:"student_birth_date,omitempty"`
	StudentGradeLevel *string    `json:"student_grade_level,omitempty"`
	StudentCreatedAt  time.Time  `json:"student_created_at"`
}

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:         m.StudentID,
		StudentGuardianID: m.StudentGuardianID,
		StudentFullName:   m.StudentFullName,
		StudentBirthDate:  m.StudentBirthDate,
		StudentGradeLevel: m.StudentGradeLevel,
		StudentCreatedAt:  m.StudentCreatedAt,
	}
}

func ToStudentResponses(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentResponse(v))
	}
	return out
}

func StudentCreateDTOToModel(d StudentCreateDTO) model.StudentModel {
	return model.StudentModel{
		StudentGuardianID: d.StudentGuardianID,
		StudentFullName:   d.StudentFullName,
		StudentBirthDate:  d.StudentBirthDate,
		StudentGradeLevel: d.StudentGradeLevel,
	}
}

func ApplyStudentUpdate(m *model.StudentModel, d StudentUpdateDTO) {
	if d.StudentFullName != nil {
		m.StudentFullName = *d.StudentFullName
	}
	if d.StudentBirthDate != nil {
		m.StudentBirthDate = d.StudentBirthDate
	}
	if d.StudentGradeLevel != nil {
		m.StudentGradeLevel = d.StudentGradeLevel
	}
}
