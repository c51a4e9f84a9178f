package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/academics/years/model"
)

/* ===================== SchoolYear ===================== */

type SchoolYearCreateDTO struct {
	SchoolYearName     string    `json:"school_year_name" validate:"required,max=20"`
	SchoolYearStartsOn time.Time `json:"school_year_starts_on" validate:"required"`
	SchoolYearEndsOn   time.Time `json:"school_year_ends_on" validate:"required"`
	SchoolYearIsActive bool      `json:"school_year_is_active"`
}

type SchoolYearUpdateDTO struct {
	SchoolYearName     *string    `json:"school_year_name,omitempty" validate:"omitempty,max=20"`
	SchoolYearStartsOn *time.Time `json:"school_year_starts_on,omitempty"`
	SchoolYearEndsOn   *time.Time `json:"school_year_ends_on,omitempty"`
	SchoolYearIsActive *bool      `json:"school_year_is_active,omitempty"`
}

type SchoolYearResponse struct {
	SchoolYearID       uuid.UUID `json:"school_year_id"`
	SchoolYearName     string    `json:"school_year_name"`
	SchoolYearStartsOn time.Time `json:"school_year_starts_on"`
	SchoolYearEndsOn   time.Time `json:"school_year_ends_on"`
	SchoolYearIsActive bool      `json:"school_year_is_active"`
	SchoolYearCreatedAt time.Time `json:"school_year_created_at"`
}

func ToSchoolYearResponse(m model.SchoolYearModel) SchoolYearResponse {
	return SchoolYearResponse{
		SchoolYearID:        m.SchoolYearID,
		SchoolYearName:      m.SchoolYearName,
		SchoolYearStartsOn:  m.SchoolYearStartsOn,
		SchoolYearEndsOn:    m.SchoolYearEndsOn,
		SchoolYearIsActive:  m.SchoolYearIsActive,
		SchoolYearCreatedAt: m.SchoolYearCreatedAt,
	}
}

func ToSchoolYearResponses(list []model.SchoolYearModel) []SchoolYearResponse {
	out := make([]SchoolYearResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToSchoolYearResponse(v))
	}
	return out
}

func SchoolYearCreateDTOToModel(d SchoolYearCreateDTO) model.SchoolYearModel {
	return model.SchoolYearModel{
		SchoolYearName:     d.SchoolYearName,
		SchoolYearStartsOn: d.SchoolYearStartsOn,
		SchoolYearEndsOn:   d.SchoolYearEndsOn,
		SchoolYearIsActive: d.SchoolYearIsActive,
	}
}

func ApplySchoolYearUpdate(m *model.SchoolYearModel, d SchoolYearUpdateDTO) {
	if d.SchoolYearName != nil {
		m.SchoolYearName = *d.SchoolYearName
	}
	if d.SchoolYearStartsOn != nil {
		m.SchoolYearStartsOn = *d.SchoolYearStartsOn
	}
	if d.SchoolYearEndsOn != nil {
		m.SchoolYearEndsOn = *d.SchoolYearEndsOn
	}
	if d.SchoolYearIsActive != nil {
		m.SchoolYearIsActive = *d.SchoolYearIsActive
	}
}

/* ===================== EnrollmentPeriod ===================== */

type EnrollmentPeriodCreateDTO struct {
	EnrollmentPeriodSchoolYearID uuid.UUID `json:"enrollment_period_school_year_id" validate:"required"`
	EnrollmentPeriodName         string    `json:"enrollment_period_name" validate:"required,max=60"`
	EnrollmentPeriodStartsOn     time.Time `json:"enrollment_period_starts_on" validate:"required"`
	EnrollmentPeriodEndsOn       time.Time `json:"enrollment_period_ends_on" validate:"required"`

	EnrollmentPeriodEarlyDeadline   *time.Time `json:"enrollment_period_early_deadline,omitempty"`
	EnrollmentPeriodRegularDeadline *time.Time `json:"enrollment_period_regular_deadline,omitempty"`
	EnrollmentPeriodLateDeadline    *time.Time `json:"enrollment_period_late_deadline,omitempty"`

	EnrollmentPeriodGradeLevels []string `json:"enrollment_period_grade_levels,omitempty"`
	EnrollmentPeriodIsOpen      *bool    `json:"enrollment_period_is_open,omitempty"`
}

type EnrollmentPeriodUpdateDTO struct {
	EnrollmentPeriodName     *string    `json:"enrollment_period_name,omitempty" validate:"omitempty,max=60"`
	EnrollmentPeriodStartsOn *time.Time `json:"enrollment_period_starts_on,omitempty"`
	EnrollmentPeriodEndsOn   *time.Time `json:"enrollment_period_ends_on,omitempty"`

	EnrollmentPeriodEarlyDeadline   *time.Time `json:"enrollment_period_early_deadline,omitempty"`
	EnrollmentPeriodRegularDeadline *time.Time `json:"enrollment_period_regular_deadline,omitempty"`
	EnrollmentPeriodLateDeadline    *time.Time `json:"enrollment_period_late_deadline,omitempty"`

	EnrollmentPeriodGradeLevels []string `json:"enrollment_period_grade_levels,omitempty"`
	EnrollmentPeriodIsOpen      *bool    `json:"enrollment_period_is_open,omitempty"`
}

type EnrollmentPeriodResponse struct {
	EnrollmentPeriodID           uuid.UUID `json:"enrollment_period_id"`
	EnrollmentPeriodSchoolYearID uuid.UUID `json:"enrollment_period_school_year_id"`
	EnrollmentPeriodName         string    `json:"enrollment_period_name"`
	EnrollmentPeriodStartsOn     time.Time `json:"enrollment_period_starts_on"`
	EnrollmentPeriodEndsOn       time.Time `json:"enrollment_period_ends_on"`

	EnrollmentPeriodEarlyDeadline   *time.Time `json:"enrollment_period_early_deadline,omitempty"`
	EnrollmentPeriodRegularDeadline *time.Time `json:"enrollment_period_regular_deadline,omitempty"`
	EnrollmentPeriodLateDeadline    *time.Time `json:"enrollment_period_late_deadline,omitempty"`

	EnrollmentPeriodGradeLevels []string `json:"enrollment_period_grade_levels,omitempty"`
	EnrollmentPeriodIsOpen      bool     `json:"enrollment_period_is_open"`
	EnrollmentPeriodCreatedAt   time.Time `json:"enrollment_period_created_at"`
}

func ToEnrollmentPeriodResponse(m model.EnrollmentPeriodModel) EnrollmentPeriodResponse {
	return EnrollmentPeriodResponse{
		EnrollmentPeriodID:              m.EnrollmentPeriodID,
		EnrollmentPeriodSchoolYearID:    m.EnrollmentPeriodSchoolYearID,
		EnrollmentPeriodName:            m.EnrollmentPeriodName,
		EnrollmentPeriodStartsOn:        m.EnrollmentPeriodStartsOn,
		EnrollmentPeriodEndsOn:          m.EnrollmentPeriodEndsOn,
		EnrollmentPeriodEarlyDeadline:   m.EnrollmentPeriodEarlyDeadline,
		EnrollmentPeriodRegularDeadline: m.EnrollmentPeriodRegularDeadline,
		EnrollmentPeriodLateDeadline:    m.EnrollmentPeriodLateDeadline,
		EnrollmentPeriodGradeLevels:     m.EnrollmentPeriodGradeLevels,
		EnrollmentPeriodIsOpen:          m.EnrollmentPeriodIsOpen,
		EnrollmentPeriodCreatedAt:       m.EnrollmentPeriodCreatedAt,
	}
}

func ToEnrollmentPeriodResponses(list []model.EnrollmentPeriodModel) []EnrollmentPeriodResponse {
	out := make([]EnrollmentPeriodResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToEnrollmentPeriodResponse(v))
	}
	return out
}

func EnrollmentPeriodCreateDTOToModel(d EnrollmentPeriodCreateDTO) model.EnrollmentPeriodModel {
	m := model.EnrollmentPeriodModel{
		EnrollmentPeriodSchoolYearID:    d.EnrollmentPeriodSchoolYearID,
		EnrollmentPeriodName:            d.EnrollmentPeriodName,
		EnrollmentPeriodStartsOn:        d.EnrollmentPeriodStartsOn,
		EnrollmentPeriodEndsOn:          d.EnrollmentPeriodEndsOn,
		EnrollmentPeriodEarlyDeadline:   d.EnrollmentPeriodEarlyDeadline,
		EnrollmentPeriodRegularDeadline: d.EnrollmentPeriodRegularDeadline,
		EnrollmentPeriodLateDeadline:    d.EnrollmentPeriodLateDeadline,
		EnrollmentPeriodGradeLevels:     d.EnrollmentPeriodGradeLevels,
		EnrollmentPeriodIsOpen:          true,
	}
	if d.EnrollmentPeriodIsOpen != nil {
		m.EnrollmentPeriodIsOpen = *d.EnrollmentPeriodIsOpen
	}
	return m
}

func ApplyEnrollmentPeriodUpdate(m *model.EnrollmentPeriodModel, d EnrollmentPeriodUpdateDTO) {
	if d.EnrollmentPeriodName != nil {
		m.EnrollmentPeriodName = *d.EnrollmentPeriodName
	}
	if d.EnrollmentPeriodStartsOn != nil {
		m.EnrollmentPeriodStartsOn = *d.EnrollmentPeriodStartsOn
	}
	if d.EnrollmentPeriodEndsOn != nil {
		m.EnrollmentPeriodEndsOn = *d.EnrollmentPeriodEndsOn
	}
	if d.EnrollmentPeriodEarlyDeadline != nil {
		m.EnrollmentPeriodEarlyDeadline = d.EnrollmentPeriodEarlyDeadline
	}
	if d.EnrollmentPeriodRegularDeadline != nil {
		m.EnrollmentPeriodRegularDeadline = d.EnrollmentPeriodRegularDeadline
	}
	if d.EnrollmentPeriodLateDeadline != nil {
		m.EnrollmentPeriodLateDeadline = d.EnrollmentPeriodLateDeadline
	}
	if d.EnrollmentPeriodGradeLevels != nil {
		m.EnrollmentPeriodGradeLevels = d.EnrollmentPeriodGradeLevels
	}
	if d.EnrollmentPeriodIsOpen != nil {
		m.EnrollmentPeriodIsOpen = *d.EnrollmentPeriodIsOpen
	}
}
