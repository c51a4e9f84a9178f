package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/years/dto"
	"sekolahku_backend/internals/features/academics/years/model"
	helper "sekolahku_backend/internals/helpers"
)

type EnrollmentPeriodController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /enrollment-periods)
// -----------------------------------------
func (h *EnrollmentPeriodController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "starts_on", "asc", helper.DefaultOpts)

	q := h.DB.Model(&model.EnrollmentPeriodModel{})
	if v := c.Query("school_year_id"); v != "" {
		q = q.Where("enrollment_period_school_year_id = ?", v)
	}
	if v := c.Query("open"); v != "" {
		q = q.Where("enrollment_period_is_open = ?", strings.EqualFold(v, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"starts_on":  "enrollment_period_starts_on",
		"name":       "enrollment_period_name",
		"created_at": "enrollment_period_created_at",
	}
	var list []model.EnrollmentPeriodModel
	if err := q.
		Order(p.OrderClause(allowed, "starts_on")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToEnrollmentPeriodResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Current (GET /enrollment-periods/current)
// Periode open yang jendelanya mencakup hari ini.
// Kalau tumpang tindih, ambil yang starts_on paling awal.
// -----------------------------------------
func (h *EnrollmentPeriodController) Current(c *fiber.Ctx) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var m model.EnrollmentPeriodModel
	err := h.DB.
		Where("enrollment_period_is_open = TRUE").
		Where("enrollment_period_starts_on <= ? AND enrollment_period_ends_on >= ?", today, today).
		Order("enrollment_period_starts_on ASC, enrollment_period_created_at ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada periode penerimaan yang sedang berjalan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToEnrollmentPeriodResponse(m))
}

// -----------------------------------------
// Detail (GET /enrollment-periods/:id)
// -----------------------------------------
func (h *EnrollmentPeriodController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m model.EnrollmentPeriodModel
	if err := h.DB.First(&m, "enrollment_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "periode penerimaan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToEnrollmentPeriodResponse(m))
}

// -----------------------------------------
// Create (POST /enrollment-periods)
// -----------------------------------------
func (h *EnrollmentPeriodController) Create(c *fiber.Ctx) error {
	var in dto.EnrollmentPeriodCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	in.EnrollmentPeriodName = strings.TrimSpace(in.EnrollmentPeriodName)
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	if !in.EnrollmentPeriodEndsOn.After(in.EnrollmentPeriodStartsOn) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai harus setelah tanggal mulai")
	}
	if err := validateDeadlineOrder(in.EnrollmentPeriodEarlyDeadline, in.EnrollmentPeriodRegularDeadline, in.EnrollmentPeriodLateDeadline); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := dto.EnrollmentPeriodCreateDTOToModel(in)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var sy int64
		if err := tx.Table("school_years").
			Where("school_year_id = ? AND school_year_deleted_at IS NULL", in.EnrollmentPeriodSchoolYearID).
			Count(&sy).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek tahun ajaran")
		}
		if sy == 0 {
			return fiber.NewError(fiber.StatusNotFound, "tahun ajaran tidak ditemukan")
		}
		return tx.Create(&m).Error
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "periode penerimaan dibuat", dto.ToEnrollmentPeriodResponse(m))
}

// -----------------------------------------
// Update (PATCH /enrollment-periods/:id)
// -----------------------------------------
func (h *EnrollmentPeriodController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var in dto.EnrollmentPeriodUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var m model.EnrollmentPeriodModel
	if err := h.DB.First(&m, "enrollment_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "periode penerimaan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyEnrollmentPeriodUpdate(&m, in)
	if !m.EnrollmentPeriodEndsOn.After(m.EnrollmentPeriodStartsOn) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai harus setelah tanggal mulai")
	}
	if err := validateDeadlineOrder(m.EnrollmentPeriodEarlyDeadline, m.EnrollmentPeriodRegularDeadline, m.EnrollmentPeriodLateDeadline); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "periode penerimaan diperbarui", dto.ToEnrollmentPeriodResponse(m))
}

// -----------------------------------------
// Delete (DELETE /enrollment-periods/:id)
// Ditolak kalau sudah ada enrollment di periode ini.
// -----------------------------------------
func (h *EnrollmentPeriodController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.EnrollmentPeriodModel
	if err := h.DB.First(&m, "enrollment_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "periode penerimaan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Table("enrollments").
			Where("enrollment_period_id = ? AND enrollment_deleted_at IS NULL", id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek enrollment")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Periode masih punya enrollment, tidak bisa dihapus")
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "periode penerimaan dihapus", dto.ToEnrollmentPeriodResponse(m))
}

// early <= regular <= late (yang nil dilewati)
func validateDeadlineOrder(early, regular, late *time.Time) error {
	if early != nil && regular != nil && early.After(*regular) {
		return fiber.NewError(fiber.StatusBadRequest, "Deadline early harus sebelum deadline regular")
	}
	if regular != nil && late != nil && regular.After(*late) {
		return fiber.NewError(fiber.StatusBadRequest, "Deadline regular harus sebelum deadline late")
	}
	if early != nil && late != nil && early.After(*late) {
		return fiber.NewError(fiber.StatusBadRequest, "Deadline early harus sebelum deadline late")
	}
	return nil
}
