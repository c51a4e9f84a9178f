package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/fees/dto"
	"sekolahku_backend/internals/features/academics/fees/model"
	"sekolahku_backend/internals/features/academics/fees/service"
	helper "sekolahku_backend/internals/helpers"
)

type GradeLevelFeeController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /grade-level-fees)
// -----------------------------------------
func (h *GradeLevelFeeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "grade_level", "asc", helper.DefaultOpts)

	q := h.DB.Model(&model.GradeLevelFeeModel{})
	if v := c.Query("enrollment_period_id"); v != "" {
		q = q.Where("grade_level_fee_enrollment_period_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("grade_level")); v != "" {
		q = q.Where("grade_level_fee_grade_level = ?", v)
	}
	if v := c.Query("payment_terms"); v != "" {
		if !model.IsValidPaymentTerms(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "payment_terms tidak dikenal")
		}
		q = q.Where("grade_level_fee_payment_terms = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"grade_level": "grade_level_fee_grade_level",
		"created_at":  "grade_level_fee_created_at",
	}
	var list []model.GradeLevelFeeModel
	if err := q.
		Order(p.OrderClause(allowed, "grade_level")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToGradeLevelFeeResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /grade-level-fees/:id)
// -----------------------------------------
func (h *GradeLevelFeeController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m model.GradeLevelFeeModel
	if err := h.DB.First(&m, "grade_level_fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tarif tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToGradeLevelFeeResponse(m))
}

// -----------------------------------------
// Create (POST /grade-level-fees)
// Uang muka dihitung sekali di sini dan disimpan.
// -----------------------------------------
func (h *GradeLevelFeeController) Create(c *fiber.Ctx) error {
	var in dto.GradeLevelFeeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	in.GradeLevelFeeGradeLevel = strings.TrimSpace(in.GradeLevelFeeGradeLevel)
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	m := dto.GradeLevelFeeCreateDTOToModel(in)
	m.GradeLevelFeeDownPaymentCents = service.DefaultDownPayment(
		service.ComponentsOf(m), m.GradeLevelFeePaymentTerms)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Table("enrollment_periods").
			Where("enrollment_period_id = ? AND enrollment_period_deleted_at IS NULL", in.GradeLevelFeeEnrollmentPeriodID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek periode penerimaan")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "periode penerimaan tidak ditemukan")
		}
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Tarif untuk kombinasi grade/periode/skema sudah ada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tarif")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "tarif dibuat", dto.ToGradeLevelFeeResponse(m))
}

// -----------------------------------------
// Update (PATCH /grade-level-fees/:id)
// Komponen berubah -> uang muka dihitung ulang.
// -----------------------------------------
func (h *GradeLevelFeeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var in dto.GradeLevelFeeUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var m model.GradeLevelFeeModel
	if err := h.DB.First(&m, "grade_level_fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tarif tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyGradeLevelFeeUpdate(&m, in)
	m.GradeLevelFeeDownPaymentCents = service.DefaultDownPayment(
		service.ComponentsOf(m), m.GradeLevelFeePaymentTerms)

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "tarif diperbarui", dto.ToGradeLevelFeeResponse(m))
}

// -----------------------------------------
// Delete (DELETE /grade-level-fees/:id)
// -----------------------------------------
func (h *GradeLevelFeeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m model.GradeLevelFeeModel
	if err := h.DB.First(&m, "grade_level_fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tarif tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "tarif dihapus", dto.ToGradeLevelFeeResponse(m))
}
