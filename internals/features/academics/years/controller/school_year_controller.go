package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/academics/years/dto"
	"sekolahku_backend/internals/features/academics/years/model"
	helper "sekolahku_backend/internals/helpers"
)

type SchoolYearController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /school-years)
// -----------------------------------------
func (h *SchoolYearController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "starts_on", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.SchoolYearModel{})
	if v := c.Query("active"); v != "" {
		q = q.Where("school_year_is_active = ?", strings.EqualFold(v, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"starts_on":  "school_year_starts_on",
		"name":       "school_year_name",
		"created_at": "school_year_created_at",
	}
	var list []model.SchoolYearModel
	if err := q.
		Order(p.OrderClause(allowed, "starts_on")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToSchoolYearResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Create (POST /school-years)
// -----------------------------------------
func (h *SchoolYearController) Create(c *fiber.Ctx) error {
	var in dto.SchoolYearCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	in.SchoolYearName = strings.TrimSpace(in.SchoolYearName)
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	if !in.SchoolYearEndsOn.After(in.SchoolYearStartsOn) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai harus setelah tanggal mulai")
	}

	m := dto.SchoolYearCreateDTOToModel(in)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if m.SchoolYearIsActive {
			// hanya satu tahun ajaran aktif
			if err := tx.Model(&model.SchoolYearModel{}).
				Where("school_year_is_active = TRUE").
				Update("school_year_is_active", false).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menonaktifkan tahun ajaran lama")
			}
		}
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Nama tahun ajaran sudah dipakai")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tahun ajaran")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "tahun ajaran dibuat", dto.ToSchoolYearResponse(m))
}

// -----------------------------------------
// Update (PATCH /school-years/:id)
// -----------------------------------------
func (h *SchoolYearController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var in dto.SchoolYearUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var m model.SchoolYearModel
	if err := h.DB.First(&m, "school_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tahun ajaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplySchoolYearUpdate(&m, in)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if m.SchoolYearIsActive {
			if err := tx.Model(&model.SchoolYearModel{}).
				Where("school_year_is_active = TRUE AND school_year_id <> ?", m.SchoolYearID).
				Update("school_year_is_active", false).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menonaktifkan tahun ajaran lama")
			}
		}
		return tx.Save(&m).Error
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "tahun ajaran diperbarui", dto.ToSchoolYearResponse(m))
}

// -----------------------------------------
// Delete (DELETE /school-years/:id)
// Ditolak kalau sudah ada enrollment yang menempel.
// -----------------------------------------
func (h *SchoolYearController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.SchoolYearModel
	if err := h.DB.First(&m, "school_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tahun ajaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Table("enrollments").
			Where("enrollment_school_year_id = ? AND enrollment_deleted_at IS NULL", id).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek enrollment")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Tahun ajaran masih punya enrollment, tidak bisa dihapus")
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "tahun ajaran dihapus", dto.ToSchoolYearResponse(m))
}
