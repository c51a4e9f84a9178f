package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/authz"
	"sekolahku_backend/internals/features/users/families/dto"
	"sekolahku_backend/internals/features/users/families/model"
	helper "sekolahku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /students)
// Staf melihat semua; guardian otomatis dibatasi miliknya.
// -----------------------------------------
func (h *StudentController) List(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	q := h.DB.Model(&model.StudentModel{})

	if actor.GuardianID != nil {
		q = q.Where("student_guardian_id = ?", *actor.GuardianID)
	} else if v := c.Query("guardian_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("student_guardian_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("name")); v != "" {
		q = q.Where("student_full_name ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(c.Query("grade_level")); v != "" {
		q = q.Where("student_grade_level = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "student_created_at",
		"name":       "student_full_name",
	}
	var list []model.StudentModel
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToStudentResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Create (POST /students)
// -----------------------------------------
func (h *StudentController) Create(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	// guardian hanya boleh menambah anak untuk dirinya sendiri
	if actor.GuardianID != nil {
		in.StudentGuardianID = *actor.GuardianID
	}
	in.StudentFullName = strings.TrimSpace(in.StudentFullName)
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	if !authz.Can(actor, authz.ActionCreate, authz.Resource{Kind: authz.ResStudent, OwnerGuardianID: &in.StudentGuardianID}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh menambah student untuk guardian lain")
	}

	m := dto.StudentCreateDTOToModel(in)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "student dibuat", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Detail (GET /students/:id)
// -----------------------------------------
func (h *StudentController) Detail(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.StudentModel
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !authz.Can(actor, authz.ActionRead, authz.Resource{Kind: authz.ResStudent, OwnerGuardianID: &m.StudentGuardianID}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh melihat student ini")
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Update (PATCH /students/:id)
// -----------------------------------------
func (h *StudentController) Update(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var m model.StudentModel
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !authz.Can(actor, authz.ActionUpdate, authz.Resource{Kind: authz.ResStudent, OwnerGuardianID: &m.StudentGuardianID}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh mengubah student ini")
	}

	dto.ApplyStudentUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "student diperbarui", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Delete (DELETE /students/:id) - soft delete, khusus registrar
// -----------------------------------------
func (h *StudentController) Delete(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.StudentModel
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !authz.Can(actor, authz.ActionDelete, authz.Resource{Kind: authz.ResStudent, OwnerGuardianID: &m.StudentGuardianID}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh menghapus student ini")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "student dihapus", dto.ToStudentResponse(m))
}
