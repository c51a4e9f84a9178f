package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/authz"
	"sekolahku_backend/internals/features/users/families/dto"
	"sekolahku_backend/internals/features/users/families/model"
	helper "sekolahku_backend/internals/helpers"
)

type GuardianController struct {
	DB *gorm.DB
}

// List (GET /guardians) - staf saja (route guard)
func (h *GuardianController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&model.GuardianModel{})
	if v := strings.TrimSpace(c.Query("name")); v != "" {
		q = q.Where("guardian_full_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "guardian_created_at",
		"name":       "guardian_full_name",
	}
	var list []model.GuardianModel
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.GuardianResponse, 0, len(list))
	for _, g := range list {
		out = append(out, dto.ToGuardianResponse(g))
	}
	return helper.JsonList(c, "ok", out, helper.BuildMeta(total, p))
}

// Detail (GET /guardians/:id)
func (h *GuardianController) Detail(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.GuardianModel
	if err := h.DB.First(&m, "guardian_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "guardian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !authz.Can(actor, authz.ActionRead, authz.Resource{Kind: authz.ResGuardian, OwnerGuardianID: &m.GuardianID}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh melihat guardian ini")
	}
	return helper.JsonOK(c, "ok", dto.ToGuardianResponse(m))
}

// Update (PATCH /guardians/:id) - guardian sendiri atau staf
func (h *GuardianController) Update(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.GuardianUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var m model.GuardianModel
	if err := h.DB.First(&m, "guardian_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "guardian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !authz.Can(actor, authz.ActionUpdate, authz.Resource{Kind: authz.ResGuardian, OwnerGuardianID: &m.GuardianID}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh mengubah guardian ini")
	}

	dto.ApplyGuardianUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "guardian diperbarui", dto.ToGuardianResponse(m))
}
