package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/users/account/dto"
	"sekolahku_backend/internals/features/users/account/model"
	"sekolahku_backend/internals/features/users/account/service"
	familyModel "sekolahku_backend/internals/features/users/families/model"
	helper "sekolahku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

// -----------------------------------------
// Register (POST /auth/register) - guardian self-serve
// -----------------------------------------
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	u := model.UserModel{
		UserName:  req.UserName,
		UserEmail: req.Email,
		UserRole:  constants.RoleGuardian,
	}
	if err := u.SetPassword(req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	var g familyModel.GuardianModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.UserModel{}).
			Where("lower(user_email) = ? AND user_deleted_at IS NULL", req.Email).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek email")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}

		if err := tx.Create(&u).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
		}

		g = familyModel.GuardianModel{
			GuardianUserID:   u.UserID,
			GuardianFullName: u.UserName,
			GuardianPhone:    req.Phone,
			GuardianAddress:  req.Address,
		}
		if err := tx.Create(&g).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat profil guardian")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	token, err := service.IssueAccessToken(u, &g.GuardianID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "registrasi berhasil", dto.AuthResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(u, &g.GuardianID),
	})
}

// -----------------------------------------
// Login (POST /auth/login)
// -----------------------------------------
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	var u model.UserModel
	if err := h.DB.First(&u, "lower(user_email) = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun nonaktif")
	}
	if !u.CheckPassword(req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return h.respondWithToken(c, u)
}

// -----------------------------------------
// Google Login (POST /auth/google)
// -----------------------------------------
func (h *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, req); err != nil {
		return err
	}

	email, name, err := service.GoogleEmail(req.IDToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	email = strings.ToLower(strings.TrimSpace(email))

	var u model.UserModel
	err = h.DB.First(&u, "lower(user_email) = ?", email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// akun baru via Google → daftarkan sebagai guardian
		u = model.UserModel{
			UserName:  name,
			UserEmail: email,
			UserRole:  constants.RoleGuardian,
		}
		_ = u.SetPassword(uuid.NewString()) // random; login akun ini selalu via Google
		if err := h.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&u).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
			}
			g := familyModel.GuardianModel{GuardianUserID: u.UserID, GuardianFullName: name}
			return tx.Create(&g).Error
		}); err != nil {
			return helper.FromFiberError(c, err)
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return h.respondWithToken(c, u)
}

// -----------------------------------------
// Me (GET /auth/me)
// -----------------------------------------
func (h *AuthController) Me(c *fiber.Ctx) error {
	uid, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var u model.UserModel
	if err := h.DB.First(&u, "user_id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	gid := h.guardianIDFor(u)
	return helper.JsonOK(c, "ok", dto.ToUserResponse(u, gid))
}

func (h *AuthController) respondWithToken(c *fiber.Ctx, u model.UserModel) error {
	gid := h.guardianIDFor(u)
	token, err := service.IssueAccessToken(u, gid)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "login berhasil", dto.AuthResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(u, gid),
	})
}

func (h *AuthController) guardianIDFor(u model.UserModel) *uuid.UUID {
	if u.UserRole != constants.RoleGuardian {
		return nil
	}
	var g familyModel.GuardianModel
	if err := h.DB.First(&g, "guardian_user_id = ?", u.UserID).Error; err != nil {
		return nil
	}
	return &g.GuardianID
}
