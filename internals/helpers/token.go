package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama locals yang di-set middleware AuthJWT
const (
	LocUserID     = "user_id"
	LocRole       = "role"
	LocGuardianID = "guardian_id"
	LocUserName   = "user_name"
)

// GetUserIDFromToken mengambil user_id dari c.Locals.
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocUserID, "User belum login")
}

// GetGuardianIDFromToken: khusus akun guardian; 403 kalau token tidak membawa guardian_id.
func GetGuardianIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := localsUUID(c, LocGuardianID, "")
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini bukan akun guardian")
	}
	return id, nil
}

// GetRoleFromToken mengambil role dari c.Locals("role").
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals(LocRole)
	if v == nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}

func localsUUID(c *fiber.Ctx, key, emptyMsg string) (uuid.UUID, error) {
	if emptyMsg == "" {
		emptyMsg = "Unauthorized"
	}
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID pada token tidak valid")
	}
}

// ParseUUIDParam: ambil path param dan parse jadi uuid.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Parameter "+name+" tidak valid")
	}
	return id, nil
}
