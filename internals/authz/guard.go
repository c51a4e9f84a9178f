package authz

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
)

// ActorFromCtx membangun Actor dari locals hasil AuthJWT.
func ActorFromCtx(c *fiber.Ctx) (Actor, error) {
	uid, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return Actor{}, err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return Actor{}, err
	}
	a := Actor{UserID: uid, Role: role}
	if gid, err := helper.GetGuardianIDFromToken(c); err == nil && gid != uuid.Nil {
		a.GuardianID = &gid
	}
	return a, nil
}

// RequireRoles: guard route sederhana berbasis daftar role.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, err := helper.GetRoleFromToken(c)
		if err != nil {
			return err
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorRegistrar(feature))
		}
		return c.Next()
	}
}
