package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/authz"
	"sekolahku_backend/internals/constants"
	familycontroller "sekolahku_backend/internals/features/users/families/controller"
)

// FamilyRoutes: profil guardian + data siswa. Semua di belakang JWT;
// pembatasan kepemilikan ada di controller (authz.Can).
func FamilyRoutes(api fiber.Router, db *gorm.DB) {
	guardianCtrl := &familycontroller.GuardianController{DB: db}
	studentCtrl := &familycontroller.StudentController{DB: db}

	guardians := api.Group("/guardians")
	guardians.Get("/", authz.RequireRoles("guardian", constants.StaffRoles...), guardianCtrl.List)
	guardians.Get("/:id", guardianCtrl.Detail)
	guardians.Patch("/:id", guardianCtrl.Update)

	students := api.Group("/students")
	students.Get("/", studentCtrl.List)
	students.Post("/", studentCtrl.Create)
	students.Get("/:id", studentCtrl.Detail)
	students.Patch("/:id", studentCtrl.Update)
	students.Delete("/:id", authz.RequireRoles("student", constants.RegistrarAndAbove...), studentCtrl.Delete)
}
