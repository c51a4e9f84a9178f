package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/authz"
	"sekolahku_backend/internals/constants"
	feecontroller "sekolahku_backend/internals/features/academics/fees/controller"
	yearcontroller "sekolahku_backend/internals/features/academics/years/controller"
)

// AcademicRoutes: tahun ajaran, periode penerimaan, dan tabel tarif.
// Baca bebas untuk semua yang login; tulis khusus registrar.
func AcademicRoutes(api fiber.Router, db *gorm.DB) {
	yearCtrl := &yearcontroller.SchoolYearController{DB: db}
	periodCtrl := &yearcontroller.EnrollmentPeriodController{DB: db}
	feeCtrl := &feecontroller.GradeLevelFeeController{DB: db}

	registrar := authz.RequireRoles("akademik", constants.RegistrarAndAbove...)

	years := api.Group("/school-years")
	years.Get("/", yearCtrl.List)
	years.Post("/", registrar, yearCtrl.Create)
	years.Patch("/:id", registrar, yearCtrl.Update)
	years.Delete("/:id", registrar, yearCtrl.Delete)

	periods := api.Group("/enrollment-periods")
	periods.Get("/", periodCtrl.List)
	periods.Get("/current", periodCtrl.Current)
	periods.Get("/:id", periodCtrl.Detail)
	periods.Post("/", registrar, periodCtrl.Create)
	periods.Patch("/:id", registrar, periodCtrl.Update)
	periods.Delete("/:id", registrar, periodCtrl.Delete)

	fees := api.Group("/grade-level-fees")
	fees.Get("/", feeCtrl.List)
	fees.Get("/:id", feeCtrl.Detail)
	fees.Post("/", registrar, feeCtrl.Create)
	fees.Patch("/:id", registrar, feeCtrl.Update)
	fees.Delete("/:id", registrar, feeCtrl.Delete)
}
