package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/authz"
	"sekolahku_backend/internals/constants"
	enrollcontroller "sekolahku_backend/internals/features/enrollment/admissions/controller"
)

// EnrollmentRoutes: pendaftaran siswa. Guardian submit & membalas
// permintaan kelengkapan; registrar yang memutus.
func EnrollmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := &enrollcontroller.EnrollmentController{DB: db}

	registrar := authz.RequireRoles("enrollment", constants.RegistrarAndAbove...)

	enrollments := api.Group("/enrollments")
	enrollments.Get("/", ctrl.List)
	enrollments.Post("/", ctrl.Create)
	enrollments.Get("/:id", ctrl.Detail)

	enrollments.Post("/:id/approve", registrar, ctrl.Approve)
	enrollments.Post("/:id/reject", registrar, ctrl.Reject)
	enrollments.Post("/:id/request-info", registrar, ctrl.RequestInfo)
	enrollments.Post("/:id/reply-info", ctrl.ReplyInfo)
	enrollments.Post("/:id/mark-enrolled", registrar, ctrl.MarkEnrolled)
	enrollments.Post("/:id/complete", registrar, ctrl.Complete)
}
