package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	middleware "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes (webhook)...")
	routeDetails.BillingPublicRoutes(app, db)

	// ===================== PRIVATE =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	api := app.Group("/api",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Mounting Family routes...")
	routeDetails.FamilyRoutes(api, db)

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicRoutes(api, db)

	log.Println("[INFO] Mounting Enrollment routes...")
	routeDetails.EnrollmentRoutes(api, db)

	log.Println("[INFO] Mounting Billing routes...")
	routeDetails.BillingRoutes(api, db)
}
