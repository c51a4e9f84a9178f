package details

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authcontroller "sekolahku_backend/internals/features/users/account/controller"
	middlewares "sekolahku_backend/internals/middlewares"
	middleware "sekolahku_backend/internals/middlewares/auth"
)

// AuthRoutes: register/login publik (dengan limiter khusus), /me privat.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &authcontroller.AuthController{DB: db}

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)

	auth.Get("/me",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		ctrl.Me,
	)
}
