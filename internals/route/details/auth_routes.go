package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "attendly_backend/internals/features/users/user/controller"
	"attendly_backend/internals/middlewares"
)

// AuthPublicRoutes mounts the unauthenticated auth endpoints with their own
// rate limiters.
func AuthPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
}

// AuthUserRoutes mounts the endpoints that need a valid session.
func AuthUserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}

	private.Get("/me", ctrl.Me)
	private.Post("/logout", ctrl.Logout)
}
