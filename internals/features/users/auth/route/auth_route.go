package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edurisk_backend/internals/features/users/auth/controller"
	middlewares "edurisk_backend/internals/middlewares"
)

// AuthRoutes registers login/logout on the public API surface.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Get("/demo-login/:role", middlewares.LoginRateLimiter(), ctrl.DemoLogin)
	api.Post("/logout", ctrl.Logout)
}
