package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edurisk_backend/internals/features/settings/controller"
)

// SettingAdminRoutes registers the settings endpoints.
func SettingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSettingController(db)

	admin.Get("/settings", ctrl.GetSettings)
	admin.Put("/settings", ctrl.UpdateSettings)
}
