package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edurisk_backend/internals/features/risk/controller"
	middlewares "edurisk_backend/internals/middlewares"
)

// RiskAdminRoutes registers the evaluation and report endpoints.
func RiskAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRiskController(db)

	admin.Post("/evaluate", middlewares.EvaluateRateLimiter(), ctrl.Evaluate)
	admin.Post("/reports", ctrl.GenerateReport)
	admin.Get("/reports/download", ctrl.DownloadReport)
}
