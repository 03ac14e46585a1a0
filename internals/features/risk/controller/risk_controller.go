package controller

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edurisk_backend/internals/configs"
	service "edurisk_backend/internals/features/risk/service"
	helper "edurisk_backend/internals/helpers"
)

type RiskController struct {
	DB *gorm.DB
}

func NewRiskController(db *gorm.DB) *RiskController {
	return &RiskController{DB: db}
}

// POST /api/a/evaluate — run an evaluation pass, then email at-risk students.
func (rc *RiskController) Evaluate(c *fiber.Ctx) error {
	evaluated, err := service.EvaluateAll(rc.DB)
	if err != nil {
		log.Println("[ERROR] Risk evaluation failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Risk evaluation error: "+err.Error())
	}

	notified, err := service.NotifyAtRisk(rc.DB)
	if err != nil {
		// Partial delivery is possible; report how far we got.
		log.Printf("[ERROR] Email dispatch aborted after %d notifications: %v", notified, err)
		return helper.ErrorWithDetails(c, fiber.StatusBadGateway,
			"Email sending failed after "+strconv.Itoa(notified)+" notifications",
			fiber.Map{"evaluated": evaluated, "notified": notified, "error": err.Error()},
		)
	}

	if notified == 0 {
		return helper.Success(c, "Risk analysis complete. No at-risk students found.", fiber.Map{
			"evaluated": evaluated,
			"notified":  0,
		})
	}

	log.Printf("[SUCCESS] %d notifications dispatched", notified)
	return helper.Success(c, "Risk analysis complete. "+strconv.Itoa(notified)+" notifications dispatched.", fiber.Map{
		"evaluated": evaluated,
		"notified":  notified,
	})
}

// POST /api/a/reports — generate the at-risk CSV report.
func (rc *RiskController) GenerateReport(c *fiber.Ctx) error {
	path, err := service.GenerateCSVReport(rc.DB, configs.UploadDir)
	if err != nil {
		log.Println("[ERROR] Report generation failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error generating report: "+err.Error())
	}

	log.Printf("[SUCCESS] Report generated: %s", path)
	return helper.Success(c, "Report generated: "+filepath.Base(path), fiber.Map{
		"filename": filepath.Base(path),
	})
}

// GET /api/a/reports/download — download the last generated report.
func (rc *RiskController) DownloadReport(c *fiber.Ctx) error {
	path := filepath.Join(configs.UploadDir, service.ReportFilename)
	if _, err := os.Stat(path); err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Report file not found. Please generate a report first.")
	}
	return c.Download(path, service.ReportFilename)
}
