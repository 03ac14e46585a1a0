package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edurisk_backend/internals/features/settings/dto"
	"edurisk_backend/internals/features/settings/model"
	helper "edurisk_backend/internals/helpers"
)

var validate = validator.New()

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// GET /api/a/settings
func (sc *SettingController) GetSettings(c *fiber.Ctx) error {
	var setting model.SettingModel
	if err := sc.DB.First(&setting).Error; err != nil {
		log.Println("[ERROR] Failed to fetch settings:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve settings")
	}
	return helper.Success(c, "Settings fetched successfully", setting)
}

// PUT /api/a/settings
func (sc *SettingController) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var setting model.SettingModel
	if err := sc.DB.First(&setting).Error; err != nil {
		log.Println("[ERROR] Failed to fetch settings:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve settings")
	}

	req.Apply(&setting)
	if err := sc.DB.Save(&setting).Error; err != nil {
		log.Println("[ERROR] Failed to update settings:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update settings")
	}

	log.Println("[SUCCESS] Settings updated")
	return helper.Success(c, "Settings updated successfully", setting)
}
