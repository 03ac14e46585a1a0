package settings

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edurisk_backend/internals/features/settings/model"
)

// SeedDefaultSettings creates the singleton settings row when missing.
func SeedDefaultSettings(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.SettingModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to count settings: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ Settings already seeded, skipping.")
		return
	}

	setting := model.SettingModel{
		ID:               uuid.New(),
		AttendanceCutoff: 75,
		MarksCutoff:      40,
		FeeDelayDays:     30,
	}
	if err := db.Create(&setting).Error; err != nil {
		log.Printf("❌ Failed to insert settings: %v", err)
		return
	}
	log.Println("✅ Settings seeded.")
}
