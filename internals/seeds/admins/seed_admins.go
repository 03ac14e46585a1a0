package admins

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "edurisk_backend/internals/features/users/auth/helper"
	"edurisk_backend/internals/features/users/auth/model"
)

const (
	defaultAdminEmail    = "admin@test.com"
	defaultAdminPassword = "admin"
)

// SeedDefaultAdmin creates the demo admin account when no admin exists yet.
func SeedDefaultAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.AdminModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to count admins: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ Admin already seeded, skipping.")
		return
	}

	hashed, err := authHelper.HashPassword(defaultAdminPassword)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := model.AdminModel{
		ID:       uuid.New(),
		Email:    defaultAdminEmail,
		Password: hashed,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to insert admin: %v", err)
		return
	}
	log.Println("✅ Admin user seeded.")
}
