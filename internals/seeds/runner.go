package seeds

import (
	"gorm.io/gorm"

	"edurisk_backend/internals/configs"
	admins "edurisk_backend/internals/seeds/admins"
	settings "edurisk_backend/internals/seeds/settings"
	students "edurisk_backend/internals/seeds/students"
)

// RunAllSeeds populates the freshly migrated store: default admin, the
// singleton settings row, and the student dataset.
func RunAllSeeds(db *gorm.DB) {
	admins.SeedDefaultAdmin(db)
	settings.SeedDefaultSettings(db)
	students.SeedStudentsFromCSV(db, configs.StudentSeedFile)
}
