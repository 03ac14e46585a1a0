package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edurisk_backend/internals/features/students/controller"
)

// StudentAdminRoutes registers the admin-facing student endpoints.
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	admin.Get("/dashboard", ctrl.AdminDashboard)
	admin.Get("/students/:student_id", ctrl.StudentDetails)
}

// StudentUserRoutes registers the student-facing endpoints.
func StudentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	user.Get("/dashboard", ctrl.MyDashboard)
}
