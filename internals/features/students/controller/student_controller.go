package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	riskService "edurisk_backend/internals/features/risk/service"
	"edurisk_backend/internals/features/students/dto"
	"edurisk_backend/internals/features/students/model"
	helper "edurisk_backend/internals/helpers"
	authMw "edurisk_backend/internals/middlewares/auth"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /api/a/dashboard — refresh scores, then list students by risk score.
// An evaluation failure is logged and the stale scores are served; the
// dashboard itself never errors because of the scorer.
func (sc *StudentController) AdminDashboard(c *fiber.Ctx) error {
	if _, err := riskService.EvaluateAll(sc.DB); err != nil {
		log.Println("[ERROR] Error during risk evaluation:", err)
	}

	var students []model.StudentModel
	if err := sc.DB.Order("ml_risk_score DESC").Find(&students).Error; err != nil {
		log.Println("[ERROR] Failed to fetch students:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	rows := make([]dto.StudentSummaryResponse, 0, len(students))
	for i := range students {
		rows = append(rows, dto.ToStudentSummaryResponse(&students[i]))
	}

	log.Printf("[SUCCESS] Retrieved %d students\n", len(rows))
	return helper.Success(c, "Students fetched successfully", fiber.Map{
		"total":    len(rows),
		"students": rows,
	})
}

// GET /api/a/students/:student_id — full detail projection for one student.
func (sc *StudentController) StudentDetails(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	var student model.StudentModel
	if err := sc.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] Failed to fetch student:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve student")
	}

	return helper.Success(c, "Student detail fetched successfully", dto.ToStudentDetailResponse(&student))
}

// GET /api/u/dashboard — the authenticated student's own risk profile.
func (sc *StudentController) MyDashboard(c *fiber.Ctx) error {
	userIDRaw := c.Locals(authMw.LocUserID)
	userIDStr, ok := userIDRaw.(string)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.Success(c, "Student profile fetched successfully", dto.ToStudentDetailResponse(&student))
}
