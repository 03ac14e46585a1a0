package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sModel "edurisk_backend/internals/features/students/model"
	authHelper "edurisk_backend/internals/features/users/auth/helper"
	"edurisk_backend/internals/features/users/auth/model"
	"edurisk_backend/internals/features/users/auth/service"
	helper "edurisk_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/login — admin or student credential login.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Admins first, then students; the two tables are disjoint by role.
	var admin model.AdminModel
	if err := ac.DB.Where("email = ?", req.Email).First(&admin).Error; err == nil {
		if !authHelper.CheckPassword(admin.Password, req.Password) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return ac.issueSession(c, admin.ID.String(), service.RoleAdmin)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] Login admin lookup:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}

	var student sModel.StudentModel
	if err := ac.DB.Where("email = ?", req.Email).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("[ERROR] Login student lookup:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !authHelper.CheckPassword(student.Password, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	return ac.issueSession(c, student.ID.String(), service.RoleStudent)
}

// GET /api/demo-login/:role — demo auto-login. The student demo picks the
// riskiest profile so the dashboard has something to show.
func (ac *AuthController) DemoLogin(c *fiber.Ctx) error {
	role := c.Params("role")

	switch role {
	case service.RoleAdmin:
		var admin model.AdminModel
		if err := ac.DB.First(&admin).Error; err != nil {
			return helper.Error(c, fiber.StatusNotFound, "Demo user not found")
		}
		return ac.issueSession(c, admin.ID.String(), service.RoleAdmin)

	case service.RoleStudent:
		var student sModel.StudentModel
		if err := ac.DB.Order("ml_risk_score DESC").First(&student).Error; err != nil {
			if err := ac.DB.First(&student).Error; err != nil {
				return helper.Error(c, fiber.StatusNotFound, "Demo user not found")
			}
		}
		return ac.issueSession(c, student.ID.String(), service.RoleStudent)

	default:
		return helper.Error(c, fiber.StatusBadRequest, "Unknown role: "+role)
	}
}

// POST /api/logout — revoke the presented token.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := service.BlacklistToken(ac.DB, raw); err != nil {
		log.Println("[ERROR] Failed to blacklist token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Logout failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return helper.Success(c, "You have been logged out successfully.", nil)
}

func (ac *AuthController) issueSession(c *fiber.Ctx, userID, role string) error {
	token, err := service.CreateAccessToken(userID, role)
	if err != nil {
		log.Println("[ERROR] Failed to issue token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	log.Printf("[SUCCESS] %s login ok (user_id=%s)", role, userID)
	return helper.Success(c, "Welcome "+capitalize(role)+". Login successful!", fiber.Map{
		"access_token": token,
		"role":         role,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
