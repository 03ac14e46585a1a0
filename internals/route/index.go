package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	riskRoute "edurisk_backend/internals/features/risk/route"
	settingRoute "edurisk_backend/internals/features/settings/route"
	studentRoute "edurisk_backend/internals/features/students/route"
	authRoute "edurisk_backend/internals/features/users/auth/route"
	authService "edurisk_backend/internals/features/users/auth/service"
	authMw "edurisk_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)

	blacklistChecker := func(raw string) (bool, error) {
		return authService.IsBlacklisted(db, raw)
	}

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
			BlacklistChecker:    blacklistChecker,
		}),
		authMw.OnlyRoles("Admins only", authService.RoleAdmin),
	)
	studentRoute.StudentAdminRoutes(admin, db)
	riskRoute.RiskAdminRoutes(admin, db)
	settingRoute.SettingAdminRoutes(admin, db)

	// ===================== STUDENT =====================
	log.Println("[INFO] Setting up STUDENT group (Auth + RoleCheck)...")
	user := app.Group("/api/u",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
			BlacklistChecker:    blacklistChecker,
		}),
		authMw.OnlyRoles("Students only", authService.RoleStudent),
	)
	studentRoute.StudentUserRoutes(user, db)
}
