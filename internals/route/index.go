// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clubhub_backend/internals/configs"
	middleware "clubhub_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the public surface under /api/public and the admin
// surface under /api/a (JWT + organization-admin scope).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	public := app.Group("/api/public")

	admin := app.Group("/api/a",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		middleware.IsOrganizationAdmin(),
	)

	LineageRoutes(public, admin, db)
	PeopleRoutes(public, admin, db)
	FinanceRoutes(admin, db)
	EventRoutes(public, admin, db)
	InsightRoutes(admin, db)

	log.Println("[INFO] routes mounted: /api/public, /api/a")
}
