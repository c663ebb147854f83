// file: internals/route/lineage_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clubController "clubhub_backend/internals/features/lineage/clubs/controller"
	orgController "clubhub_backend/internals/features/lineage/organizations/controller"
)

func LineageRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB) {
	orgs := &orgController.OrganizationController{DB: db}
	clubs := &clubController.ClubController{DB: db}

	// organizations are read-only on both surfaces
	public.Get("/organizations", orgs.List)
	public.Get("/organizations/:id", orgs.GetByID)
	admin.Get("/organizations", orgs.List)
	admin.Get("/organizations/:id", orgs.GetByID)

	public.Get("/clubs", clubs.List)
	public.Get("/clubs/:id", clubs.GetByID)

	admin.Get("/clubs", clubs.List)
	admin.Get("/clubs/:id", clubs.GetByID)
	admin.Post("/clubs", clubs.Create)
	admin.Patch("/clubs/:id", clubs.Update)
	admin.Delete("/clubs/:id", clubs.Delete)
}
