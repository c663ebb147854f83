// file: internals/route/event_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "clubhub_backend/internals/features/events/clubevents/controller"
	middlewares "clubhub_backend/internals/middlewares"
)

func EventRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB) {
	events := &eventController.ClubEventController{DB: db}

	// the public listing pins the published-only filter
	public.Get("/events", func(c *fiber.Ctx) error {
		c.Request().URI().QueryArgs().Set("public", "1")
		return events.List(c)
	})
	public.Get("/events/:id", events.GetByID)

	admin.Get("/events", events.List)
	admin.Get("/events/:id", events.GetByID)
	admin.Post("/events", middlewares.UploadRateLimiter(), events.Create)
	admin.Patch("/events/:id", middlewares.UploadRateLimiter(), events.Update)
	admin.Patch("/events/:id/status", events.UpdateStatus)
	admin.Patch("/events/:id/visibility", events.ToggleVisibility)
	admin.Delete("/events/:id", events.Delete)
}
