// file: internals/route/people_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instructorController "clubhub_backend/internals/features/people/instructors/controller"
	studentController "clubhub_backend/internals/features/people/students/controller"
	middlewares "clubhub_backend/internals/middlewares"
)

func PeopleRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB) {
	instructors := &instructorController.InstructorController{DB: db}
	students := &studentController.StudentController{DB: db}

	// public directory view of instructors
	public.Get("/instructors", instructors.List)
	public.Get("/instructors/:id", instructors.GetByID)

	admin.Get("/instructors", instructors.List)
	admin.Get("/instructors/:id", instructors.GetByID)
	admin.Post("/instructors", middlewares.UploadRateLimiter(), instructors.Create)
	admin.Patch("/instructors/:id", middlewares.UploadRateLimiter(), instructors.Update)
	admin.Delete("/instructors/:id", instructors.Delete)

	admin.Get("/students", students.List)
	admin.Get("/students/:id", students.GetByID)
	admin.Post("/students", middlewares.UploadRateLimiter(), students.Create)
	admin.Patch("/students/:id", middlewares.UploadRateLimiter(), students.Update)
	admin.Delete("/students/:id", students.Delete)
}
