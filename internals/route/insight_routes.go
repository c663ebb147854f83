// file: internals/route/insight_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	insightsController "clubhub_backend/internals/features/insights/controller"
)

func InsightRoutes(admin fiber.Router, db *gorm.DB) {
	insights := &insightsController.InsightsController{DB: db}

	admin.Get("/dashboard", insights.GetDashboard)

	admin.Get("/students/:id/insights", insights.GetStudentInsights)
	admin.Get("/students/:id/insights/attendance", insights.GetStudentAttendance)
	admin.Get("/students/:id/insights/payments", insights.GetStudentPayments)
	admin.Get("/students/:id/insights/certifications", insights.GetStudentCertifications)
	admin.Get("/students/:id/insights/ratings", insights.GetStudentRatings)

	admin.Post("/ratings", insights.CreateRating)
	admin.Post("/attendance", insights.CreateAttendance)
	admin.Post("/certifications", insights.CreateCertification)
}
