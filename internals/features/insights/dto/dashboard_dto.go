// file: internals/features/insights/dto/dashboard_dto.go
package dto

import "github.com/google/uuid"

// DashboardResponse is the read-only organization overview. Every figure is
// computed server-side from the active filter set; nothing here mutates.
type DashboardResponse struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	Period         string    `json:"period"`

	StudentCount    int64 `json:"student_count"`
	InstructorCount int64 `json:"instructor_count"`
	ClubCount       int64 `json:"club_count"`
	UpcomingEvents  int64 `json:"upcoming_events"`

	Payments PaymentSummary `json:"payments"`
	Activity []ActivityItem `json:"activity"`
}
