// file: internals/features/insights/dto/insights_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceSummary aggregates a student's attendance inside the selected
// period. Rate is the present+late share as a one-decimal percentage,
// 0 when no records exist.
type AttendanceSummary struct {
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Late    int     `json:"late"`
	Excused int     `json:"excused"`
	Rate    float64 `json:"rate"`
}

type PaymentSummary struct {
	Total            int     `json:"total"`
	PaidCount        int     `json:"paid_count"`
	OutstandingCount int     `json:"outstanding_count"`
	PaidAmount       float64 `json:"paid_amount"`
	OutstandingAmt   float64 `json:"outstanding_amount"`

	CurrencyCode         string `json:"currency_code"`
	PaidFormatted        string `json:"paid_formatted"`
	OutstandingFormatted string `json:"outstanding_formatted"`
}

type CertificationItem struct {
	CertificationID uuid.UUID  `json:"certification_id"`
	Name            string     `json:"name"`
	Level           *string    `json:"level,omitempty"`
	AwardedAt       time.Time  `json:"awarded_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

type CertificationSummary struct {
	Count int                 `json:"count"`
	Items []CertificationItem `json:"items"`
}

// RatingBreakdown carries the average plus a per-score histogram
// (index 0 holds score 1).
type RatingBreakdown struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Scores  [5]int  `json:"scores"`
}

// PerformanceComparison puts the student's attendance rate and rating
// average next to the club-wide figures for the same period.
type PerformanceComparison struct {
	AttendanceRate     float64 `json:"attendance_rate"`
	ClubAttendanceRate float64 `json:"club_attendance_rate"`
	RatingAverage      float64 `json:"rating_average"`
	ClubRatingAverage  float64 `json:"club_rating_average"`
}

type ActivityItem struct {
	ActivityLogID uuid.UUID `json:"activity_log_id"`
	EntityType    string    `json:"entity_type"`
	EntityID      string    `json:"entity_id"`
	Action        string    `json:"action"`
	Summary       string    `json:"summary"`
	CreatedAt     time.Time `json:"created_at"`
}

// StudentInsightsResponse is the composite payload behind the student
// dashboard. Period echoes the resolved filter ("" when unfiltered).
type StudentInsightsResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	Period    string    `json:"period"`

	Attendance     AttendanceSummary     `json:"attendance"`
	Payments       PaymentSummary        `json:"payments"`
	Certifications CertificationSummary  `json:"certifications"`
	Ratings        RatingBreakdown       `json:"ratings"`
	Performance    PerformanceComparison `json:"performance"`
	Activity       []ActivityItem        `json:"activity"`
}

type RatingCreateRequest struct {
	OrganizationID uuid.UUID  `json:"organization_id" form:"organization_id" validate:"required"`
	StudentID      *uuid.UUID `json:"student_id" form:"student_id"`
	InstructorID   *uuid.UUID `json:"instructor_id" form:"instructor_id"`
	Score          int        `json:"score" form:"score" validate:"required,min=1,max=5"`
	Comment        *string    `json:"comment" form:"comment" validate:"omitempty,max=2000"`
}

type AttendanceCreateRequest struct {
	OrganizationID uuid.UUID  `json:"organization_id" form:"organization_id" validate:"required"`
	StudentID      uuid.UUID  `json:"student_id" form:"student_id" validate:"required"`
	EventID        *uuid.UUID `json:"event_id" form:"event_id"`
	Status         string     `json:"status" form:"status" validate:"required,oneof=present absent late excused"`
	Date           string     `json:"date" form:"date" validate:"required"` // YYYY-MM-DD
	Notes          *string    `json:"notes" form:"notes" validate:"omitempty,max=2000"`
}

type CertificationCreateRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" form:"organization_id" validate:"required"`
	StudentID      uuid.UUID `json:"student_id" form:"student_id" validate:"required"`
	Name           string    `json:"name" form:"name" validate:"required,max=160"`
	Level          *string   `json:"level" form:"level" validate:"omitempty,max=60"`
	AwardedAt      string    `json:"awarded_at" form:"awarded_at" validate:"required"` // YYYY-MM-DD
	ExpiresAt      *string   `json:"expires_at" form:"expires_at"`
}
