// file: internals/features/insights/controller/dashboard_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	clubeventModel "clubhub_backend/internals/features/events/clubevents/model"
	paymentModel "clubhub_backend/internals/features/finance/payments/model"
	"clubhub_backend/internals/features/insights/dto"
	clubModel "clubhub_backend/internals/features/lineage/clubs/model"
	instructorModel "clubhub_backend/internals/features/people/instructors/model"
	studentModel "clubhub_backend/internals/features/people/students/model"
	helper "clubhub_backend/internals/helpers"
	"clubhub_backend/internals/helpers/filterstate"
)

// GetDashboard (GET /dashboard?organization_id=&club_id=&period=) renders
// the organization overview. Strictly read-only.
func (h *InsightsController) GetDashboard(c *fiber.Ctx) error {
	f := filterstate.FromQuery(c.Queries())
	orgID, err := uuid.Parse(strings.TrimSpace(f.OrganizationID))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "organization_id is required")
	}

	resp := dto.DashboardResponse{
		OrganizationID: orgID,
		Period:         f.Period(),
		Payments:       h.orgPaymentSummary(orgID, f),
		Activity:       h.recentActivity(orgID, "", "", 15),
	}

	var clubID *uuid.UUID
	if f.ClubID != "" {
		if id, err := uuid.Parse(f.ClubID); err == nil {
			clubID = &id
		}
	}

	sq := h.DB.Model(&studentModel.Student{}).Where("student_organization_id = ?", orgID)
	iq := h.DB.Model(&instructorModel.Instructor{}).Where("instructor_organization_id = ?", orgID)
	cq := h.DB.Model(&clubModel.Club{}).Where("club_organization_id = ?", orgID)
	eq := h.DB.Model(&clubeventModel.ClubEvent{}).
		Where("club_event_organization_id = ?", orgID).
		Where("club_event_status = ?", clubeventModel.EventStatusUpcoming)
	if clubID != nil {
		sq = sq.Where("student_club_id = ?", *clubID)
		iq = iq.Where("instructor_club_id = ?", *clubID)
		eq = eq.Where("club_event_club_id = ?", *clubID)
	}
	sq.Count(&resp.StudentCount)
	iq.Count(&resp.InstructorCount)
	cq.Count(&resp.ClubCount)
	eq.Count(&resp.UpcomingEvents)

	return helper.JsonOK(c, "", resp)
}

func (h *InsightsController) orgPaymentSummary(orgID uuid.UUID, f filterstate.Filters) dto.PaymentSummary {
	var list []paymentModel.Payment
	q := h.DB.Where("payment_organization_id = ?", orgID)
	if f.ClubID != "" {
		if clubID, err := uuid.Parse(f.ClubID); err == nil {
			q = q.Where("payment_club_id = ?", clubID)
		}
	}
	applyPeriod(q, "payment_created_at", f).Find(&list)

	var s dto.PaymentSummary
	for _, p := range list {
		s.Total++
		if s.CurrencyCode == "" {
			s.CurrencyCode = p.PaymentCurrencyCode
		}
		switch p.PaymentStatus {
		case paymentModel.PaymentStatusPaid, paymentModel.PaymentStatusSuccessful:
			s.PaidCount++
			s.PaidAmount += p.PaymentAmount
		default:
			s.OutstandingCount++
			s.OutstandingAmt += p.PaymentAmount
		}
	}
	s.PaidFormatted = helper.FormatAmount(s.CurrencyCode, s.PaidAmount)
	s.OutstandingFormatted = helper.FormatAmount(s.CurrencyCode, s.OutstandingAmt)
	return s
}
