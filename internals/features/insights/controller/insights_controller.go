// file: internals/features/insights/controller/insights_controller.go
package controller

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentModel "clubhub_backend/internals/features/finance/payments/model"
	"clubhub_backend/internals/features/insights/dto"
	"clubhub_backend/internals/features/insights/model"
	studentModel "clubhub_backend/internals/features/people/students/model"
	helper "clubhub_backend/internals/helpers"
	"clubhub_backend/internals/helpers/filterstate"
)

type InsightsController struct {
	DB *gorm.DB
}

// -----------------------------------------
// GetStudentInsights (GET /students/:id/insights?period=YYYY[-MM])
// Composite payload: attendance, payments, certifications, ratings,
// performance comparison, recent activity.
// -----------------------------------------
func (h *InsightsController) GetStudentInsights(c *fiber.Ctx) error {
	student, err := h.findStudent(c)
	if err != nil {
		return err
	}
	f := filterstate.FromQuery(c.Queries())

	resp := dto.StudentInsightsResponse{
		StudentID:      student.StudentID,
		Period:         f.Period(),
		Attendance:     h.attendanceSummary(student.StudentID, f),
		Payments:       h.paymentSummary(student.StudentID, f),
		Certifications: h.certificationSummary(student.StudentID, f),
		Ratings:        h.ratingBreakdown(student.StudentID, f),
		Activity:       h.recentActivity(student.StudentOrganizationID, "student", student.StudentID.String(), 10),
	}
	resp.Performance = h.performance(student, resp.Attendance, resp.Ratings, f)

	return helper.JsonOK(c, "", resp)
}

// Per-section endpoints so the dashboard panels can refresh independently.

func (h *InsightsController) GetStudentAttendance(c *fiber.Ctx) error {
	student, err := h.findStudent(c)
	if err != nil {
		return err
	}
	f := filterstate.FromQuery(c.Queries())
	return helper.JsonOK(c, "", h.attendanceSummary(student.StudentID, f))
}

func (h *InsightsController) GetStudentPayments(c *fiber.Ctx) error {
	student, err := h.findStudent(c)
	if err != nil {
		return err
	}
	f := filterstate.FromQuery(c.Queries())
	return helper.JsonOK(c, "", h.paymentSummary(student.StudentID, f))
}

func (h *InsightsController) GetStudentCertifications(c *fiber.Ctx) error {
	student, err := h.findStudent(c)
	if err != nil {
		return err
	}
	f := filterstate.FromQuery(c.Queries())
	return helper.JsonOK(c, "", h.certificationSummary(student.StudentID, f))
}

func (h *InsightsController) GetStudentRatings(c *fiber.Ctx) error {
	student, err := h.findStudent(c)
	if err != nil {
		return err
	}
	f := filterstate.FromQuery(c.Queries())
	return helper.JsonOK(c, "", h.ratingBreakdown(student.StudentID, f))
}

// -----------------------------------------
// aggregation internals
// -----------------------------------------

func (h *InsightsController) findStudent(c *fiber.Ctx) (*studentModel.Student, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m studentModel.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

func applyPeriod(q *gorm.DB, column string, f filterstate.Filters) *gorm.DB {
	if start, end, ok := f.PeriodRange(); ok {
		return q.Where(column+" >= ? AND "+column+" < ?", start, end)
	}
	return q
}

func (h *InsightsController) attendanceSummary(studentID uuid.UUID, f filterstate.Filters) dto.AttendanceSummary {
	type row struct {
		Status string
		N      int
	}
	var rows []row
	q := h.DB.Model(&model.AttendanceRecord{}).
		Select("attendance_record_status AS status, COUNT(*) AS n").
		Where("attendance_record_student_id = ?", studentID).
		Group("attendance_record_status")
	applyPeriod(q, "attendance_record_date", f).Scan(&rows)

	var s dto.AttendanceSummary
	for _, r := range rows {
		s.Total += r.N
		switch model.AttendanceStatus(r.Status) {
		case model.AttendancePresent:
			s.Present = r.N
		case model.AttendanceAbsent:
			s.Absent = r.N
		case model.AttendanceLate:
			s.Late = r.N
		case model.AttendanceExcused:
			s.Excused = r.N
		}
	}
	if s.Total > 0 {
		s.Rate = percent(s.Present+s.Late, s.Total)
	}
	return s
}

// percent renders part/total as a percentage with one decimal.
func percent(part, total int) float64 {
	return math.Round(float64(part)/float64(total)*1000) / 10
}

func (h *InsightsController) paymentSummary(studentID uuid.UUID, f filterstate.Filters) dto.PaymentSummary {
	var list []paymentModel.Payment
	q := h.DB.
		Where("payment_student_id = ?", studentID)
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

func (h *InsightsController) certificationSummary(studentID uuid.UUID, f filterstate.Filters) dto.CertificationSummary {
	var list []model.Certification
	q := h.DB.
		Where("certification_student_id = ?", studentID).
		Order("certification_awarded_at DESC")
	applyPeriod(q, "certification_awarded_at", f).Find(&list)

	s := dto.CertificationSummary{Items: make([]dto.CertificationItem, 0, len(list))}
	for _, cert := range list {
		s.Items = append(s.Items, dto.CertificationItem{
			CertificationID: cert.CertificationID,
			Name:            cert.CertificationName,
			Level:           cert.CertificationLevel,
			AwardedAt:       cert.CertificationAwardedAt,
			ExpiresAt:       cert.CertificationExpiresAt,
		})
	}
	s.Count = len(s.Items)
	return s
}

func (h *InsightsController) ratingBreakdown(studentID uuid.UUID, f filterstate.Filters) dto.RatingBreakdown {
	var list []model.Rating
	q := h.DB.
		Where("rating_student_id = ?", studentID)
	applyPeriod(q, "rating_created_at", f).Find(&list)

	var b dto.RatingBreakdown
	sum := 0
	for _, r := range list {
		if r.RatingScore < 1 || r.RatingScore > 5 {
			continue
		}
		b.Scores[r.RatingScore-1]++
		b.Count++
		sum += r.RatingScore
	}
	if b.Count > 0 {
		b.Average = math.Round(float64(sum)/float64(b.Count)*100) / 100
	}
	return b
}

// performance compares the student with club peers over the same period.
func (h *InsightsController) performance(student *studentModel.Student, att dto.AttendanceSummary, rat dto.RatingBreakdown, f filterstate.Filters) dto.PerformanceComparison {
	p := dto.PerformanceComparison{
		AttendanceRate: att.Rate,
		RatingAverage:  rat.Average,
	}
	if student.StudentClubID == nil {
		return p
	}

	// club attendance rate
	type attRow struct {
		Present int
		Total   int
	}
	var a attRow
	q := h.DB.Model(&model.AttendanceRecord{}).
		Select("COUNT(*) FILTER (WHERE attendance_record_status IN ('present','late')) AS present, COUNT(*) AS total").
		Joins("JOIN students ON students.student_id = attendance_records.attendance_record_student_id").
		Where("students.student_club_id = ?", *student.StudentClubID)
	applyPeriod(q, "attendance_record_date", f).Scan(&a)
	if a.Total > 0 {
		p.ClubAttendanceRate = percent(a.Present, a.Total)
	}

	// club rating average
	var avg *float64
	q = h.DB.Model(&model.Rating{}).
		Select("AVG(rating_score)").
		Joins("JOIN students ON students.student_id = ratings.rating_student_id").
		Where("students.student_club_id = ?", *student.StudentClubID)
	applyPeriod(q, "rating_created_at", f).Scan(&avg)
	if avg != nil {
		p.ClubRatingAverage = math.Round(*avg*100) / 100
	}
	return p
}

func (h *InsightsController) recentActivity(orgID uuid.UUID, entityType, entityID string, limit int) []dto.ActivityItem {
	var list []model.ActivityLog
	q := h.DB.
		Where("activity_log_organization_id = ?", orgID).
		Order("activity_log_created_at DESC").
		Limit(limit)
	if entityType != "" {
		q = q.Where("activity_log_entity_type = ? AND activity_log_entity_id = ?", entityType, entityID)
	}
	q.Find(&list)

	out := make([]dto.ActivityItem, 0, len(list))
	for _, a := range list {
		out = append(out, dto.ActivityItem{
			ActivityLogID: a.ActivityLogID,
			EntityType:    a.ActivityLogEntityType,
			EntityID:      a.ActivityLogEntityID,
			Action:        a.ActivityLogAction,
			Summary:       a.ActivityLogSummary,
			CreatedAt:     a.ActivityLogCreatedAt,
		})
	}
	return out
}

func parseDateOnly(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
