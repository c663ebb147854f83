// file: internals/features/insights/controller/record_controller.go
package controller

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub_backend/internals/features/insights/dto"
	"clubhub_backend/internals/features/insights/model"
	instructorModel "clubhub_backend/internals/features/people/instructors/model"
	studentModel "clubhub_backend/internals/features/people/students/model"
	helper "clubhub_backend/internals/helpers"
)

// -----------------------------------------
// CreateRating (POST /ratings) — stores the rating and refreshes the
// denormalized average on the rated student or instructor.
// -----------------------------------------
func (h *InsightsController) CreateRating(c *fiber.Ctx) error {
	var req dto.RatingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}
	if (req.StudentID == nil) == (req.InstructorID == nil) {
		return helper.JsonValidationError(c, map[string][]string{
			"student_id": {"The student id or instructor id field is required."},
		})
	}

	m := model.Rating{
		RatingOrganizationID: req.OrganizationID,
		RatingStudentID:      req.StudentID,
		RatingInstructorID:   req.InstructorID,
		RatingScore:          req.Score,
		RatingComment:        req.Comment,
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if req.StudentID != nil {
			return h.refreshStudentRating(tx, *req.StudentID)
		}
		return h.refreshInstructorRating(tx, *req.InstructorID)
	}); err != nil {
		return err
	}

	h.logActivity(m.RatingOrganizationID, nil, "rating", m.RatingID.String(), "created", "Rating submitted")
	return helper.JsonCreated(c, "rating created", m)
}

// CreateAttendance (POST /attendance)
func (h *InsightsController) CreateAttendance(c *fiber.Ctx) error {
	var req dto.AttendanceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}
	date, ok := parseDateOnly(req.Date)
	if !ok {
		return helper.JsonValidationError(c, map[string][]string{
			"date": {"The date field is required."},
		})
	}

	m := model.AttendanceRecord{
		AttendanceRecordOrganizationID: req.OrganizationID,
		AttendanceRecordStudentID:      req.StudentID,
		AttendanceRecordEventID:        req.EventID,
		AttendanceRecordStatus:         model.AttendanceStatus(req.Status),
		AttendanceRecordDate:           date,
		AttendanceRecordNotes:          req.Notes,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	h.logActivity(m.AttendanceRecordOrganizationID, nil, "student", req.StudentID.String(), "attendance", "Attendance recorded: "+req.Status)
	return helper.JsonCreated(c, "attendance recorded", m)
}

// CreateCertification (POST /certifications)
func (h *InsightsController) CreateCertification(c *fiber.Ctx) error {
	var req dto.CertificationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}
	awarded, ok := parseDateOnly(req.AwardedAt)
	if !ok {
		return helper.JsonValidationError(c, map[string][]string{
			"awarded_at": {"The awarded at field is required."},
		})
	}

	m := model.Certification{
		CertificationOrganizationID: req.OrganizationID,
		CertificationStudentID:      req.StudentID,
		CertificationName:           req.Name,
		CertificationLevel:          req.Level,
		CertificationAwardedAt:      awarded,
	}
	if req.ExpiresAt != nil {
		if t, ok := parseDateOnly(*req.ExpiresAt); ok {
			m.CertificationExpiresAt = &t
		}
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	h.logActivity(m.CertificationOrganizationID, nil, "student", req.StudentID.String(), "certification", "Certification awarded: "+req.Name)
	return helper.JsonCreated(c, "certification created", m)
}

// -----------------------------------------
// internals
// -----------------------------------------

type ratingAgg struct {
	Avg   *float64
	Count int
}

func (h *InsightsController) refreshStudentRating(tx *gorm.DB, id uuid.UUID) error {
	var a ratingAgg
	if err := tx.Model(&model.Rating{}).
		Select("AVG(rating_score) AS avg, COUNT(*) AS count").
		Where("rating_student_id = ?", id).
		Scan(&a).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	avg := 0.0
	if a.Avg != nil {
		avg = math.Round(*a.Avg*100) / 100
	}
	return tx.Model(&studentModel.Student{}).
		Where("student_id = ?", id).
		Updates(map[string]any{
			"student_rating_avg":   avg,
			"student_rating_count": a.Count,
		}).Error
}

func (h *InsightsController) refreshInstructorRating(tx *gorm.DB, id uuid.UUID) error {
	var a ratingAgg
	if err := tx.Model(&model.Rating{}).
		Select("AVG(rating_score) AS avg, COUNT(*) AS count").
		Where("rating_instructor_id = ?", id).
		Scan(&a).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	avg := 0.0
	if a.Avg != nil {
		avg = math.Round(*a.Avg*100) / 100
	}
	return tx.Model(&instructorModel.Instructor{}).
		Where("instructor_id = ?", id).
		Updates(map[string]any{
			"instructor_rating_avg":   avg,
			"instructor_rating_count": a.Count,
		}).Error
}

// logActivity appends to the feed; failures are ignored, the write is
// best effort.
func (h *InsightsController) logActivity(orgID uuid.UUID, actorID *uuid.UUID, entityType, entityID, action, summary string) {
	_ = h.DB.Create(&model.ActivityLog{
		ActivityLogOrganizationID: orgID,
		ActivityLogActorID:        actorID,
		ActivityLogEntityType:     entityType,
		ActivityLogEntityID:       entityID,
		ActivityLogAction:         action,
		ActivityLogSummary:        summary,
	}).Error
}
