// file: internals/features/people/students/controller/student_controller.go
package controller

import (
	"errors"
	"math"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeplanModel "clubhub_backend/internals/features/finance/feeplans/model"
	"clubhub_backend/internals/features/people/students/dto"
	"clubhub_backend/internals/features/people/students/model"
	helper "clubhub_backend/internals/helpers"
	"clubhub_backend/internals/helpers/attachment"
	"clubhub_backend/internals/helpers/filterstate"
	helperOSS "clubhub_backend/internals/helpers/oss"
)

type StudentController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /students)
// Query filters: organization_id, club_id, search
// -----------------------------------------
func (h *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	f := filterstate.FromQuery(c.Queries())

	q := h.DB.Model(&model.Student{})
	if f.OrganizationID != "" {
		if id, err := uuid.Parse(f.OrganizationID); err == nil {
			q = q.Where("student_organization_id = ?", id)
		}
	}
	if f.ClubID != "" {
		if id, err := uuid.Parse(f.ClubID); err == nil {
			q = q.Where("student_club_id = ?", id)
		}
	}
	if f.Search != "" {
		q = q.Where("student_name ILIKE ? OR student_email ILIKE ?", "%"+f.Search+"%", "%"+f.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "student_created_at",
		"name":       "student_name",
		"rating":     "student_rating_avg",
	}
	var list []model.Student
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToStudentResponses(list), helper.BuildMeta(total, p))
}

// GetByID (GET /students/:id) — includes the active plan assignment
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	fee := h.activeFee(m.StudentID)
	return helper.JsonOK(c, "", dto.ToStudentResponse(m, fee))
}

func (h *StudentController) activeFee(studentID uuid.UUID) *model.StudentFee {
	var fee model.StudentFee
	err := h.DB.
		Where("student_fee_student_id = ?", studentID).
		Order("student_fee_created_at DESC").
		First(&fee).Error
	if err != nil {
		return nil
	}
	return &fee
}

// -----------------------------------------
// Create (POST /students) — multipart with profile_image and
// identification_document slots plus plan-assignment sub-fields
// -----------------------------------------
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	m := req.ToModel()

	form, _ := c.MultipartForm()
	if err := h.applyAttachmentSlots(&m, form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var fee *model.StudentFee
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if req.FeePlanID != nil {
			created, err := h.upsertFee(tx, m.StudentID, *req.FeePlanID, req.FeeInterval, req.DiscountPercent)
			if err != nil {
				return err
			}
			fee = created
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "student created", dto.ToStudentResponse(m, fee))
}

// -----------------------------------------
// Update (PATCH /students/:id)
// -----------------------------------------
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyStudentUpdate(&m, req)

	form, _ := c.MultipartForm()
	if err := h.applyAttachmentSlots(&m, form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var fee *model.StudentFee
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if req.FeePlanID != nil {
			created, err := h.upsertFee(tx, m.StudentID, *req.FeePlanID, req.FeeInterval, req.DiscountPercent)
			if err != nil {
				return err
			}
			fee = created
		}
		return nil
	}); err != nil {
		return err
	}

	if fee == nil {
		fee = h.activeFee(m.StudentID)
	}
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(m, fee))
}

// Delete (DELETE /students/:id) — soft delete
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "student deleted", dto.ToStudentResponse(m, nil))
}

// applyAttachmentSlots resolves both file slots against the submitted form.
func (h *StudentController) applyAttachmentSlots(m *model.Student, form *multipart.Form) error {
	if form == nil {
		return nil
	}

	img := attachment.FromMultipart(form, "profile_image", "remove_profile_image")
	switch img.Action() {
	case attachment.ActionReplace:
		url, key, err := helperOSS.UploadImageAsWebP(img.File(), "students/profile")
		if err != nil {
			return errors.New("profile image upload failed: " + err.Error())
		}
		if m.StudentProfileImageKey != nil {
			_ = helperOSS.DeleteObject(*m.StudentProfileImageKey)
		}
		m.StudentProfileImageURL = &url
		m.StudentProfileImageKey = &key
	case attachment.ActionRemove:
		if m.StudentProfileImageKey != nil {
			_ = helperOSS.DeleteObject(*m.StudentProfileImageKey)
		}
		m.StudentProfileImageURL = nil
		m.StudentProfileImageKey = nil
	}

	doc := attachment.FromMultipart(form, "identification_document", "remove_identification_document")
	switch doc.Action() {
	case attachment.ActionReplace:
		fh := doc.File()
		key := helperOSS.ObjectKey("students/id-documents", fh.Filename)
		url, err := helperOSS.UploadMultipart(fh, key)
		if err != nil {
			return errors.New("identification document upload failed: " + err.Error())
		}
		if m.StudentIDDocumentKey != nil {
			_ = helperOSS.DeleteObject(*m.StudentIDDocumentKey)
		}
		name := fh.Filename
		m.StudentIDDocumentURL = &url
		m.StudentIDDocumentKey = &key
		m.StudentIDDocumentName = &name
	case attachment.ActionRemove:
		if m.StudentIDDocumentKey != nil {
			_ = helperOSS.DeleteObject(*m.StudentIDDocumentKey)
		}
		m.StudentIDDocumentURL = nil
		m.StudentIDDocumentKey = nil
		m.StudentIDDocumentName = nil
	}

	return nil
}

// upsertFee replaces the student's plan assignment, deriving the effective
// amount from the plan and discount.
func (h *StudentController) upsertFee(tx *gorm.DB, studentID uuid.UUID, planID uuid.UUID, interval *string, discount *float64) (*model.StudentFee, error) {
	var plan feeplanModel.FeePlan
	if err := tx.First(&plan, "fee_plan_id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "fee plan not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	d := 0.0
	if discount != nil {
		d = *discount
	}
	iv := string(plan.FeePlanInterval)
	if interval != nil && *interval != "" {
		iv = *interval
	}
	effective := math.Round(plan.FeePlanAmount*(100-d)) / 100

	// one active assignment per student: retire the old rows first
	if err := tx.Where("student_fee_student_id = ?", studentID).
		Delete(&model.StudentFee{}).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	fee := model.StudentFee{
		StudentFeeStudentID:       studentID,
		StudentFeeFeePlanID:       plan.FeePlanID,
		StudentFeeInterval:        iv,
		StudentFeeDiscountPercent: d,
		StudentFeeEffectiveAmount: effective,
		StudentFeeCurrencyCode:    plan.FeePlanCurrencyCode,
	}
	if err := tx.Create(&fee).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &fee, nil
}
