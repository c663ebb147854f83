// file: internals/features/people/instructors/controller/instructor_controller.go
package controller

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub_backend/internals/features/people/instructors/dto"
	"clubhub_backend/internals/features/people/instructors/model"
	helper "clubhub_backend/internals/helpers"
	"clubhub_backend/internals/helpers/attachment"
	"clubhub_backend/internals/helpers/filterstate"
	helperOSS "clubhub_backend/internals/helpers/oss"
)

type InstructorController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /instructors)
// Query filters: organization_id, club_id, status, search
// -----------------------------------------
func (h *InstructorController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	f := filterstate.FromQuery(c.Queries())

	q := h.DB.Model(&model.Instructor{})
	if f.OrganizationID != "" {
		if id, err := uuid.Parse(f.OrganizationID); err == nil {
			q = q.Where("instructor_organization_id = ?", id)
		}
	}
	if f.ClubID != "" {
		if id, err := uuid.Parse(f.ClubID); err == nil {
			q = q.Where("instructor_club_id = ?", id)
		}
	}
	if f.Status != "" {
		q = q.Where("instructor_status = ?", f.Status)
	}
	if f.Search != "" {
		q = q.Where("instructor_name ILIKE ? OR instructor_email ILIKE ?", "%"+f.Search+"%", "%"+f.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "instructor_created_at",
		"name":       "instructor_name",
		"rating":     "instructor_rating_avg",
		"status":     "instructor_status",
	}
	var list []model.Instructor
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToInstructorResponses(list), helper.BuildMeta(total, p))
}

// GetByID (GET /instructors/:id)
func (h *InstructorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Instructor
	if err := h.DB.First(&m, "instructor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "instructor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToInstructorResponse(m))
}

// -----------------------------------------
// Create (POST /instructors) — multipart, optional profile_image
// -----------------------------------------
func (h *InstructorController) Create(c *fiber.Ctx) error {
	var req dto.InstructorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		if vals, ok := specialtiesFromForm(form); ok {
			req.Specialties = vals
		}
	}

	m := req.ToModel()

	if form, err := c.MultipartForm(); err == nil && form != nil {
		slot := attachment.FromMultipart(form, "profile_image", "remove_profile_image")
		if slot.Action() == attachment.ActionReplace {
			url, key, err := helperOSS.UploadImageAsWebP(slot.File(), "instructors/profile")
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "profile image upload failed: "+err.Error())
			}
			m.InstructorProfileImageURL = &url
			m.InstructorProfileImageKey = &key
		}
	}

	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "instructor created", dto.ToInstructorResponse(m))
}

// -----------------------------------------
// Update (PATCH /instructors/:id) — multipart, profile image slot honors
// replace / remove_profile_image / keep
// -----------------------------------------
func (h *InstructorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req dto.InstructorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	var m model.Instructor
	if err := h.DB.First(&m, "instructor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "instructor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		if vals, ok := specialtiesFromForm(form); ok {
			req.Specialties = vals
		}
	}

	dto.ApplyInstructorUpdate(&m, req)

	if form, err := c.MultipartForm(); err == nil && form != nil {
		slot := attachment.FromMultipart(form, "profile_image", "remove_profile_image")
		switch slot.Action() {
		case attachment.ActionReplace:
			url, key, err := helperOSS.UploadImageAsWebP(slot.File(), "instructors/profile")
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "profile image upload failed: "+err.Error())
			}
			if m.InstructorProfileImageKey != nil {
				_ = helperOSS.DeleteObject(*m.InstructorProfileImageKey)
			}
			m.InstructorProfileImageURL = &url
			m.InstructorProfileImageKey = &key
		case attachment.ActionRemove:
			if m.InstructorProfileImageKey != nil {
				_ = helperOSS.DeleteObject(*m.InstructorProfileImageKey)
			}
			m.InstructorProfileImageURL = nil
			m.InstructorProfileImageKey = nil
		}
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "instructor updated", dto.ToInstructorResponse(m))
}

// specialtiesFromForm reads the repeated specialties[] parts. ok is false when
// the field is absent, which on update keeps the stored list.
func specialtiesFromForm(form *multipart.Form) ([]string, bool) {
	vals, ok := form.Value["specialties[]"]
	if !ok {
		vals, ok = form.Value["specialties"]
	}
	if !ok {
		return nil, false
	}
	return dto.NormalizeSpecialties(vals), true
}

// Delete (DELETE /instructors/:id) — soft delete
func (h *InstructorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Instructor
	if err := h.DB.First(&m, "instructor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "instructor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "instructor deleted", dto.ToInstructorResponse(m))
}
