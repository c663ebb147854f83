// file: internals/features/events/clubevents/controller/club_event_controller.go
package controller

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub_backend/internals/features/events/clubevents/dto"
	"clubhub_backend/internals/features/events/clubevents/model"
	studentModel "clubhub_backend/internals/features/people/students/model"
	helper "clubhub_backend/internals/helpers"
	"clubhub_backend/internals/helpers/attachment"
	"clubhub_backend/internals/helpers/filterstate"
	helperOSS "clubhub_backend/internals/helpers/oss"
)

type ClubEventController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /events)
// Filters: organization_id, club_id, status, type, period, search (title)
// -----------------------------------------
func (h *ClubEventController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "starts_at", "desc", helper.DefaultOpts)
	f := filterstate.FromQuery(c.Queries())

	q := h.DB.Model(&model.ClubEvent{})
	if f.OrganizationID != "" {
		if id, err := uuid.Parse(f.OrganizationID); err == nil {
			q = q.Where("club_event_organization_id = ?", id)
		}
	}
	if f.ClubID != "" {
		if id, err := uuid.Parse(f.ClubID); err == nil {
			q = q.Where("club_event_club_id = ?", id)
		}
	}
	if f.Status != "" && !strings.EqualFold(f.Status, filterstate.All) {
		q = q.Where("club_event_status = ?", strings.ToLower(f.Status))
	}
	if t := strings.TrimSpace(c.Query("type")); t != "" && !strings.EqualFold(t, filterstate.All) {
		q = q.Where("club_event_type = ?", strings.ToLower(t))
	}
	if start, end, ok := f.PeriodRange(); ok {
		q = q.Where("club_event_starts_at >= ? AND club_event_starts_at < ?", start, end)
	}
	if f.Search != "" {
		q = q.Where("club_event_title ILIKE ?", "%"+f.Search+"%")
	}

	// public listings only see published events
	if c.Query("public") == "1" {
		q = q.Where("club_event_is_public = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"starts_at":  "club_event_starts_at",
		"created_at": "club_event_created_at",
		"title":      "club_event_title",
	}
	var list []model.ClubEvent
	if err := q.
		Order(p.OrderClause(allowed, "starts_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToClubEventResponses(list), helper.BuildMeta(total, p))
}

// GetByID (GET /events/:id)
func (h *ClubEventController) GetByID(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.ToClubEventResponse(*m))
}

// -----------------------------------------
// Create (POST /events) — multipart with image and document slots
// -----------------------------------------
func (h *ClubEventController) Create(c *fiber.Ctx) error {
	var req dto.ClubEventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	m, ok := req.ToModel()
	if !ok {
		return helper.JsonValidationError(c, map[string][]string{
			"starts_at": {"The starts at field is required."},
		})
	}

	form, _ := c.MultipartForm()
	if err := h.applyAttachmentSlots(&m, form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return h.attachParticipants(tx, &m, studentIDsFromForm(form))
	}); err != nil {
		return err
	}
	return helper.JsonCreated(c, "event created", dto.ToClubEventResponse(m))
}

// -----------------------------------------
// Update (PATCH /events/:id)
// -----------------------------------------
func (h *ClubEventController) Update(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}

	var req dto.ClubEventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	dto.ApplyClubEventUpdate(m, req)

	form, _ := c.MultipartForm()
	if err := h.applyAttachmentSlots(m, form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return h.attachParticipants(tx, m, studentIDsFromForm(form))
	}); err != nil {
		return err
	}
	return helper.JsonUpdated(c, "event updated", dto.ToClubEventResponse(*m))
}

// UpdateStatus (PATCH /events/:id/status) — lifecycle moves forward only
// (upcoming -> ongoing -> completed).
func (h *ClubEventController) UpdateStatus(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}

	var req dto.ClubEventStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	next := model.EventStatus(req.Status)
	if !model.CanTransition(m.ClubEventStatus, next) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"event status cannot move from "+string(m.ClubEventStatus)+" to "+req.Status)
	}

	m.ClubEventStatus = next
	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "event status updated", dto.ToClubEventResponse(*m))
}

// ToggleVisibility (PATCH /events/:id/visibility)
func (h *ClubEventController) ToggleVisibility(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}
	m.ClubEventIsPublic = !m.ClubEventIsPublic
	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "event visibility updated", dto.ToClubEventResponse(*m))
}

// Delete (DELETE /events/:id) — soft delete
func (h *ClubEventController) Delete(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "event deleted", dto.ToClubEventResponse(*m))
}

// -----------------------------------------
// internals
// -----------------------------------------

func (h *ClubEventController) find(c *fiber.Ctx) (*model.ClubEvent, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.ClubEvent
	if err := h.DB.Preload("Participants").First(&m, "club_event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "event not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

// studentIDsFromForm reads the repeated student_ids[] field; nil means the
// field was absent and the current roster stays.
func studentIDsFromForm(form *multipart.Form) []uuid.UUID {
	if form == nil {
		return nil
	}
	vals, ok := form.Value["student_ids[]"]
	if !ok {
		vals, ok = form.Value["student_ids"]
	}
	if !ok {
		return nil
	}
	return dto.ParseUUIDList(vals)
}

// attachParticipants replaces the event roster.
func (h *ClubEventController) attachParticipants(tx *gorm.DB, m *model.ClubEvent, ids []uuid.UUID) error {
	if ids == nil {
		return nil
	}
	var rows []studentModel.Student
	if len(ids) > 0 {
		if err := tx.
			Where("student_id IN ?", ids).
			Where("student_organization_id = ?", m.ClubEventOrganizationID).
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}
	if err := tx.Model(m).Association("Participants").Replace(rows); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	m.Participants = rows
	return nil
}

// applyAttachmentSlots resolves the image slot (image / remove_image) and
// document slot (document / remove_document) independently.
func (h *ClubEventController) applyAttachmentSlots(m *model.ClubEvent, form *multipart.Form) error {
	if form == nil {
		return nil
	}

	img := attachment.FromMultipart(form, "image", "remove_image")
	switch img.Action() {
	case attachment.ActionReplace:
		url, key, err := helperOSS.UploadImageAsWebP(img.File(), "events/banners")
		if err != nil {
			return errors.New("event image upload failed: " + err.Error())
		}
		if m.ClubEventImageKey != nil {
			_ = helperOSS.DeleteObject(*m.ClubEventImageKey)
		}
		m.ClubEventImageURL = &url
		m.ClubEventImageKey = &key
	case attachment.ActionRemove:
		if m.ClubEventImageKey != nil {
			_ = helperOSS.DeleteObject(*m.ClubEventImageKey)
		}
		m.ClubEventImageURL = nil
		m.ClubEventImageKey = nil
	}

	doc := attachment.FromMultipart(form, "document", "remove_document")
	switch doc.Action() {
	case attachment.ActionReplace:
		fh := doc.File()
		key := helperOSS.ObjectKey("events/documents", fh.Filename)
		url, err := helperOSS.UploadMultipart(fh, key)
		if err != nil {
			return errors.New("event document upload failed: " + err.Error())
		}
		if m.ClubEventDocumentKey != nil {
			_ = helperOSS.DeleteObject(*m.ClubEventDocumentKey)
		}
		name := fh.Filename
		m.ClubEventDocumentURL = &url
		m.ClubEventDocumentKey = &key
		m.ClubEventDocumentName = &name
	case attachment.ActionRemove:
		if m.ClubEventDocumentKey != nil {
			_ = helperOSS.DeleteObject(*m.ClubEventDocumentKey)
		}
		m.ClubEventDocumentURL = nil
		m.ClubEventDocumentKey = nil
		m.ClubEventDocumentName = nil
	}

	return nil
}
