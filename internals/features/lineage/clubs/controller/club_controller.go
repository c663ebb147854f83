// file: internals/features/lineage/clubs/controller/club_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub_backend/internals/features/lineage/clubs/dto"
	"clubhub_backend/internals/features/lineage/clubs/model"
	helper "clubhub_backend/internals/helpers"
	"clubhub_backend/internals/helpers/filterstate"
)

type ClubController struct {
	DB *gorm.DB
}

// List (GET /clubs?organization_id=&search=)
func (h *ClubController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)
	f := filterstate.FromQuery(c.Queries())

	q := h.DB.Model(&model.Club{})
	if f.OrganizationID != "" {
		if id, err := uuid.Parse(f.OrganizationID); err == nil {
			q = q.Where("club_organization_id = ?", id)
		}
	}
	if f.Search != "" {
		q = q.Where("club_name ILIKE ?", "%"+f.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"name":       "club_name",
		"created_at": "club_created_at",
	}
	var list []model.Club
	if err := q.
		Order(p.OrderClause(allowed, "name")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToClubResponses(list), helper.BuildMeta(total, p))
}

// GetByID (GET /clubs/:id)
func (h *ClubController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Club
	if err := h.DB.First(&m, "club_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToClubResponse(m))
}

// Create (POST /clubs)
func (h *ClubController) Create(c *fiber.Ctx) error {
	var req dto.ClubCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.ClubName = strings.TrimSpace(req.ClubName)
	req.ClubVenue = strings.TrimSpace(req.ClubVenue)
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	m := req.ToModel()
	slug, err := helper.GenerateUniqueSlug(h.DB, helper.SlugOptions{
		Table:            "clubs",
		SlugColumn:       "club_slug",
		SoftDeleteColumn: "club_deleted_at",
		Filters:          map[string]any{"club_organization_id": req.ClubOrganizationID},
		DefaultBase:      "club",
	}, req.ClubName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to generate slug")
	}
	m.ClubSlug = slug

	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "club created", dto.ToClubResponse(m))
}

// Update (PATCH /clubs/:id)
func (h *ClubController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req dto.ClubUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	var m model.Club
	if err := h.DB.First(&m, "club_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyClubUpdate(&m, req)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "club updated", dto.ToClubResponse(m))
}

// Delete (DELETE /clubs/:id) — soft delete
func (h *ClubController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Club
	if err := h.DB.First(&m, "club_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "club deleted", dto.ToClubResponse(m))
}
