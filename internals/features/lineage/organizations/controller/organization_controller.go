// file: internals/features/lineage/organizations/controller/organization_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub_backend/internals/features/lineage/organizations/dto"
	"clubhub_backend/internals/features/lineage/organizations/model"
	helper "clubhub_backend/internals/helpers"
)

type OrganizationController struct {
	DB *gorm.DB
}

// List (GET /organizations) — reference data for the filter dropdowns.
func (h *OrganizationController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)

	q := h.DB.Model(&model.Organization{})
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Where("organization_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"name":       "organization_name",
		"created_at": "organization_created_at",
	}
	var list []model.Organization
	if err := q.
		Order(p.OrderClause(allowed, "name")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToOrganizationResponses(list), helper.BuildMeta(total, p))
}

// GetByID (GET /organizations/:id)
func (h *OrganizationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Organization
	if err := h.DB.First(&m, "organization_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "organization not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToOrganizationResponse(m))
}
