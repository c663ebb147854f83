// file: internals/features/finance/feeplans/controller/fee_plan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub_backend/internals/features/finance/feeplans/dto"
	"clubhub_backend/internals/features/finance/feeplans/model"
	helper "clubhub_backend/internals/helpers"
	"clubhub_backend/internals/helpers/filterstate"
)

type FeePlanController struct {
	DB *gorm.DB
}

// List (GET /fee-plans?organization_id=&currency=)
func (h *FeePlanController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)
	f := filterstate.FromQuery(c.Queries())

	q := h.DB.Model(&model.FeePlan{})
	if f.OrganizationID != "" {
		if id, err := uuid.Parse(f.OrganizationID); err == nil {
			q = q.Where("fee_plan_organization_id = ?", id)
		}
	}
	if f.Currency != "" {
		q = q.Where("fee_plan_currency_code = ?", strings.ToUpper(f.Currency))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"name":       "fee_plan_name",
		"amount":     "fee_plan_amount",
		"created_at": "fee_plan_created_at",
	}
	var list []model.FeePlan
	if err := q.
		Order(p.OrderClause(allowed, "name")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToFeePlanResponses(list), helper.BuildMeta(total, p))
}

// Create (POST /fee-plans)
func (h *FeePlanController) Create(c *fiber.Ctx) error {
	var req dto.FeePlanCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.CurrencyCode = strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "fee plan created", dto.ToFeePlanResponse(m))
}

// Update (PATCH /fee-plans/:id)
func (h *FeePlanController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req dto.FeePlanUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	var m model.FeePlan
	if err := h.DB.First(&m, "fee_plan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee plan not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyFeePlanUpdate(&m, req)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "fee plan updated", dto.ToFeePlanResponse(m))
}

// Delete (DELETE /fee-plans/:id)
func (h *FeePlanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.FeePlan
	if err := h.DB.First(&m, "fee_plan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee plan not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "fee plan deleted", dto.ToFeePlanResponse(m))
}
