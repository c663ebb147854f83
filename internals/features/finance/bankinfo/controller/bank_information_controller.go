// file: internals/features/finance/bankinfo/controller/bank_information_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub_backend/internals/features/finance/bankinfo/dto"
	"clubhub_backend/internals/features/finance/bankinfo/model"
	helper "clubhub_backend/internals/helpers"
)

type BankInformationController struct {
	DB *gorm.DB
}

func parseIntParam(c *fiber.Ctx, name string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(c.Params(name)))
}

// List (GET /bank-information?organization_id=)
func (h *BankInformationController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "label", "asc", helper.DefaultOpts)

	q := h.DB.Model(&model.BankInformation{})
	if v := strings.TrimSpace(c.Query("organization_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("bank_information_organization_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"label":      "bank_information_label",
		"bank_name":  "bank_information_bank_name",
		"created_at": "bank_information_created_at",
	}
	var list []model.BankInformation
	if err := q.
		Order(p.OrderClause(allowed, "label")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToBankInformationResponses(list), helper.BuildMeta(total, p))
}

// Create (POST /bank-information)
func (h *BankInformationController) Create(c *fiber.Ctx) error {
	var req dto.BankInformationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "bank information created", dto.ToBankInformationResponse(m))
}

// Update (PATCH /bank-information/:id)
func (h *BankInformationController) Update(c *fiber.Ctx) error {
	id, err := parseIntParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req dto.BankInformationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	var m model.BankInformation
	if err := h.DB.First(&m, "bank_information_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "bank information not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyBankInformationUpdate(&m, req)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "bank information updated", dto.ToBankInformationResponse(m))
}

// Delete (DELETE /bank-information/:id)
func (h *BankInformationController) Delete(c *fiber.Ctx) error {
	id, err := parseIntParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.BankInformation
	if err := h.DB.First(&m, "bank_information_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "bank information not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "bank information deleted", dto.ToBankInformationResponse(m))
}
