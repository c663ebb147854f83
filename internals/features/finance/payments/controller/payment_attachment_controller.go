// file: internals/features/finance/payments/controller/payment_attachment_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"clubhub_backend/internals/features/finance/payments/dto"
	helper "clubhub_backend/internals/helpers"
	helperOSS "clubhub_backend/internals/helpers/oss"
)

// UploadAttachment (POST /payments/:id/attachment) sets or replaces the
// receipt on an existing payment. The file arrives under the attachment
// field; the slot semantics match multipart create/update.
func (h *PaymentController) UploadAttachment(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil || form == nil || len(form.File["attachment"]) == 0 {
		return helper.JsonValidationError(c, map[string][]string{
			"attachment": {"The attachment field is required."},
		})
	}
	if err := h.applyAttachmentSlot(m, form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "attachment uploaded", dto.ToPaymentResponse(*m))
}

// DownloadAttachment (GET /payments/:id/attachment) streams the stored
// receipt back under its original filename.
func (h *PaymentController) DownloadAttachment(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}
	if m.PaymentAttachmentPath == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "payment has no attachment")
	}

	data, err := helperOSS.FetchObject(*m.PaymentAttachmentPath)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "attachment fetch failed")
	}

	name := "attachment"
	if m.PaymentAttachmentName != nil {
		name = *m.PaymentAttachmentName
	}
	if m.PaymentAttachmentType != nil {
		c.Set(fiber.HeaderContentType, *m.PaymentAttachmentType)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}

// DeleteAttachment (DELETE /payments/:id/attachment) clears the receipt slot
// without touching the rest of the payment.
func (h *PaymentController) DeleteAttachment(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}
	if m.PaymentAttachmentPath == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "payment has no attachment")
	}

	_ = helperOSS.DeleteObject(*m.PaymentAttachmentPath)
	m.PaymentAttachmentPath = nil
	m.PaymentAttachmentName = nil
	m.PaymentAttachmentType = nil
	m.PaymentAttachmentSize = nil

	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "attachment removed", nil)
}
