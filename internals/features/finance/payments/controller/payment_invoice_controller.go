// file: internals/features/finance/payments/controller/payment_invoice_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"clubhub_backend/internals/features/finance/payments/model"
	"clubhub_backend/internals/features/finance/payments/service"
	clubModel "clubhub_backend/internals/features/lineage/clubs/model"
	orgModel "clubhub_backend/internals/features/lineage/organizations/model"
	studentModel "clubhub_backend/internals/features/people/students/model"
	helper "clubhub_backend/internals/helpers"
)

// Invoice (GET /payments/:id/invoice) renders the invoice PDF inline;
// DownloadInvoice forces the attachment disposition.
func (h *PaymentController) Invoice(c *fiber.Ctx) error {
	return h.renderInvoice(c, false)
}

func (h *PaymentController) DownloadInvoice(c *fiber.Ctx) error {
	return h.renderInvoice(c, true)
}

func (h *PaymentController) renderInvoice(c *fiber.Ctx, download bool) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}

	data, err := service.BuildInvoicePDF(h.invoiceData(m))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "invoice render failed")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	disposition := "inline"
	if download {
		disposition = "attachment"
	}
	name := "invoice-" + strings.Split(m.PaymentID.String(), "-")[0] + ".pdf"
	c.Set(fiber.HeaderContentDisposition, disposition+`; filename="`+name+`"`)
	return c.Send(data)
}

func (h *PaymentController) invoiceData(m *model.Payment) service.InvoiceData {
	inv := service.InvoiceData{
		InvoiceNumber:   strings.ToUpper(strings.Split(m.PaymentID.String(), "-")[0]),
		AmountFormatted: helper.FormatAmount(m.PaymentCurrencyCode, m.PaymentAmount),
		CurrencyCode:    m.PaymentCurrencyCode,
		Status:          string(m.PaymentStatus),
		Method:          string(m.PaymentMethod),
		PaidAt:          m.PaymentPaidAt,
		CreatedAt:       m.PaymentCreatedAt,
	}
	if m.PaymentNotes != nil {
		inv.Notes = *m.PaymentNotes
	}

	var org orgModel.Organization
	if err := h.DB.First(&org, "organization_id = ?", m.PaymentOrganizationID).Error; err == nil {
		inv.OrganizationName = org.OrganizationName
	}
	if m.PaymentClubID != nil {
		var club clubModel.Club
		if err := h.DB.First(&club, "club_id = ?", *m.PaymentClubID).Error; err == nil {
			inv.ClubName = club.ClubName
		}
	}
	if m.PaymentStudentID != nil {
		var s studentModel.Student
		if err := h.DB.First(&s, "student_id = ?", *m.PaymentStudentID).Error; err == nil {
			inv.StudentName = s.StudentName
		}
	}

	for _, b := range m.BankInformation {
		inv.BankAccounts = append(inv.BankAccounts, service.InvoiceBankAccount{
			Label:         b.BankInformationLabel,
			BankName:      b.BankInformationBankName,
			AccountName:   b.BankInformationAccountName,
			AccountNumber: b.BankInformationAccountNumber,
		})
	}
	return inv
}
