// file: internals/features/finance/payments/service/invoice.go
package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// InvoiceData is everything the PDF needs, pre-resolved by the caller so
// the renderer stays free of database access.
type InvoiceData struct {
	InvoiceNumber    string
	OrganizationName string
	ClubName         string
	StudentName      string

	AmountFormatted string
	CurrencyCode    string
	Status          string
	Method          string

	PaidAt    *time.Time
	CreatedAt time.Time
	Notes     string

	BankAccounts []InvoiceBankAccount
}

type InvoiceBankAccount struct {
	Label         string
	BankName      string
	AccountName   string
	AccountNumber string
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BuildInvoicePDF renders a single-page A4 invoice.
func BuildInvoicePDF(inv InvoiceData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+inv.InvoiceNumber, false)
	pdf.AddPage()

	// header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, inv.OrganizationName, "", 1, "L", false, 0, "")
	if inv.ClubName != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, inv.ClubName, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "INVOICE "+inv.InvoiceNumber, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Issued "+inv.CreatedAt.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	if inv.PaidAt != nil {
		pdf.CellFormat(0, 5, "Paid "+inv.PaidAt.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// detail rows
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}
	row("Billed to", inv.StudentName)
	row("Amount", fmt.Sprintf("%s %s", inv.CurrencyCode, inv.AmountFormatted))
	row("Status", strings.ToUpper(inv.Status))
	row("Method", capitalize(inv.Method))
	if inv.Notes != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 7, "Notes", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, inv.Notes, "", "L", false)
	}

	// bank accounts table
	if len(inv.BankAccounts) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, "Payment accounts", "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(40, 7, "Label", "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 7, "Bank", "1", 0, "L", true, 0, "")
		pdf.CellFormat(55, 7, "Account name", "1", 0, "L", true, 0, "")
		pdf.CellFormat(45, 7, "Account number", "1", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, b := range inv.BankAccounts {
			pdf.CellFormat(40, 7, b.Label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 7, b.BankName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(55, 7, b.AccountName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(45, 7, b.AccountNumber, "1", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, "Generated "+time.Now().Format("02 Jan 2006 15:04"), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
