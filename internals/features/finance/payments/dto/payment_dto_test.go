// file: internals/features/finance/payments/dto/payment_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"

	"clubhub_backend/internals/features/finance/payments/model"
)

func TestPaymentCreateToModel(t *testing.T) {
	orgID := uuid.MustParse("3e9c2d4a-1b2c-4d5e-8f90-112233445566")
	studentID := uuid.MustParse("7f8e9dab-cdef-4a5b-8c9d-aabbccddeeff")
	notes := "term fee"
	paidAt := "2026-03-15"

	req := PaymentCreateRequest{
		OrganizationID: orgID,
		StudentID:      &studentID,
		StudentFeeID:   " 42 ",
		Amount:         "150.00",
		CurrencyCode:   "myr",
		Status:         "paid",
		Method:         "card",
		PaidAt:         &paidAt,
		Notes:          &notes,
	}
	m := req.ToModel()

	if m.PaymentOrganizationID != orgID {
		t.Errorf("organization = %s, want %s", m.PaymentOrganizationID, orgID)
	}
	if m.PaymentStudentID == nil || *m.PaymentStudentID != studentID {
		t.Errorf("student = %v, want %s", m.PaymentStudentID, studentID)
	}
	if m.PaymentStudentFeeID == nil || *m.PaymentStudentFeeID != 42 {
		t.Errorf("student fee id = %v, want 42", m.PaymentStudentFeeID)
	}
	if m.PaymentAmount != 150 {
		t.Errorf("amount = %v, want 150", m.PaymentAmount)
	}
	if m.PaymentCurrencyCode != "MYR" {
		t.Errorf("currency = %q, want MYR", m.PaymentCurrencyCode)
	}
	if m.PaymentStatus != model.PaymentStatusPaid {
		t.Errorf("status = %s, want paid", m.PaymentStatus)
	}
	if m.PaymentMethod != model.PaymentMethodCard {
		t.Errorf("method = %s, want card", m.PaymentMethod)
	}
	if m.PaymentPaidAt == nil || m.PaymentPaidAt.Format("2006-01-02") != paidAt {
		t.Errorf("paid_at = %v, want %s", m.PaymentPaidAt, paidAt)
	}
	if m.PaymentNotes == nil || *m.PaymentNotes != notes {
		t.Errorf("notes = %v, want %q", m.PaymentNotes, notes)
	}
}

func TestPaymentCreateToModelDefaults(t *testing.T) {
	m := PaymentCreateRequest{}.ToModel()
	if m.PaymentStatus != model.PaymentStatusPending {
		t.Errorf("default status = %s, want pending", m.PaymentStatus)
	}
	if m.PaymentMethod != model.PaymentMethodCash {
		t.Errorf("default method = %s, want cash", m.PaymentMethod)
	}
	if m.PaymentStudentFeeID != nil {
		t.Errorf("empty fee reference mapped to %v", *m.PaymentStudentFeeID)
	}
	if m.PaymentPaidAt != nil {
		t.Error("paid_at set without input")
	}
}

func TestApplyPaymentUpdate(t *testing.T) {
	m := model.Payment{
		PaymentAmount:       100,
		PaymentCurrencyCode: "MYR",
		PaymentStatus:       model.PaymentStatusPending,
		PaymentMethod:       model.PaymentMethodCash,
	}
	amount := "250.50"
	currency := "sgd"
	status := "successful"
	bad := "not-a-number"

	ApplyPaymentUpdate(&m, PaymentUpdateRequest{
		Amount:       &amount,
		CurrencyCode: &currency,
		Status:       &status,
	})
	if m.PaymentAmount != 250.5 {
		t.Errorf("amount = %v, want 250.5", m.PaymentAmount)
	}
	if m.PaymentCurrencyCode != "SGD" {
		t.Errorf("currency = %q, want SGD", m.PaymentCurrencyCode)
	}
	if m.PaymentStatus != model.PaymentStatusSuccessful {
		t.Errorf("status = %s, want successful", m.PaymentStatus)
	}
	if m.PaymentMethod != model.PaymentMethodCash {
		t.Errorf("method changed without input: %s", m.PaymentMethod)
	}

	ApplyPaymentUpdate(&m, PaymentUpdateRequest{Amount: &bad})
	if m.PaymentAmount != 250.5 {
		t.Errorf("unparsable amount mutated the model: %v", m.PaymentAmount)
	}
}
