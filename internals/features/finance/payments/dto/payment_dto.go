// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"clubhub_backend/internals/features/finance/payments/model"
)

// Payments arrive as multipart forms (an attachment may ride along), so the
// request types bind with form tags. Amount is a string on the wire
// ("150.00") and parsed server-side.
type PaymentCreateRequest struct {
	OrganizationID uuid.UUID  `form:"organization_id" validate:"required"`
	ClubID         *uuid.UUID `form:"club_id"`
	StudentID      *uuid.UUID `form:"student_id"`

	// normalized to a string so "42" and 42 compare equal
	StudentFeeID string `form:"student_fee_id"`

	Amount       string `form:"amount" validate:"omitempty,max=20"`
	CurrencyCode string `form:"currency_code" validate:"omitempty,len=3"`

	Status string `form:"status" validate:"omitempty,oneof=pending paid unpaid successful failed"`
	Method string `form:"method" validate:"omitempty,oneof=cash card stripe"`

	PaidAt *string `form:"paid_at"` // YYYY-MM-DD
	Notes  *string `form:"notes" validate:"omitempty,max=2000"`

	// repeated field; read from the multipart form as bank_information[]
	BankInformationIDs []int `form:"-"`
}

type PaymentUpdateRequest struct {
	ClubID       *uuid.UUID `form:"club_id"`
	StudentID    *uuid.UUID `form:"student_id"`
	StudentFeeID *string    `form:"student_fee_id"`

	Amount       *string `form:"amount" validate:"omitempty,max=20"`
	CurrencyCode *string `form:"currency_code" validate:"omitempty,len=3"`

	Status *string `form:"status" validate:"omitempty,oneof=pending paid unpaid successful failed"`
	Method *string `form:"method" validate:"omitempty,oneof=cash card stripe"`

	PaidAt *string `form:"paid_at"`
	Notes  *string `form:"notes" validate:"omitempty,max=2000"`

	BankInformationIDs []int `form:"-"`
}

type PaymentStatusRequest struct {
	Status string  `form:"status" json:"status" validate:"required,oneof=pending paid unpaid successful failed"`
	PaidAt *string `form:"paid_at" json:"paid_at,omitempty"`
}

type PaymentResponse struct {
	PaymentID      uuid.UUID  `json:"payment_id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	ClubID         *uuid.UUID `json:"club_id,omitempty"`
	StudentID      *uuid.UUID `json:"student_id,omitempty"`
	StudentFeeID   *int       `json:"student_fee_id,omitempty"`

	Amount          float64 `json:"amount"`
	AmountFormatted string  `json:"amount_formatted"`
	CurrencyCode    string  `json:"currency_code"`

	Status string `json:"status"`
	Method string `json:"method"`

	PaidAt *time.Time `json:"paid_at,omitempty"`
	Notes  *string    `json:"notes,omitempty"`

	AttachmentName *string `json:"attachment_name,omitempty"`
	AttachmentType *string `json:"attachment_type,omitempty"`
	AttachmentSize *int64  `json:"attachment_size,omitempty"`
	HasAttachment  bool    `json:"has_attachment"`

	BankInformationIDs []int `json:"bank_information,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParseAmount accepts the wire form of a money amount ("150", "150.00").
func ParseAmount(s string) (float64, bool) {
	v := strings.TrimSpace(s)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}

// ParseIntList maps the repeated bank_information[] values to ints,
// skipping anything unparsable.
func ParseIntList(vals []string) []int {
	out := make([]int, 0, len(vals))
	for _, v := range vals {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func parsePaidAt(s *string) *time.Time {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t
	}
	return nil
}

func (r PaymentCreateRequest) ToModel() model.Payment {
	m := model.Payment{
		PaymentOrganizationID: r.OrganizationID,
		PaymentClubID:         r.ClubID,
		PaymentStudentID:      r.StudentID,
		PaymentCurrencyCode:   strings.ToUpper(strings.TrimSpace(r.CurrencyCode)),
		PaymentStatus:         model.PaymentStatusPending,
		PaymentMethod:         model.PaymentMethodCash,
		PaymentPaidAt:         parsePaidAt(r.PaidAt),
		PaymentNotes:          r.Notes,
	}
	if amt, ok := ParseAmount(r.Amount); ok {
		m.PaymentAmount = amt
	}
	if r.Status != "" {
		m.PaymentStatus = model.PaymentStatus(r.Status)
	}
	if r.Method != "" {
		m.PaymentMethod = model.PaymentMethod(r.Method)
	}
	if id, err := strconv.Atoi(strings.TrimSpace(r.StudentFeeID)); err == nil {
		m.PaymentStudentFeeID = &id
	}
	return m
}

func ApplyPaymentUpdate(m *model.Payment, r PaymentUpdateRequest) {
	if r.ClubID != nil {
		m.PaymentClubID = r.ClubID
	}
	if r.StudentID != nil {
		m.PaymentStudentID = r.StudentID
	}
	if r.StudentFeeID != nil {
		if id, err := strconv.Atoi(strings.TrimSpace(*r.StudentFeeID)); err == nil {
			m.PaymentStudentFeeID = &id
		} else {
			m.PaymentStudentFeeID = nil
		}
	}
	if r.Amount != nil {
		if amt, ok := ParseAmount(*r.Amount); ok {
			m.PaymentAmount = amt
		}
	}
	if r.CurrencyCode != nil && *r.CurrencyCode != "" {
		m.PaymentCurrencyCode = strings.ToUpper(strings.TrimSpace(*r.CurrencyCode))
	}
	if r.Status != nil && *r.Status != "" {
		m.PaymentStatus = model.PaymentStatus(*r.Status)
	}
	if r.Method != nil && *r.Method != "" {
		m.PaymentMethod = model.PaymentMethod(*r.Method)
	}
	if t := parsePaidAt(r.PaidAt); t != nil {
		m.PaymentPaidAt = t
	}
	if r.Notes != nil {
		m.PaymentNotes = r.Notes
	}
}
