// file: internals/features/finance/feeplans/dto/fee_plan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"clubhub_backend/internals/features/finance/feeplans/model"
)

type FeePlanCreateRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Name           string    `json:"name" validate:"required,max=120"`
	Amount         float64   `json:"amount" validate:"required,min=0"`
	CurrencyCode   string    `json:"currency_code" validate:"required,len=3"`
	Interval       string    `json:"interval" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
}

type FeePlanUpdateRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=120"`
	Amount       *float64 `json:"amount,omitempty" validate:"omitempty,min=0"`
	CurrencyCode *string  `json:"currency_code,omitempty" validate:"omitempty,len=3"`
	Interval     *string  `json:"interval,omitempty" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
}

type FeePlanResponse struct {
	FeePlanID      uuid.UUID `json:"fee_plan_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Amount         float64   `json:"amount"`
	CurrencyCode   string    `json:"currency_code"`
	Interval       string    `json:"interval"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r FeePlanCreateRequest) ToModel() model.FeePlan {
	m := model.FeePlan{
		FeePlanOrganizationID: r.OrganizationID,
		FeePlanName:           r.Name,
		FeePlanAmount:         r.Amount,
		FeePlanCurrencyCode:   r.CurrencyCode,
		FeePlanInterval:       model.FeePlanIntervalMonthly,
	}
	if r.Interval != "" {
		m.FeePlanInterval = model.FeePlanInterval(r.Interval)
	}
	return m
}

func ApplyFeePlanUpdate(m *model.FeePlan, r FeePlanUpdateRequest) {
	if r.Name != nil {
		m.FeePlanName = *r.Name
	}
	if r.Amount != nil {
		m.FeePlanAmount = *r.Amount
	}
	if r.CurrencyCode != nil {
		m.FeePlanCurrencyCode = *r.CurrencyCode
	}
	if r.Interval != nil {
		m.FeePlanInterval = model.FeePlanInterval(*r.Interval)
	}
}

func ToFeePlanResponse(m model.FeePlan) FeePlanResponse {
	return FeePlanResponse{
		FeePlanID:      m.FeePlanID,
		OrganizationID: m.FeePlanOrganizationID,
		Name:           m.FeePlanName,
		Amount:         m.FeePlanAmount,
		CurrencyCode:   m.FeePlanCurrencyCode,
		Interval:       string(m.FeePlanInterval),
		CreatedAt:      m.FeePlanCreatedAt,
	}
}

func ToFeePlanResponses(list []model.FeePlan) []FeePlanResponse {
	out := make([]FeePlanResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeePlanResponse(v))
	}
	return out
}
