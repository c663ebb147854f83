// file: internals/features/finance/bankinfo/dto/bank_information_dto.go
package dto

import (
	"github.com/google/uuid"

	"clubhub_backend/internals/features/finance/bankinfo/model"
)

type BankInformationCreateRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Label          string    `json:"label" validate:"required,max=120"`
	BankName       string    `json:"bank_name" validate:"required,max=120"`
	AccountName    string    `json:"account_name" validate:"required,max=120"`
	AccountNumber  string    `json:"account_number" validate:"required,max=40"`
}

type BankInformationUpdateRequest struct {
	Label         *string `json:"label,omitempty" validate:"omitempty,max=120"`
	BankName      *string `json:"bank_name,omitempty" validate:"omitempty,max=120"`
	AccountName   *string `json:"account_name,omitempty" validate:"omitempty,max=120"`
	AccountNumber *string `json:"account_number,omitempty" validate:"omitempty,max=40"`
}

type BankInformationResponse struct {
	BankInformationID int       `json:"bank_information_id"`
	OrganizationID    uuid.UUID `json:"organization_id"`
	Label             string    `json:"label"`
	BankName          string    `json:"bank_name"`
	AccountName       string    `json:"account_name"`
	AccountNumber     string    `json:"account_number"`
}

func (r BankInformationCreateRequest) ToModel() model.BankInformation {
	return model.BankInformation{
		BankInformationOrganizationID: r.OrganizationID,
		BankInformationLabel:          r.Label,
		BankInformationBankName:       r.BankName,
		BankInformationAccountName:    r.AccountName,
		BankInformationAccountNumber:  r.AccountNumber,
	}
}

func ApplyBankInformationUpdate(m *model.BankInformation, r BankInformationUpdateRequest) {
	if r.Label != nil {
		m.BankInformationLabel = *r.Label
	}
	if r.BankName != nil {
		m.BankInformationBankName = *r.BankName
	}
	if r.AccountName != nil {
		m.BankInformationAccountName = *r.AccountName
	}
	if r.AccountNumber != nil {
		m.BankInformationAccountNumber = *r.AccountNumber
	}
}

func ToBankInformationResponse(m model.BankInformation) BankInformationResponse {
	return BankInformationResponse{
		BankInformationID: m.BankInformationID,
		OrganizationID:    m.BankInformationOrganizationID,
		Label:             m.BankInformationLabel,
		BankName:          m.BankInformationBankName,
		AccountName:       m.BankInformationAccountName,
		AccountNumber:     m.BankInformationAccountNumber,
	}
}

func ToBankInformationResponses(list []model.BankInformation) []BankInformationResponse {
	out := make([]BankInformationResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToBankInformationResponse(v))
	}
	return out
}
