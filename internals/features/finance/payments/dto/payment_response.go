// file: internals/features/finance/payments/dto/payment_response.go
package dto

import (
	"clubhub_backend/internals/features/finance/payments/model"
	helper "clubhub_backend/internals/helpers"
)

func ToPaymentResponse(m model.Payment) PaymentResponse {
	resp := PaymentResponse{
		PaymentID:       m.PaymentID,
		OrganizationID:  m.PaymentOrganizationID,
		ClubID:          m.PaymentClubID,
		StudentID:       m.PaymentStudentID,
		StudentFeeID:    m.PaymentStudentFeeID,
		Amount:          m.PaymentAmount,
		AmountFormatted: helper.FormatAmount(m.PaymentCurrencyCode, m.PaymentAmount),
		CurrencyCode:    m.PaymentCurrencyCode,
		Status:          string(m.PaymentStatus),
		Method:          string(m.PaymentMethod),
		PaidAt:          m.PaymentPaidAt,
		Notes:           m.PaymentNotes,
		AttachmentName:  m.PaymentAttachmentName,
		AttachmentType:  m.PaymentAttachmentType,
		AttachmentSize:  m.PaymentAttachmentSize,
		HasAttachment:   m.PaymentAttachmentPath != nil,
		CreatedAt:       m.PaymentCreatedAt,
		UpdatedAt:       m.PaymentUpdatedAt,
	}
	if len(m.BankInformation) > 0 {
		ids := make([]int, 0, len(m.BankInformation))
		for _, b := range m.BankInformation {
			ids = append(ids, b.BankInformationID)
		}
		resp.BankInformationIDs = ids
	}
	return resp
}

func ToPaymentResponses(list []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToPaymentResponse(v))
	}
	return out
}
