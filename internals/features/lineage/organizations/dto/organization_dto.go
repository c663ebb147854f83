// file: internals/features/lineage/organizations/dto/organization_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"clubhub_backend/internals/features/lineage/organizations/model"
)

type OrganizationResponse struct {
	OrganizationID           uuid.UUID `json:"organization_id"`
	OrganizationName         string    `json:"organization_name"`
	OrganizationSlug         string    `json:"organization_slug"`
	OrganizationCurrencyCode string    `json:"organization_currency_code"`
	OrganizationCountry      string    `json:"organization_country,omitempty"`
	OrganizationCreatedAt    time.Time `json:"organization_created_at"`
}

func ToOrganizationResponse(m model.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID:           m.OrganizationID,
		OrganizationName:         m.OrganizationName,
		OrganizationSlug:         m.OrganizationSlug,
		OrganizationCurrencyCode: m.OrganizationCurrencyCode,
		OrganizationCountry:      m.OrganizationCountry,
		OrganizationCreatedAt:    m.OrganizationCreatedAt,
	}
}

func ToOrganizationResponses(list []model.Organization) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToOrganizationResponse(v))
	}
	return out
}
