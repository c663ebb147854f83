// file: internals/features/lineage/clubs/dto/club_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"clubhub_backend/internals/features/lineage/clubs/model"
)

type ClubCreateRequest struct {
	ClubOrganizationID uuid.UUID `json:"club_organization_id" validate:"required"`
	ClubName           string    `json:"club_name" validate:"required,max=120"`
	ClubVenue          string    `json:"club_venue" validate:"max=160"`
}

type ClubUpdateRequest struct {
	ClubName  *string `json:"club_name,omitempty" validate:"omitempty,max=120"`
	ClubVenue *string `json:"club_venue,omitempty" validate:"omitempty,max=160"`
}

type ClubResponse struct {
	ClubID             uuid.UUID `json:"club_id"`
	ClubOrganizationID uuid.UUID `json:"club_organization_id"`
	ClubName           string    `json:"club_name"`
	ClubSlug           string    `json:"club_slug"`
	ClubVenue          string    `json:"club_venue,omitempty"`
	ClubCreatedAt      time.Time `json:"club_created_at"`
}

func (r ClubCreateRequest) ToModel() model.Club {
	return model.Club{
		ClubOrganizationID: r.ClubOrganizationID,
		ClubName:           r.ClubName,
		ClubVenue:          r.ClubVenue,
	}
}

func ApplyClubUpdate(m *model.Club, r ClubUpdateRequest) {
	if r.ClubName != nil {
		m.ClubName = *r.ClubName
	}
	if r.ClubVenue != nil {
		m.ClubVenue = *r.ClubVenue
	}
}

func ToClubResponse(m model.Club) ClubResponse {
	return ClubResponse{
		ClubID:             m.ClubID,
		ClubOrganizationID: m.ClubOrganizationID,
		ClubName:           m.ClubName,
		ClubSlug:           m.ClubSlug,
		ClubVenue:          m.ClubVenue,
		ClubCreatedAt:      m.ClubCreatedAt,
	}
}

func ToClubResponses(list []model.Club) []ClubResponse {
	out := make([]ClubResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToClubResponse(v))
	}
	return out
}
