// file: internals/features/events/clubevents/dto/club_event_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"clubhub_backend/internals/features/events/clubevents/model"
)

// Events arrive as multipart forms carrying two independent file slots
// (image, document) alongside the scalar fields.
type ClubEventCreateRequest struct {
	OrganizationID uuid.UUID  `form:"organization_id" validate:"required"`
	ClubID         *uuid.UUID `form:"club_id"`

	Title       string  `form:"title" validate:"required,max=160"`
	Description *string `form:"description" validate:"omitempty,max=4000"`

	Type   string `form:"type" validate:"omitempty,oneof=training competition grading social meeting"`
	Status string `form:"status" validate:"omitempty,oneof=upcoming ongoing completed"`

	StartsAt string  `form:"starts_at" validate:"required"` // RFC3339 or YYYY-MM-DD
	EndsAt   *string `form:"ends_at"`
	Venue    *string `form:"venue" validate:"omitempty,max=160"`

	IsPublic *bool `form:"is_public"`
}

type ClubEventUpdateRequest struct {
	ClubID *uuid.UUID `form:"club_id"`

	Title       *string `form:"title" validate:"omitempty,max=160"`
	Description *string `form:"description" validate:"omitempty,max=4000"`

	Type *string `form:"type" validate:"omitempty,oneof=training competition grading social meeting"`

	StartsAt *string `form:"starts_at"`
	EndsAt   *string `form:"ends_at"`
	Venue    *string `form:"venue" validate:"omitempty,max=160"`

	IsPublic *bool `form:"is_public"`
}

type ClubEventStatusRequest struct {
	Status string `form:"status" json:"status" validate:"required,oneof=upcoming ongoing completed"`
}

type ClubEventResponse struct {
	ClubEventID    uuid.UUID  `json:"club_event_id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	ClubID         *uuid.UUID `json:"club_id,omitempty"`

	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`

	Type   string `json:"type"`
	Status string `json:"status"`

	StartsAt time.Time  `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	Venue    *string    `json:"venue,omitempty"`

	IsPublic bool `json:"is_public"`

	ImageURL     *string `json:"image_url,omitempty"`
	DocumentURL  *string `json:"document_url,omitempty"`
	DocumentName *string `json:"document_name,omitempty"`

	// repeated field; submitted as student_ids[]
	StudentIDs []uuid.UUID `json:"student_ids,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func parseEventTime(s string) (time.Time, bool) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02 15:04", v); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (r ClubEventCreateRequest) ToModel() (model.ClubEvent, bool) {
	starts, ok := parseEventTime(r.StartsAt)
	if !ok {
		return model.ClubEvent{}, false
	}
	m := model.ClubEvent{
		ClubEventOrganizationID: r.OrganizationID,
		ClubEventClubID:         r.ClubID,
		ClubEventTitle:          strings.TrimSpace(r.Title),
		ClubEventDescription:    r.Description,
		ClubEventType:           model.EventTypeTraining,
		ClubEventStatus:         model.EventStatusUpcoming,
		ClubEventStartsAt:       starts,
		ClubEventVenue:          r.Venue,
	}
	if r.Type != "" {
		m.ClubEventType = model.EventType(r.Type)
	}
	if r.Status != "" {
		m.ClubEventStatus = model.EventStatus(r.Status)
	}
	if r.EndsAt != nil {
		if t, ok := parseEventTime(*r.EndsAt); ok {
			m.ClubEventEndsAt = &t
		}
	}
	if r.IsPublic != nil {
		m.ClubEventIsPublic = *r.IsPublic
	}
	return m, true
}

func ApplyClubEventUpdate(m *model.ClubEvent, r ClubEventUpdateRequest) {
	if r.ClubID != nil {
		m.ClubEventClubID = r.ClubID
	}
	if r.Title != nil {
		m.ClubEventTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.ClubEventDescription = r.Description
	}
	if r.Type != nil && *r.Type != "" {
		m.ClubEventType = model.EventType(*r.Type)
	}
	if r.StartsAt != nil {
		if t, ok := parseEventTime(*r.StartsAt); ok {
			m.ClubEventStartsAt = t
		}
	}
	if r.EndsAt != nil {
		if t, ok := parseEventTime(*r.EndsAt); ok {
			m.ClubEventEndsAt = &t
		}
	}
	if r.Venue != nil {
		m.ClubEventVenue = r.Venue
	}
	if r.IsPublic != nil {
		m.ClubEventIsPublic = *r.IsPublic
	}
}

// ParseUUIDList maps the repeated student_ids[] values, skipping anything
// unparsable.
func ParseUUIDList(vals []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(vals))
	for _, v := range vals {
		id, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}

func ToClubEventResponse(m model.ClubEvent) ClubEventResponse {
	resp := ClubEventResponse{
		ClubEventID:    m.ClubEventID,
		OrganizationID: m.ClubEventOrganizationID,
		ClubID:         m.ClubEventClubID,
		Title:          m.ClubEventTitle,
		Description:    m.ClubEventDescription,
		Type:           string(m.ClubEventType),
		Status:         string(m.ClubEventStatus),
		StartsAt:       m.ClubEventStartsAt,
		EndsAt:         m.ClubEventEndsAt,
		Venue:          m.ClubEventVenue,
		IsPublic:       m.ClubEventIsPublic,
		ImageURL:       m.ClubEventImageURL,
		DocumentURL:    m.ClubEventDocumentURL,
		DocumentName:   m.ClubEventDocumentName,
		CreatedAt:      m.ClubEventCreatedAt,
		UpdatedAt:      m.ClubEventUpdatedAt,
	}
	if len(m.Participants) > 0 {
		ids := make([]uuid.UUID, 0, len(m.Participants))
		for _, s := range m.Participants {
			ids = append(ids, s.StudentID)
		}
		resp.StudentIDs = ids
	}
	return resp
}

func ToClubEventResponses(list []model.ClubEvent) []ClubEventResponse {
	out := make([]ClubEventResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToClubEventResponse(v))
	}
	return out
}
