// file: internals/features/events/clubevents/model/club_event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "clubhub_backend/internals/features/people/students/model"
)

// =========================================================
// ENUMS
// =========================================================

type EventType string

const (
	EventTypeTraining    EventType = "training"
	EventTypeCompetition EventType = "competition"
	EventTypeGrading     EventType = "grading"
	EventTypeSocial      EventType = "social"
	EventTypeMeeting     EventType = "meeting"
)

func ValidEventType(s string) bool {
	switch EventType(s) {
	case EventTypeTraining, EventTypeCompetition, EventTypeGrading,
		EventTypeSocial, EventTypeMeeting:
		return true
	}
	return false
}

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
)

// statusRank orders the lifecycle; transitions never move backwards.
func statusRank(s EventStatus) int {
	switch s {
	case EventStatusUpcoming:
		return 0
	case EventStatusOngoing:
		return 1
	case EventStatusCompleted:
		return 2
	}
	return -1
}

// CanTransition reports whether moving from -> to is a legal forward step.
func CanTransition(from, to EventStatus) bool {
	a, b := statusRank(from), statusRank(to)
	return a >= 0 && b >= 0 && b >= a
}

// =========================================================
// MODEL
// =========================================================

type ClubEvent struct {
	ClubEventID uuid.UUID `gorm:"column:club_event_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"club_event_id"`

	ClubEventOrganizationID uuid.UUID  `gorm:"column:club_event_organization_id;type:uuid;not null;index" json:"club_event_organization_id"`
	ClubEventClubID         *uuid.UUID `gorm:"column:club_event_club_id;type:uuid;index" json:"club_event_club_id,omitempty"`

	ClubEventTitle       string  `gorm:"column:club_event_title;type:varchar(160);not null" json:"club_event_title"`
	ClubEventDescription *string `gorm:"column:club_event_description;type:text" json:"club_event_description,omitempty"`

	ClubEventType   EventType   `gorm:"column:club_event_type;type:varchar(20);not null;default:'training'" json:"club_event_type"`
	ClubEventStatus EventStatus `gorm:"column:club_event_status;type:varchar(20);not null;default:'upcoming';index" json:"club_event_status"`

	ClubEventStartsAt time.Time  `gorm:"column:club_event_starts_at;not null;index" json:"club_event_starts_at"`
	ClubEventEndsAt   *time.Time `gorm:"column:club_event_ends_at" json:"club_event_ends_at,omitempty"`
	ClubEventVenue    *string    `gorm:"column:club_event_venue;type:varchar(160)" json:"club_event_venue,omitempty"`

	ClubEventIsPublic bool `gorm:"column:club_event_is_public;not null;default:false" json:"club_event_is_public"`

	// banner image slot (webp-converted) and document slot (kept as-is)
	ClubEventImageURL     *string `gorm:"column:club_event_image_url;type:text" json:"club_event_image_url,omitempty"`
	ClubEventImageKey     *string `gorm:"column:club_event_image_key;type:text" json:"-"`
	ClubEventDocumentURL  *string `gorm:"column:club_event_document_url;type:text" json:"club_event_document_url,omitempty"`
	ClubEventDocumentKey  *string `gorm:"column:club_event_document_key;type:text" json:"-"`
	ClubEventDocumentName *string `gorm:"column:club_event_document_name;type:varchar(160)" json:"club_event_document_name,omitempty"`

	// registered participants, selected via the student_ids[] form field
	Participants []studentModel.Student `gorm:"many2many:club_event_students;foreignKey:ClubEventID;joinForeignKey:club_event_id;References:StudentID;joinReferences:student_id" json:"participants,omitempty"`

	ClubEventCreatedAt time.Time      `gorm:"column:club_event_created_at;not null;default:now();index" json:"club_event_created_at"`
	ClubEventUpdatedAt time.Time      `gorm:"column:club_event_updated_at;not null;default:now()" json:"club_event_updated_at"`
	ClubEventDeletedAt gorm.DeletedAt `gorm:"column:club_event_deleted_at;index" json:"-"`
}

func (ClubEvent) TableName() string {
	return "club_events"
}

func (m *ClubEvent) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ClubEventCreatedAt.IsZero() {
		m.ClubEventCreatedAt = now
	}
	m.ClubEventUpdatedAt = now
	return nil
}

func (m *ClubEvent) BeforeUpdate(tx *gorm.DB) error {
	m.ClubEventUpdatedAt = time.Now()
	return nil
}
