// file: internals/features/lineage/clubs/model/club_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Club struct {
	ClubID uuid.UUID `gorm:"column:club_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"club_id"`

	ClubOrganizationID uuid.UUID `gorm:"column:club_organization_id;type:uuid;not null;index" json:"club_organization_id"`

	ClubName string `gorm:"column:club_name;type:varchar(120);not null" json:"club_name"`
	ClubSlug string `gorm:"column:club_slug;type:varchar(160);not null;index:uniq_club_slug_per_org,unique,priority:2" json:"club_slug"`

	ClubVenue string `gorm:"column:club_venue;type:varchar(160)" json:"club_venue,omitempty"`

	ClubCreatedAt time.Time      `gorm:"column:club_created_at;not null;default:now()" json:"club_created_at"`
	ClubUpdatedAt time.Time      `gorm:"column:club_updated_at;not null;default:now()" json:"club_updated_at"`
	ClubDeletedAt gorm.DeletedAt `gorm:"column:club_deleted_at;index" json:"-"`

	// slug unique per organization
	_ struct{} `gorm:"uniqueIndex:uniq_club_slug_per_org,priority:1"`
}

func (Club) TableName() string {
	return "clubs"
}

func (m *Club) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ClubCreatedAt.IsZero() {
		m.ClubCreatedAt = now
	}
	m.ClubUpdatedAt = now
	return nil
}

func (m *Club) BeforeUpdate(tx *gorm.DB) error {
	m.ClubUpdatedAt = time.Now()
	return nil
}
