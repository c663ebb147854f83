// file: internals/features/lineage/organizations/model/organization_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	OrganizationID uuid.UUID `gorm:"column:organization_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"organization_id"`

	OrganizationName string `gorm:"column:organization_name;type:varchar(120);not null" json:"organization_name"`
	OrganizationSlug string `gorm:"column:organization_slug;type:varchar(160);not null;uniqueIndex" json:"organization_slug"`

	// defaults applied to new fee plans / payments in this tenant
	OrganizationCurrencyCode string `gorm:"column:organization_currency_code;type:varchar(3);not null;default:'MYR'" json:"organization_currency_code"`
	OrganizationCountry      string `gorm:"column:organization_country;type:varchar(60)" json:"organization_country"`

	OrganizationCreatedAt time.Time      `gorm:"column:organization_created_at;not null;default:now()" json:"organization_created_at"`
	OrganizationUpdatedAt time.Time      `gorm:"column:organization_updated_at;not null;default:now()" json:"organization_updated_at"`
	OrganizationDeletedAt gorm.DeletedAt `gorm:"column:organization_deleted_at;index" json:"-"`
}

func (Organization) TableName() string {
	return "organizations"
}

func (m *Organization) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.OrganizationCreatedAt.IsZero() {
		m.OrganizationCreatedAt = now
	}
	m.OrganizationUpdatedAt = now
	return nil
}

func (m *Organization) BeforeUpdate(tx *gorm.DB) error {
	m.OrganizationUpdatedAt = time.Now()
	return nil
}
