// file: internals/features/insights/model/certification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Certification struct {
	CertificationID uuid.UUID `gorm:"column:certification_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"certification_id"`

	CertificationOrganizationID uuid.UUID `gorm:"column:certification_organization_id;type:uuid;not null;index" json:"certification_organization_id"`
	CertificationStudentID      uuid.UUID `gorm:"column:certification_student_id;type:uuid;not null;index" json:"certification_student_id"`

	CertificationName  string  `gorm:"column:certification_name;type:varchar(160);not null" json:"certification_name"`
	CertificationLevel *string `gorm:"column:certification_level;type:varchar(60)" json:"certification_level,omitempty"`

	CertificationAwardedAt time.Time  `gorm:"column:certification_awarded_at;type:date;not null;index" json:"certification_awarded_at"`
	CertificationExpiresAt *time.Time `gorm:"column:certification_expires_at;type:date" json:"certification_expires_at,omitempty"`

	CertificationCreatedAt time.Time      `gorm:"column:certification_created_at;not null;default:now()" json:"certification_created_at"`
	CertificationDeletedAt gorm.DeletedAt `gorm:"column:certification_deleted_at;index" json:"-"`
}

func (Certification) TableName() string {
	return "certifications"
}

func (m *Certification) BeforeCreate(tx *gorm.DB) error {
	if m.CertificationCreatedAt.IsZero() {
		m.CertificationCreatedAt = time.Now()
	}
	return nil
}
