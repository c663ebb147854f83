// file: internals/features/people/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	StudentOrganizationID uuid.UUID  `gorm:"column:student_organization_id;type:uuid;not null;index" json:"student_organization_id"`
	StudentClubID         *uuid.UUID `gorm:"column:student_club_id;type:uuid;index" json:"student_club_id,omitempty"`

	StudentName        string     `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentGender      *string    `gorm:"column:student_gender;type:varchar(10)" json:"student_gender,omitempty"`
	StudentDateOfBirth *time.Time `gorm:"column:student_date_of_birth;type:date" json:"student_date_of_birth,omitempty"`
	StudentEmail       *string    `gorm:"column:student_email;type:varchar(160)" json:"student_email,omitempty"`
	StudentPhone       *string    `gorm:"column:student_phone;type:varchar(30)" json:"student_phone,omitempty"`

	// address
	StudentAddressLine1 *string `gorm:"column:student_address_line1;type:varchar(160)" json:"student_address_line1,omitempty"`
	StudentAddressLine2 *string `gorm:"column:student_address_line2;type:varchar(160)" json:"student_address_line2,omitempty"`
	StudentCity         *string `gorm:"column:student_city;type:varchar(80)" json:"student_city,omitempty"`
	StudentState        *string `gorm:"column:student_state;type:varchar(80)" json:"student_state,omitempty"`
	StudentPostcode     *string `gorm:"column:student_postcode;type:varchar(20)" json:"student_postcode,omitempty"`
	StudentCountry      *string `gorm:"column:student_country;type:varchar(60)" json:"student_country,omitempty"`

	// aggregate rating
	StudentRatingAvg   float64 `gorm:"column:student_rating_avg;not null;default:0" json:"student_rating_avg"`
	StudentRatingCount int     `gorm:"column:student_rating_count;not null;default:0" json:"student_rating_count"`

	// attachments
	StudentProfileImageURL *string `gorm:"column:student_profile_image_url;type:text" json:"student_profile_image_url,omitempty"`
	StudentProfileImageKey *string `gorm:"column:student_profile_image_key;type:text" json:"-"`
	StudentIDDocumentURL   *string `gorm:"column:student_id_document_url;type:text" json:"student_id_document_url,omitempty"`
	StudentIDDocumentKey   *string `gorm:"column:student_id_document_key;type:text" json:"-"`
	StudentIDDocumentName  *string `gorm:"column:student_id_document_name;type:varchar(160)" json:"student_id_document_name,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now();index" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) error {
	m.StudentUpdatedAt = time.Now()
	return nil
}
