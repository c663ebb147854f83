// file: internals/features/people/instructors/model/instructor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type InstructorStatus string

const (
	InstructorStatusActive   InstructorStatus = "active"
	InstructorStatusInactive InstructorStatus = "inactive"
)

type Instructor struct {
	InstructorID uuid.UUID `gorm:"column:instructor_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"instructor_id"`

	InstructorOrganizationID uuid.UUID  `gorm:"column:instructor_organization_id;type:uuid;not null;index" json:"instructor_organization_id"`
	InstructorClubID         *uuid.UUID `gorm:"column:instructor_club_id;type:uuid;index" json:"instructor_club_id,omitempty"`

	InstructorName        string     `gorm:"column:instructor_name;type:varchar(120);not null" json:"instructor_name"`
	InstructorGender      *string    `gorm:"column:instructor_gender;type:varchar(10)" json:"instructor_gender,omitempty"`
	InstructorDateOfBirth *time.Time `gorm:"column:instructor_date_of_birth;type:date" json:"instructor_date_of_birth,omitempty"`

	InstructorEmail *string `gorm:"column:instructor_email;type:varchar(160)" json:"instructor_email,omitempty"`
	InstructorPhone *string `gorm:"column:instructor_phone;type:varchar(30)" json:"instructor_phone,omitempty"`

	InstructorStatus InstructorStatus `gorm:"column:instructor_status;type:varchar(20);not null;default:'active';index" json:"instructor_status"`

	// disciplines the instructor teaches, e.g. {karate,judo}
	InstructorSpecialties pq.StringArray `gorm:"column:instructor_specialties;type:text[]" json:"instructor_specialties,omitempty"`

	// aggregate rating, recomputed when a rating lands
	InstructorRatingAvg   float64 `gorm:"column:instructor_rating_avg;not null;default:0" json:"instructor_rating_avg"`
	InstructorRatingCount int     `gorm:"column:instructor_rating_count;not null;default:0" json:"instructor_rating_count"`

	InstructorProfileImageURL *string `gorm:"column:instructor_profile_image_url;type:text" json:"instructor_profile_image_url,omitempty"`
	InstructorProfileImageKey *string `gorm:"column:instructor_profile_image_key;type:text" json:"-"`

	InstructorCreatedAt time.Time      `gorm:"column:instructor_created_at;not null;default:now();index" json:"instructor_created_at"`
	InstructorUpdatedAt time.Time      `gorm:"column:instructor_updated_at;not null;default:now()" json:"instructor_updated_at"`
	InstructorDeletedAt gorm.DeletedAt `gorm:"column:instructor_deleted_at;index" json:"-"`
}

func (Instructor) TableName() string {
	return "instructors"
}

func (m *Instructor) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.InstructorCreatedAt.IsZero() {
		m.InstructorCreatedAt = now
	}
	m.InstructorUpdatedAt = now
	return nil
}

func (m *Instructor) BeforeUpdate(tx *gorm.DB) error {
	m.InstructorUpdatedAt = time.Now()
	return nil
}
