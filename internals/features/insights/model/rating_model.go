// file: internals/features/insights/model/rating_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating targets either a student or an instructor; exactly one of the two
// references is set.
type Rating struct {
	RatingID uuid.UUID `gorm:"column:rating_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"rating_id"`

	RatingOrganizationID uuid.UUID  `gorm:"column:rating_organization_id;type:uuid;not null;index" json:"rating_organization_id"`
	RatingStudentID      *uuid.UUID `gorm:"column:rating_student_id;type:uuid;index" json:"rating_student_id,omitempty"`
	RatingInstructorID   *uuid.UUID `gorm:"column:rating_instructor_id;type:uuid;index" json:"rating_instructor_id,omitempty"`

	RatingScore   int     `gorm:"column:rating_score;not null;check:rating_score>=1 AND rating_score<=5" json:"rating_score"`
	RatingComment *string `gorm:"column:rating_comment;type:text" json:"rating_comment,omitempty"`

	RatingCreatedAt time.Time      `gorm:"column:rating_created_at;not null;default:now();index" json:"rating_created_at"`
	RatingDeletedAt gorm.DeletedAt `gorm:"column:rating_deleted_at;index" json:"-"`
}

func (Rating) TableName() string {
	return "ratings"
}

func (m *Rating) BeforeCreate(tx *gorm.DB) error {
	if m.RatingCreatedAt.IsZero() {
		m.RatingCreatedAt = time.Now()
	}
	return nil
}
