// file: internals/features/insights/model/activity_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog is the append-only feed behind the dashboard's recent
// activity panel.
type ActivityLog struct {
	ActivityLogID uuid.UUID `gorm:"column:activity_log_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_log_id"`

	ActivityLogOrganizationID uuid.UUID  `gorm:"column:activity_log_organization_id;type:uuid;not null;index" json:"activity_log_organization_id"`
	ActivityLogActorID        *uuid.UUID `gorm:"column:activity_log_actor_id;type:uuid" json:"activity_log_actor_id,omitempty"`

	ActivityLogEntityType string    `gorm:"column:activity_log_entity_type;type:varchar(40);not null;index" json:"activity_log_entity_type"`
	ActivityLogEntityID   string    `gorm:"column:activity_log_entity_id;type:varchar(60);not null" json:"activity_log_entity_id"`
	ActivityLogAction     string    `gorm:"column:activity_log_action;type:varchar(40);not null" json:"activity_log_action"`

	ActivityLogSummary  string         `gorm:"column:activity_log_summary;type:varchar(240);not null" json:"activity_log_summary"`
	ActivityLogMetadata datatypes.JSON `gorm:"column:activity_log_metadata;type:jsonb" json:"activity_log_metadata,omitempty"`

	ActivityLogCreatedAt time.Time `gorm:"column:activity_log_created_at;not null;default:now();index" json:"activity_log_created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

func (m *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if m.ActivityLogCreatedAt.IsZero() {
		m.ActivityLogCreatedAt = time.Now()
	}
	return nil
}
