// file: internals/features/finance/feeplans/model/fee_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeePlanInterval string

const (
	FeePlanIntervalWeekly    FeePlanInterval = "weekly"
	FeePlanIntervalMonthly   FeePlanInterval = "monthly"
	FeePlanIntervalQuarterly FeePlanInterval = "quarterly"
	FeePlanIntervalYearly    FeePlanInterval = "yearly"
)

type FeePlan struct {
	FeePlanID uuid.UUID `gorm:"column:fee_plan_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_plan_id"`

	FeePlanOrganizationID uuid.UUID `gorm:"column:fee_plan_organization_id;type:uuid;not null;index" json:"fee_plan_organization_id"`

	FeePlanName         string          `gorm:"column:fee_plan_name;type:varchar(120);not null" json:"fee_plan_name"`
	FeePlanAmount       float64         `gorm:"column:fee_plan_amount;type:numeric(12,2);not null;check:fee_plan_amount>=0" json:"fee_plan_amount"`
	FeePlanCurrencyCode string          `gorm:"column:fee_plan_currency_code;type:varchar(3);not null" json:"fee_plan_currency_code"`
	FeePlanInterval     FeePlanInterval `gorm:"column:fee_plan_interval;type:varchar(20);not null;default:'monthly'" json:"fee_plan_interval"`

	FeePlanCreatedAt time.Time      `gorm:"column:fee_plan_created_at;not null;default:now()" json:"fee_plan_created_at"`
	FeePlanUpdatedAt time.Time      `gorm:"column:fee_plan_updated_at;not null;default:now()" json:"fee_plan_updated_at"`
	FeePlanDeletedAt gorm.DeletedAt `gorm:"column:fee_plan_deleted_at;index" json:"-"`
}

func (FeePlan) TableName() string {
	return "fee_plans"
}

func (m *FeePlan) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeePlanCreatedAt.IsZero() {
		m.FeePlanCreatedAt = now
	}
	m.FeePlanUpdatedAt = now
	return nil
}

func (m *FeePlan) BeforeUpdate(tx *gorm.DB) error {
	m.FeePlanUpdatedAt = time.Now()
	return nil
}
