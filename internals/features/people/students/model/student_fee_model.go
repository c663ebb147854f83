// file: internals/features/people/students/model/student_fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentFee is one student's plan assignment. The serial key is what the
// payment contract references as student_fee_id.
type StudentFee struct {
	StudentFeeID int `gorm:"column:student_fee_id;primaryKey;autoIncrement" json:"student_fee_id"`

	StudentFeeStudentID uuid.UUID `gorm:"column:student_fee_student_id;type:uuid;not null;index" json:"student_fee_student_id"`
	StudentFeeFeePlanID uuid.UUID `gorm:"column:student_fee_fee_plan_id;type:uuid;not null;index" json:"student_fee_fee_plan_id"`

	StudentFeeInterval        string  `gorm:"column:student_fee_interval;type:varchar(20);not null;default:'monthly'" json:"student_fee_interval"`
	StudentFeeDiscountPercent float64 `gorm:"column:student_fee_discount_percent;type:numeric(5,2);not null;default:0;check:student_fee_discount_percent>=0 AND student_fee_discount_percent<=100" json:"student_fee_discount_percent"`

	// plan amount after discount; denormalized so payment drafts can copy it
	// without a join
	StudentFeeEffectiveAmount float64 `gorm:"column:student_fee_effective_amount;type:numeric(12,2);not null" json:"student_fee_effective_amount"`
	StudentFeeCurrencyCode    string  `gorm:"column:student_fee_currency_code;type:varchar(3);not null" json:"student_fee_currency_code"`

	StudentFeeCreatedAt time.Time      `gorm:"column:student_fee_created_at;not null;default:now()" json:"student_fee_created_at"`
	StudentFeeUpdatedAt time.Time      `gorm:"column:student_fee_updated_at;not null;default:now()" json:"student_fee_updated_at"`
	StudentFeeDeletedAt gorm.DeletedAt `gorm:"column:student_fee_deleted_at;index" json:"-"`
}

func (StudentFee) TableName() string {
	return "student_fees"
}

func (m *StudentFee) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentFeeCreatedAt.IsZero() {
		m.StudentFeeCreatedAt = now
	}
	m.StudentFeeUpdatedAt = now
	return nil
}

func (m *StudentFee) BeforeUpdate(tx *gorm.DB) error {
	m.StudentFeeUpdatedAt = time.Now()
	return nil
}
