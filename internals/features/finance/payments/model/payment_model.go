// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	bankinfoModel "clubhub_backend/internals/features/finance/bankinfo/model"
)

// =========================================================
// ENUMS
// =========================================================

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusUnpaid     PaymentStatus = "unpaid"
	PaymentStatusSuccessful PaymentStatus = "successful"
	PaymentStatusFailed     PaymentStatus = "failed"
)

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusUnpaid,
		PaymentStatusSuccessful, PaymentStatusFailed:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodStripe PaymentMethod = "stripe"
)

func ValidPaymentMethod(s string) bool {
	switch PaymentMethod(s) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodStripe:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type Payment struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	PaymentOrganizationID uuid.UUID  `gorm:"column:payment_organization_id;type:uuid;not null;index" json:"payment_organization_id"`
	PaymentClubID         *uuid.UUID `gorm:"column:payment_club_id;type:uuid;index" json:"payment_club_id,omitempty"`
	PaymentStudentID      *uuid.UUID `gorm:"column:payment_student_id;type:uuid;index" json:"payment_student_id,omitempty"`
	PaymentStudentFeeID   *int       `gorm:"column:payment_student_fee_id;index" json:"payment_student_fee_id,omitempty"`

	PaymentAmount       float64 `gorm:"column:payment_amount;type:numeric(12,2);not null;check:payment_amount>=0" json:"payment_amount"`
	PaymentCurrencyCode string  `gorm:"column:payment_currency_code;type:varchar(3);not null" json:"payment_currency_code"`

	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index" json:"payment_status"`
	PaymentMethod PaymentMethod `gorm:"column:payment_method;type:varchar(20);not null;default:'cash'" json:"payment_method"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentNotes  *string    `gorm:"column:payment_notes;type:text" json:"payment_notes,omitempty"`

	// attachment (receipt/proof); path is the storage object key
	PaymentAttachmentPath *string `gorm:"column:payment_attachment_path;type:text" json:"payment_attachment_path,omitempty"`
	PaymentAttachmentName *string `gorm:"column:payment_attachment_name;type:varchar(160)" json:"payment_attachment_name,omitempty"`
	PaymentAttachmentType *string `gorm:"column:payment_attachment_type;type:varchar(80)" json:"payment_attachment_type,omitempty"`
	PaymentAttachmentSize *int64  `gorm:"column:payment_attachment_size" json:"payment_attachment_size,omitempty"`

	// selected bank accounts + a snapshot frozen at payment time, so the
	// invoice stays stable if the reference rows change later
	BankInformation         []bankinfoModel.BankInformation `gorm:"many2many:payment_bank_information;foreignKey:PaymentID;joinForeignKey:payment_id;References:BankInformationID;joinReferences:bank_information_id" json:"bank_information,omitempty"`
	PaymentBankInfoSnapshot datatypes.JSON                  `gorm:"column:payment_bank_info_snapshot;type:jsonb" json:"payment_bank_info_snapshot,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;not null;default:now();index" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;not null;default:now()" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

func (m *Payment) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = now
	}
	m.PaymentUpdatedAt = now
	return nil
}

func (m *Payment) BeforeUpdate(tx *gorm.DB) error {
	m.PaymentUpdatedAt = time.Now()
	return nil
}
