// file: internals/features/finance/bankinfo/model/bank_information_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BankInformation keeps the serial integer key the payment contract expects
// (bank_information[] is an array of integers on the wire).
type BankInformation struct {
	BankInformationID int `gorm:"column:bank_information_id;primaryKey;autoIncrement" json:"bank_information_id"`

	BankInformationOrganizationID uuid.UUID `gorm:"column:bank_information_organization_id;type:uuid;not null;index" json:"bank_information_organization_id"`

	BankInformationLabel         string `gorm:"column:bank_information_label;type:varchar(120);not null" json:"bank_information_label"`
	BankInformationBankName      string `gorm:"column:bank_information_bank_name;type:varchar(120);not null" json:"bank_information_bank_name"`
	BankInformationAccountName   string `gorm:"column:bank_information_account_name;type:varchar(120);not null" json:"bank_information_account_name"`
	BankInformationAccountNumber string `gorm:"column:bank_information_account_number;type:varchar(40);not null" json:"bank_information_account_number"`

	BankInformationCreatedAt time.Time      `gorm:"column:bank_information_created_at;not null;default:now()" json:"bank_information_created_at"`
	BankInformationUpdatedAt time.Time      `gorm:"column:bank_information_updated_at;not null;default:now()" json:"bank_information_updated_at"`
	BankInformationDeletedAt gorm.DeletedAt `gorm:"column:bank_information_deleted_at;index" json:"-"`
}

func (BankInformation) TableName() string {
	return "bank_information"
}

func (m *BankInformation) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.BankInformationCreatedAt.IsZero() {
		m.BankInformationCreatedAt = now
	}
	m.BankInformationUpdatedAt = now
	return nil
}

func (m *BankInformation) BeforeUpdate(tx *gorm.DB) error {
	m.BankInformationUpdatedAt = time.Now()
	return nil
}
