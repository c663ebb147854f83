// file: internals/features/insights/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

func ValidAttendanceStatus(s string) bool {
	switch AttendanceStatus(s) {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

type AttendanceRecord struct {
	AttendanceRecordID uuid.UUID `gorm:"column:attendance_record_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_record_id"`

	AttendanceRecordOrganizationID uuid.UUID  `gorm:"column:attendance_record_organization_id;type:uuid;not null;index" json:"attendance_record_organization_id"`
	AttendanceRecordStudentID      uuid.UUID  `gorm:"column:attendance_record_student_id;type:uuid;not null;index" json:"attendance_record_student_id"`
	AttendanceRecordEventID        *uuid.UUID `gorm:"column:attendance_record_event_id;type:uuid;index" json:"attendance_record_event_id,omitempty"`

	AttendanceRecordStatus AttendanceStatus `gorm:"column:attendance_record_status;type:varchar(10);not null;default:'present'" json:"attendance_record_status"`
	AttendanceRecordDate   time.Time        `gorm:"column:attendance_record_date;type:date;not null;index" json:"attendance_record_date"`
	AttendanceRecordNotes  *string          `gorm:"column:attendance_record_notes;type:text" json:"attendance_record_notes,omitempty"`

	AttendanceRecordCreatedAt time.Time      `gorm:"column:attendance_record_created_at;not null;default:now()" json:"attendance_record_created_at"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;index" json:"-"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

func (m *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordCreatedAt.IsZero() {
		m.AttendanceRecordCreatedAt = time.Now()
	}
	return nil
}
