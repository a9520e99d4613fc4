package leaverecord

import (
	"time"

	"github.com/google/uuid"
)

// LeaveRecord marks one employee as on leave for one date. The optional
// substitute is the colleague covering the shift; it is a lookup
// reference only and credits that colleague a double-duty day in the
// monthly report.
type LeaveRecord struct {
	ID                   uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID            uuid.UUID  `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_leave_record_employee_date,priority:1"`
	EmployeeID           uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_leave_record_employee_date,priority:2"`
	LeaveDate            time.Time  `gorm:"column:leave_date;type:date;not null;uniqueIndex:uq_leave_record_employee_date,priority:3"`
	Reason               *string    `gorm:"column:reason;type:text"`
	SubstituteEmployeeID *uuid.UUID `gorm:"column:substitute_employee_id;type:uuid"`
	CreatedBy            uuid.UUID  `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt            time.Time  `gorm:"column:created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at"`
}

func (LeaveRecord) TableName() string {
	return "leave_records"
}
