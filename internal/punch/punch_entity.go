package punch

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent        = "PRESENT"
	StatusMissedPunchOut = "MISSED_PUNCH_OUT"
)

// ProcessedPunch is the per-employee, per-date result of reducing a
// day's raw device scans. PunchOut is nil when the day only produced a
// single distinct scan.
type ProcessedPunch struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID  uuid.UUID  `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_processed_punch_employee_date,priority:1"`
	EmployeeID uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_processed_punch_employee_date,priority:2"`
	PunchDate  time.Time  `gorm:"column:punch_date;type:date;not null;uniqueIndex:uq_processed_punch_employee_date,priority:3"`
	PunchIn    time.Time  `gorm:"column:punch_in;not null"`
	PunchOut   *time.Time `gorm:"column:punch_out"`
	Status     string     `gorm:"column:status;type:varchar(32);not null"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (ProcessedPunch) TableName() string {
	return "processed_punches"
}
