package shift

import (
	"time"

	"github.com/google/uuid"
)

// Group holds working hours as minutes since midnight. EndMinute lower
// than StartMinute means the shift crosses midnight; lateness only looks
// at the start, so the engine never needs to disambiguate the end's day.
type Group struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	Name        string    `gorm:"column:name;type:varchar(100);not null"`
	StartMinute int       `gorm:"column:start_minute;not null"`
	EndMinute   int       `gorm:"column:end_minute;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	Members []Member `gorm:"foreignKey:GroupID"`
}

func (Group) TableName() string {
	return "shift_groups"
}

type Member struct {
	GroupID    uuid.UUID `gorm:"column:group_id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey;index"`
}

func (Member) TableName() string {
	return "shift_group_members"
}

// Rotation overrides an employee's base shift assignment for an inclusive
// date range.
type Rotation struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`
	ShiftGroupID uuid.UUID `gorm:"column:shift_group_id;type:uuid;not null"`
	StartDate    time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate      time.Time `gorm:"column:end_date;type:date;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Rotation) TableName() string {
	return "shift_rotations"
}
