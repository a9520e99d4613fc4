package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Group is a holiday calendar: a named set of dated entries shared by its
// member employees. Membership across several groups is additive.
type Group struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Entries []Entry  `gorm:"foreignKey:GroupID"`
	Members []Member `gorm:"foreignKey:GroupID"`
}

func (Group) TableName() string {
	return "holiday_groups"
}

type Entry struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	GroupID     uuid.UUID `gorm:"column:group_id;type:uuid;not null;index"`
	HolidayDate time.Time `gorm:"column:holiday_date;type:date;not null"`
	Label       string    `gorm:"column:label;type:varchar(150)"`
}

func (Entry) TableName() string {
	return "holiday_group_entries"
}

type Member struct {
	GroupID    uuid.UUID `gorm:"column:group_id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey;index"`
}

func (Member) TableName() string {
	return "holiday_group_members"
}
