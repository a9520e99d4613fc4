package weekoff

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Group assigns a recurring set of weekly off days (0=Sunday..6=Saturday)
// to its member employees. An employee may belong to several groups; the
// effective off-day set is the union across all of them.
type Group struct {
	ID        uuid.UUID                `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID uuid.UUID                `gorm:"column:company_id;type:uuid;not null;index"`
	Name      string                   `gorm:"column:name;type:varchar(100);not null"`
	Days      datatypes.JSONSlice[int] `gorm:"column:days;type:jsonb;not null"`
	CreatedAt time.Time                `gorm:"column:created_at"`
	UpdatedAt time.Time                `gorm:"column:updated_at"`

	Members []Member `gorm:"foreignKey:GroupID"`
}

func (Group) TableName() string {
	return "week_off_groups"
}

type Member struct {
	GroupID    uuid.UUID `gorm:"column:group_id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey;index"`
}

func (Member) TableName() string {
	return "week_off_group_members"
}
