package leavepolicy

import (
	"time"

	"github.com/google/uuid"
)

// Group carries the monthly leave allowance policy. The allowance is
// informational for consumers; the reconciliation engine does not enforce
// it.
type Group struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID        uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	Name             string    `gorm:"column:name;type:varchar(100);not null"`
	MonthlyAllowance int       `gorm:"column:monthly_allowance;not null;default:0"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`

	Members []Member `gorm:"foreignKey:GroupID"`
}

func (Group) TableName() string {
	return "leave_groups"
}

type Member struct {
	GroupID    uuid.UUID `gorm:"column:group_id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey;index"`
}

func (Member) TableName() string {
	return "leave_group_members"
}
