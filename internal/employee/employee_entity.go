package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee is one roster entry. Code is the external biometric/device
// code and is unique within a company. BasicSalary is the fixed monthly
// amount payroll derives from; the advance balance lives in the ledger
// package and is never touched by report computation.
type Employee struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID   uuid.UUID       `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_employee_company_code,priority:1"`
	Code        string          `gorm:"column:code;type:varchar(50);not null;uniqueIndex:uq_employee_company_code,priority:2"`
	FullName    string          `gorm:"column:full_name;type:varchar(150);not null"`
	Department  string          `gorm:"column:department;type:varchar(100)"`
	BasicSalary decimal.Decimal `gorm:"column:basic_salary;type:numeric(14,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}
