package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TxTypeCredit = "CREDIT"
	TxTypeDeduct = "DEDUCT"
)

// AdvanceAccount is the per-employee advance balance. It is mutated
// only by the ledger operations, never by report computation, and never
// goes below zero.
type AdvanceAccount struct {
	EmployeeID uuid.UUID       `gorm:"column:employee_id;type:uuid;primaryKey"`
	CompanyID  uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	Balance    decimal.Decimal `gorm:"column:balance;type:numeric(14,2);not null;default:0"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (AdvanceAccount) TableName() string {
	return "advance_accounts"
}

// AdvanceTransaction is the append-only audit trail. AppliedAmount can
// be lower than RequestedAmount on a deduction that hit the zero floor.
type AdvanceTransaction struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID       uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID      uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;index"`
	TxType          string          `gorm:"column:tx_type;type:varchar(16);not null"`
	RequestedAmount decimal.Decimal `gorm:"column:requested_amount;type:numeric(14,2);not null"`
	AppliedAmount   decimal.Decimal `gorm:"column:applied_amount;type:numeric(14,2);not null"`
	BalanceAfter    decimal.Decimal `gorm:"column:balance_after;type:numeric(14,2);not null"`
	CreatedBy       uuid.UUID       `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
}

func (AdvanceTransaction) TableName() string {
	return "advance_transactions"
}
