package ledger

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ledger_repo.go -destination=mock/ledger_repo_mock.go -package=mock

// Repository mutates the advance ledger with single-statement atomic
// SQL, so two racing requests for the same employee can never lose an
// update. All mutations are expected to run inside a caller-owned
// transaction together with the audit row and the outbox event.
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Credit(ctx context.Context, companyID, employeeID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	Deduct(ctx context.Context, employeeID uuid.UUID, amount decimal.Decimal) (applied, newBalance decimal.Decimal, err error)
	GetBalance(ctx context.Context, companyID, employeeID uuid.UUID) (decimal.Decimal, error)
	RecordTransaction(ctx context.Context, txn *AdvanceTransaction) error
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Credit upserts the account and adds the amount in one statement.
func (r *repository) Credit(ctx context.Context, companyID, employeeID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
        INSERT INTO advance_accounts (employee_id, company_id, balance, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        ON CONFLICT (employee_id)
        DO UPDATE SET
            balance = advance_accounts.balance + EXCLUDED.balance,
            updated_at = NOW()
        RETURNING balance
    `

	var balance decimal.Decimal
	err := r.querier().QueryRowContext(ctx, query, employeeID, companyID, amount).Scan(&balance)
	return balance, err
}

// Deduct removes min(amount, balance) and reports both the applied
// amount and the resulting balance. A missing account deducts nothing.
func (r *repository) Deduct(ctx context.Context, employeeID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	query := `
        WITH locked AS (
            SELECT employee_id, LEAST(balance, $2::numeric) AS amt
            FROM advance_accounts
            WHERE employee_id = $1
            FOR UPDATE
        )
        UPDATE advance_accounts a
        SET balance = a.balance - locked.amt,
            updated_at = NOW()
        FROM locked
        WHERE a.employee_id = locked.employee_id
        RETURNING locked.amt, a.balance
    `

	var applied, balance decimal.Decimal
	err := r.querier().QueryRowContext(ctx, query, employeeID, amount).Scan(&applied, &balance)
	if err == sql.ErrNoRows {
		return decimal.Zero, decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return applied, balance, nil
}

func (r *repository) GetBalance(ctx context.Context, companyID, employeeID uuid.UUID) (decimal.Decimal, error) {
	query := `
        SELECT balance FROM advance_accounts
        WHERE employee_id = $1 AND company_id = $2
    `

	var balance decimal.Decimal
	err := r.querier().QueryRowContext(ctx, query, employeeID, companyID).Scan(&balance)
	return balance, err
}

func (r *repository) RecordTransaction(ctx context.Context, txn *AdvanceTransaction) error {
	query := `
        INSERT INTO advance_transactions (
            id, company_id, employee_id, tx_type,
            requested_amount, applied_amount, balance_after, created_by, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

	_, err := r.querier().ExecContext(
		ctx, query,
		txn.ID, txn.CompanyID, txn.EmployeeID, txn.TxType,
		txn.RequestedAmount, txn.AppliedAmount, txn.BalanceAfter, txn.CreatedBy, time.Now().UTC(),
	)
	return err
}

func (r *repository) querier() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}
