package punch

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=punch_repo.go -destination=mock/punch_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, p *ProcessedPunch) error
	FindAllByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]ProcessedPunch, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Upsert replaces any earlier reduction for the same employee and
// date, so re-importing a corrected scan file is safe.
func (r *repository) Upsert(ctx context.Context, p *ProcessedPunch) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "company_id"},
				{Name: "employee_id"},
				{Name: "punch_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"punch_in", "punch_out", "status", "updated_at"}),
		}).
		Create(p).Error
}

func (r *repository) FindAllByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]ProcessedPunch, error) {
	var punches []ProcessedPunch
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("punch_date >= ? AND punch_date <= ?", from, to).
		Order("punch_date ASC, employee_id ASC").
		Find(&punches).Error
	return punches, err
}
