package leaverecord

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leaverecord_repo.go -destination=mock/leaverecord_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *LeaveRecord) error
	FindAllByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]LeaveRecord, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRecord, error)
	Delete(ctx context.Context, companyID, id string) error
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

func (r *repository) Create(ctx context.Context, rec *LeaveRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindAllByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]LeaveRecord, error) {
	var records []LeaveRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("leave_date >= ? AND leave_date <= ?", from, to).
		Order("leave_date ASC, employee_id ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRecord, error) {
	var rec LeaveRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&rec, "id = ?", id).Error
	return &rec, err
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&LeaveRecord{}, "id = ?", id).Error
}
