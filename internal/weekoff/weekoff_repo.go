package weekoff

import (
	"context"
	"database/sql"

	"go-attendance/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=weekoff_repo.go -destination=mock/weekoff_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, g *Group) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Group, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Group, error)
	Update(ctx context.Context, g *Group) error
	Delete(ctx context.Context, companyID, id string) error
	ReplaceMembers(ctx context.Context, groupID string, employeeIDs []string) error
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

func (r *repository) Create(ctx context.Context, g *Group) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Group, error) {
	var groups []Group
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Members").
		Order("name ASC").
		Find(&groups).Error
	return groups, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Group, error) {
	var g Group
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Members").
		First(&g, "id = ?", id).Error
	return &g, err
}

func (r *repository) Update(ctx context.Context, g *Group) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Group{}, "id = ?", id).Error
}

func (r *repository) ReplaceMembers(ctx context.Context, groupID string, employeeIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", groupID).Delete(&Member{}).Error; err != nil {
			return err
		}
		if len(employeeIDs) == 0 {
			return nil
		}
		members := make([]Member, 0, len(employeeIDs))
		for _, id := range employeeIDs {
			m, err := newMember(groupID, id)
			if err != nil {
				return err
			}
			members = append(members, m)
		}
		return tx.Create(&members).Error
	})
}
