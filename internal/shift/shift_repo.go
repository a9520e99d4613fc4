package shift

import (
	"context"
	"database/sql"

	"go-attendance/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateGroup(ctx context.Context, g *Group) error
	FindAllGroupsByCompany(ctx context.Context, companyID string) ([]Group, error)
	FindGroupByIDAndCompany(ctx context.Context, companyID, id string) (*Group, error)
	UpdateGroup(ctx context.Context, g *Group) error
	DeleteGroup(ctx context.Context, companyID, id string) error
	ReplaceMembers(ctx context.Context, groupID uuid.UUID, employeeIDs []uuid.UUID) error

	CreateRotation(ctx context.Context, rot *Rotation) error
	FindAllRotationsByCompany(ctx context.Context, companyID string) ([]Rotation, error)
	DeleteRotation(ctx context.Context, companyID, id string) error
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

func (r *repository) CreateGroup(ctx context.Context, g *Group) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) FindAllGroupsByCompany(ctx context.Context, companyID string) ([]Group, error) {
	var groups []Group
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Members").
		Order("name ASC").
		Find(&groups).Error
	return groups, err
}

func (r *repository) FindGroupByIDAndCompany(ctx context.Context, companyID, id string) (*Group, error) {
	var g Group
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Members").
		First(&g, "id = ?", id).Error
	return &g, err
}

func (r *repository) UpdateGroup(ctx context.Context, g *Group) error {
	return r.db.WithContext(ctx).Omit("Members").Save(g).Error
}

func (r *repository) DeleteGroup(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Group{}, "id = ?", id).Error
}

func (r *repository) ReplaceMembers(ctx context.Context, groupID uuid.UUID, employeeIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", groupID).Delete(&Member{}).Error; err != nil {
			return err
		}
		if len(employeeIDs) == 0 {
			return nil
		}
		members := make([]Member, len(employeeIDs))
		for i, eid := range employeeIDs {
			members[i] = Member{GroupID: groupID, EmployeeID: eid}
		}
		return tx.Create(&members).Error
	})
}

func (r *repository) CreateRotation(ctx context.Context, rot *Rotation) error {
	return r.db.WithContext(ctx).Create(rot).Error
}

func (r *repository) FindAllRotationsByCompany(ctx context.Context, companyID string) ([]Rotation, error) {
	var rotations []Rotation
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("start_date ASC").
		Find(&rotations).Error
	return rotations, err
}

func (r *repository) DeleteRotation(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Rotation{}, "id = ?", id).Error
}
