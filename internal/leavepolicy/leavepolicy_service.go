package leavepolicy

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"go-attendance/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errGroupNotFound = apperror.New(apperror.CodeNotFound, "leave group not found", http.StatusNotFound)

//go:generate mockgen -source=leavepolicy_service.go -destination=mock/leavepolicy_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateGroupRequest) (GroupResponse, error)
	GetAll(ctx context.Context, companyID string) ([]GroupResponse, error)
	GetByID(ctx context.Context, companyID, id string) (GroupResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateGroupRequest) (GroupResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	SetMembers(ctx context.Context, companyID, id string, req SetMembersRequest) (GroupResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavepolicy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavepolicy.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateGroupRequest) (GroupResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return GroupResponse{}, apperror.InvalidField("company id")
	}

	g := &Group{
		ID:               uuid.New(),
		CompanyID:        companyUUID,
		Name:             req.Name,
		MonthlyAllowance: req.MonthlyAllowance,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GroupResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, g); err != nil {
		return GroupResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return GroupResponse{}, err
	}

	s.logger.Info("leave group created", zap.String("group_id", g.ID.String()))
	return mapToResponse(*g), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]GroupResponse, error) {
	groups, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]GroupResponse, len(groups))
	for i, g := range groups {
		resp[i] = mapToResponse(g)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (GroupResponse, error) {
	g, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GroupResponse{}, errGroupNotFound
		}
		return GroupResponse{}, err
	}
	return mapToResponse(*g), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateGroupRequest) (GroupResponse, error) {
	g, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GroupResponse{}, errGroupNotFound
		}
		return GroupResponse{}, err
	}

	g.Name = req.Name
	g.MonthlyAllowance = req.MonthlyAllowance

	if err := s.repo.Update(ctx, g); err != nil {
		return GroupResponse{}, err
	}
	return mapToResponse(*g), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) SetMembers(ctx context.Context, companyID, id string, req SetMembersRequest) (GroupResponse, error) {
	g, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GroupResponse{}, errGroupNotFound
		}
		return GroupResponse{}, err
	}

	employeeIDs := make([]uuid.UUID, 0, len(req.EmployeeIDs))
	for _, raw := range req.EmployeeIDs {
		eid, err := uuid.Parse(raw)
		if err != nil {
			return GroupResponse{}, apperror.InvalidField("employee id")
		}
		employeeIDs = append(employeeIDs, eid)
	}

	if err := s.repo.ReplaceMembers(ctx, g.ID, employeeIDs); err != nil {
		return GroupResponse{}, err
	}

	updated, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return GroupResponse{}, err
	}
	return mapToResponse(*updated), nil
}

func mapToResponse(g Group) GroupResponse {
	memberIDs := make([]string, len(g.Members))
	for i, m := range g.Members {
		memberIDs[i] = m.EmployeeID.String()
	}
	return GroupResponse{
		ID:               g.ID.String(),
		CompanyID:        g.CompanyID.String(),
		Name:             g.Name,
		MonthlyAllowance: g.MonthlyAllowance,
		EmployeeIDs:      memberIDs,
	}
}
