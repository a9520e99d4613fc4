package weekoff

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"go-attendance/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var errGroupNotFound = apperror.New(apperror.CodeNotFound, "week-off group not found", http.StatusNotFound)

//go:generate mockgen -source=weekoff_service.go -destination=mock/weekoff_service_mock.go -package=mock
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
	l := zap.L().Named("weekoff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("weekoff.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateGroupRequest) (GroupResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GroupResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return GroupResponse{}, apperror.InvalidField("company id")
	}

	g := &Group{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      req.Name,
		Days:      datatypes.NewJSONSlice(dedupDays(req.Days)),
	}

	if err := qtx.Create(ctx, g); err != nil {
		return GroupResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return GroupResponse{}, err
	}

	s.logger.Info("week-off group created", zap.String("group_id", g.ID.String()))
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
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GroupResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	g, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GroupResponse{}, errGroupNotFound
		}
		return GroupResponse{}, err
	}

	g.Name = req.Name
	g.Days = datatypes.NewJSONSlice(dedupDays(req.Days))

	if err := qtx.Update(ctx, g); err != nil {
		return GroupResponse{}, err
	}
	if err := tx.Commit(); err != nil {
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

	if err := s.repo.ReplaceMembers(ctx, g.ID.String(), req.EmployeeIDs); err != nil {
		return GroupResponse{}, err
	}

	updated, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return GroupResponse{}, err
	}
	return mapToResponse(*updated), nil
}

func newMember(groupID, employeeID string) (Member, error) {
	gid, err := uuid.Parse(groupID)
	if err != nil {
		return Member{}, apperror.InvalidField("group id")
	}
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return Member{}, apperror.InvalidField("employee id")
	}
	return Member{GroupID: gid, EmployeeID: eid}, nil
}

func dedupDays(days []int) []int {
	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

func mapToResponse(g Group) GroupResponse {
	memberIDs := make([]string, len(g.Members))
	for i, m := range g.Members {
		memberIDs[i] = m.EmployeeID.String()
	}
	return GroupResponse{
		ID:          g.ID.String(),
		CompanyID:   g.CompanyID.String(),
		Name:        g.Name,
		Days:        g.Days,
		EmployeeIDs: memberIDs,
	}
}
