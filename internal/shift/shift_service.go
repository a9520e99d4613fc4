package shift

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"go-attendance/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	errGroupNotFound = apperror.New(apperror.CodeNotFound, "shift group not found", http.StatusNotFound)
	errBadDate       = apperror.New(apperror.CodeInvalidInput, "invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
	errBadDateRange  = apperror.New(apperror.CodeInvalidInput, "start_date must be before or equal end_date", http.StatusBadRequest)
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	CreateGroup(ctx context.Context, companyID string, req CreateGroupRequest) (GroupResponse, error)
	GetAllGroups(ctx context.Context, companyID string) ([]GroupResponse, error)
	GetGroupByID(ctx context.Context, companyID, id string) (GroupResponse, error)
	UpdateGroup(ctx context.Context, companyID, id string, req UpdateGroupRequest) (GroupResponse, error)
	DeleteGroup(ctx context.Context, companyID, id string) error
	SetMembers(ctx context.Context, companyID, id string, req SetMembersRequest) (GroupResponse, error)

	CreateRotation(ctx context.Context, companyID string, req CreateRotationRequest) (RotationResponse, error)
	GetAllRotations(ctx context.Context, companyID string) ([]RotationResponse, error)
	DeleteRotation(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CreateGroup(ctx context.Context, companyID string, req CreateGroupRequest) (GroupResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return GroupResponse{}, apperror.InvalidField("company id")
	}

	start, err := ParseMinute(req.StartTime)
	if err != nil {
		return GroupResponse{}, err
	}
	end, err := ParseMinute(req.EndTime)
	if err != nil {
		return GroupResponse{}, err
	}

	g := &Group{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Name:        req.Name,
		StartMinute: start,
		EndMinute:   end,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GroupResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateGroup(ctx, g); err != nil {
		return GroupResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return GroupResponse{}, err
	}

	s.logger.Info("shift group created", zap.String("group_id", g.ID.String()))
	return mapGroupToResponse(*g), nil
}

func (s *service) GetAllGroups(ctx context.Context, companyID string) ([]GroupResponse, error) {
	groups, err := s.repo.FindAllGroupsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]GroupResponse, len(groups))
	for i, g := range groups {
		resp[i] = mapGroupToResponse(g)
	}
	return resp, nil
}

func (s *service) GetGroupByID(ctx context.Context, companyID, id string) (GroupResponse, error) {
	g, err := s.repo.FindGroupByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GroupResponse{}, errGroupNotFound
		}
		return GroupResponse{}, err
	}
	return mapGroupToResponse(*g), nil
}

func (s *service) UpdateGroup(ctx context.Context, companyID, id string, req UpdateGroupRequest) (GroupResponse, error) {
	g, err := s.repo.FindGroupByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GroupResponse{}, errGroupNotFound
		}
		return GroupResponse{}, err
	}

	start, err := ParseMinute(req.StartTime)
	if err != nil {
		return GroupResponse{}, err
	}
	end, err := ParseMinute(req.EndTime)
	if err != nil {
		return GroupResponse{}, err
	}

	g.Name = req.Name
	g.StartMinute = start
	g.EndMinute = end

	if err := s.repo.UpdateGroup(ctx, g); err != nil {
		return GroupResponse{}, err
	}
	return mapGroupToResponse(*g), nil
}

func (s *service) DeleteGroup(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).DeleteGroup(ctx, companyID, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) SetMembers(ctx context.Context, companyID, id string, req SetMembersRequest) (GroupResponse, error) {
	g, err := s.repo.FindGroupByIDAndCompany(ctx, companyID, id)
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

	updated, err := s.repo.FindGroupByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return GroupResponse{}, err
	}
	return mapGroupToResponse(*updated), nil
}

func (s *service) CreateRotation(ctx context.Context, companyID string, req CreateRotationRequest) (RotationResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RotationResponse{}, apperror.InvalidField("company id")
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return RotationResponse{}, apperror.InvalidField("employee id")
	}
	shiftGroupUUID, err := uuid.Parse(req.ShiftGroupID)
	if err != nil {
		return RotationResponse{}, apperror.InvalidField("shift group id")
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return RotationResponse{}, errBadDate
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return RotationResponse{}, errBadDate
	}
	if startDate.After(endDate) {
		return RotationResponse{}, errBadDateRange
	}

	// Referenced shift group must exist in the same company.
	if _, err := s.repo.FindGroupByIDAndCompany(ctx, companyID, req.ShiftGroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RotationResponse{}, errGroupNotFound
		}
		return RotationResponse{}, err
	}

	rot := &Rotation{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		EmployeeID:   employeeUUID,
		ShiftGroupID: shiftGroupUUID,
		StartDate:    startDate,
		EndDate:      endDate,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RotationResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateRotation(ctx, rot); err != nil {
		return RotationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RotationResponse{}, err
	}

	s.logger.Info("shift rotation created",
		zap.String("rotation_id", rot.ID.String()),
		zap.String("employee_id", rot.EmployeeID.String()),
	)
	return mapRotationToResponse(*rot), nil
}

func (s *service) GetAllRotations(ctx context.Context, companyID string) ([]RotationResponse, error) {
	rotations, err := s.repo.FindAllRotationsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]RotationResponse, len(rotations))
	for i, rot := range rotations {
		resp[i] = mapRotationToResponse(rot)
	}
	return resp, nil
}

func (s *service) DeleteRotation(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).DeleteRotation(ctx, companyID, id); err != nil {
		return err
	}
	return tx.Commit()
}

func mapGroupToResponse(g Group) GroupResponse {
	memberIDs := make([]string, len(g.Members))
	for i, m := range g.Members {
		memberIDs[i] = m.EmployeeID.String()
	}
	return GroupResponse{
		ID:          g.ID.String(),
		CompanyID:   g.CompanyID.String(),
		Name:        g.Name,
		StartTime:   FormatMinute(g.StartMinute),
		EndTime:     FormatMinute(g.EndMinute),
		EmployeeIDs: memberIDs,
	}
}

func mapRotationToResponse(rot Rotation) RotationResponse {
	return RotationResponse{
		ID:           rot.ID.String(),
		CompanyID:    rot.CompanyID.String(),
		EmployeeID:   rot.EmployeeID.String(),
		ShiftGroupID: rot.ShiftGroupID.String(),
		StartDate:    rot.StartDate.Format("2006-01-02"),
		EndDate:      rot.EndDate.Format("2006-01-02"),
	}
}
