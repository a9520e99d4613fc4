package holiday

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
	errGroupNotFound = apperror.New(apperror.CodeNotFound, "holiday group not found", http.StatusNotFound)
	errBadDate       = apperror.New(apperror.CodeInvalidInput, "invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
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
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateGroupRequest) (GroupResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return GroupResponse{}, apperror.InvalidField("company id")
	}

	g := &Group{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      req.Name,
	}

	entries, err := parseEntries(g.ID, req.Entries)
	if err != nil {
		return GroupResponse{}, err
	}
	g.Entries = entries

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

	s.logger.Info("holiday group created",
		zap.String("group_id", g.ID.String()),
		zap.Int("entries", len(g.Entries)),
	)
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

	entries, err := parseEntries(g.ID, req.Entries)
	if err != nil {
		return GroupResponse{}, err
	}

	g.Name = req.Name
	if err := s.repo.Update(ctx, g); err != nil {
		return GroupResponse{}, err
	}
	if err := s.repo.ReplaceEntries(ctx, g.ID.String(), entries); err != nil {
		return GroupResponse{}, err
	}

	updated, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return GroupResponse{}, err
	}
	return mapToResponse(*updated), nil
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

	members := make([]Member, 0, len(req.EmployeeIDs))
	for _, raw := range req.EmployeeIDs {
		eid, err := uuid.Parse(raw)
		if err != nil {
			return GroupResponse{}, apperror.InvalidField("employee id")
		}
		members = append(members, Member{GroupID: g.ID, EmployeeID: eid})
	}

	if err := s.repo.ReplaceMembers(ctx, g.ID.String(), members); err != nil {
		return GroupResponse{}, err
	}

	updated, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return GroupResponse{}, err
	}
	return mapToResponse(*updated), nil
}

func parseEntries(groupID uuid.UUID, inputs []EntryInput) ([]Entry, error) {
	entries := make([]Entry, 0, len(inputs))
	for _, in := range inputs {
		d, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, errBadDate
		}
		entries = append(entries, Entry{
			ID:          uuid.New(),
			GroupID:     groupID,
			HolidayDate: d,
			Label:       in.Label,
		})
	}
	return entries, nil
}

func mapToResponse(g Group) GroupResponse {
	entries := make([]EntryResponse, len(g.Entries))
	for i, e := range g.Entries {
		entries[i] = EntryResponse{
			Date:  e.HolidayDate.Format("2006-01-02"),
			Label: e.Label,
		}
	}
	memberIDs := make([]string, len(g.Members))
	for i, m := range g.Members {
		memberIDs[i] = m.EmployeeID.String()
	}
	return GroupResponse{
		ID:          g.ID.String(),
		CompanyID:   g.CompanyID.String(),
		Name:        g.Name,
		Entries:     entries,
		EmployeeIDs: memberIDs,
	}
}
