package punch

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"go-attendance/internal/employee"
	puncherrors "go-attendance/internal/punch/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=punch_service.go -destination=mock/punch_service_mock.go -package=mock
type Service interface {
	ImportScans(ctx context.Context, companyID string, req ImportScansRequest) (ImportScansResponse, error)
	GetAllByMonth(ctx context.Context, companyID string, year, month int) ([]ProcessedPunchResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("punch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("punch.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, logger: l}
}

// ImportScans resolves raw device scans by employee code, reduces them
// to one punch pair per employee per date, and upserts the results.
// Scans carrying a code no employee owns are skipped and reported, not
// rejected, so one bad badge does not block a whole file.
func (s *service) ImportScans(ctx context.Context, companyID string, req ImportScansRequest) (ImportScansResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ImportScansResponse{}, puncherrors.ErrInvalidCompanyID
	}

	employees, err := s.employeeRepo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return ImportScansResponse{}, err
	}
	byCode := make(map[string]uuid.UUID, len(employees))
	for _, e := range employees {
		byCode[e.Code] = e.ID
	}

	var scans []rawScan
	skipped := make(map[string]struct{})
	for _, in := range req.Scans {
		stamp, err := time.Parse(time.RFC3339, in.ScannedAt)
		if err != nil {
			return ImportScansResponse{}, puncherrors.ErrInvalidTimestamp
		}
		employeeID, ok := byCode[in.EmployeeCode]
		if !ok {
			skipped[in.EmployeeCode] = struct{}{}
			continue
		}
		scans = append(scans, rawScan{EmployeeID: employeeID.String(), ScannedAt: stamp})
	}
	if len(scans) == 0 {
		return ImportScansResponse{}, puncherrors.ErrNoUsableScans
	}

	days := reduceScans(scans)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportScansResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for _, day := range days {
		employeeUUID, err := uuid.Parse(day.EmployeeID)
		if err != nil {
			return ImportScansResponse{}, err
		}
		p := &ProcessedPunch{
			ID:         uuid.New(),
			CompanyID:  companyUUID,
			EmployeeID: employeeUUID,
			PunchDate:  day.Date,
			PunchIn:    day.PunchIn,
			PunchOut:   day.PunchOut,
			Status:     day.Status,
		}
		if err := qtx.Upsert(ctx, p); err != nil {
			s.logger.Error("punch upsert failed",
				zap.String("employee_id", day.EmployeeID),
				zap.Error(err),
			)
			return ImportScansResponse{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return ImportScansResponse{}, err
	}

	resp := ImportScansResponse{DaysProcessed: len(days)}
	for code := range skipped {
		resp.SkippedCodes = append(resp.SkippedCodes, code)
	}
	sort.Strings(resp.SkippedCodes)

	s.logger.Info("scans imported",
		zap.Int("days_processed", resp.DaysProcessed),
		zap.Int("skipped_codes", len(resp.SkippedCodes)),
	)
	return resp, nil
}

func (s *service) GetAllByMonth(ctx context.Context, companyID string, year, month int) ([]ProcessedPunchResponse, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	punches, err := s.repo.FindAllByCompanyAndRange(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]ProcessedPunchResponse, len(punches))
	for i, p := range punches {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func mapToResponse(p ProcessedPunch) ProcessedPunchResponse {
	resp := ProcessedPunchResponse{
		ID:         p.ID.String(),
		EmployeeID: p.EmployeeID.String(),
		Date:       p.PunchDate.Format("2006-01-02"),
		PunchIn:    p.PunchIn.Format(time.RFC3339),
		Status:     p.Status,
	}
	if p.PunchOut != nil {
		out := p.PunchOut.Format(time.RFC3339)
		resp.PunchOut = &out
	}
	return resp
}
