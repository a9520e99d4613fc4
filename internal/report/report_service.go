package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka"
	reporterrors "go-attendance/internal/report/errors"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, companyID string, req GenerateRequest) (ReportResponse, error)
}

// GenerateRequest is the service-level input: transport-agnostic, with
// deduction amounts already as strings pending decimal parsing.
type GenerateRequest struct {
	Year         int
	Month        int
	Mode         string
	GraceMinutes int
	IncludeDays  bool
	Deductions   []DeductionRequest
}

type service struct {
	db     *sql.DB
	repo   SnapshotRepository
	outbox kafka.OutboxRepository
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo SnapshotRepository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, logger: l}
}

// Generate loads a company-month snapshot, runs the pure engine, and
// records a report.generated event. Concurrent identical attendance and
// late runs are collapsed with singleflight; totals runs are not, since
// their transient deductions make each request distinct.
func (s *service) Generate(ctx context.Context, companyID string, req GenerateRequest) (ReportResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidCompanyID
	}

	opts := Options{
		Mode:         Mode(req.Mode),
		GraceMinutes: req.GraceMinutes,
		IncludeDays:  req.IncludeDays,
	}
	if opts.Mode == ModeTotals {
		opts.Deductions, err = parseDeductions(req.Deductions)
		if err != nil {
			return ReportResponse{}, err
		}
	}

	if opts.Mode == ModeTotals {
		return s.compute(ctx, companyUUID, req, opts)
	}

	key := fmt.Sprintf("%s|%d|%d|%s|%d|%t",
		companyID, req.Year, req.Month, req.Mode, req.GraceMinutes, req.IncludeDays)
	resp, err, shared := s.group.Do(key, func() (any, error) {
		r, err := s.compute(ctx, companyUUID, req, opts)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
	if err != nil {
		return ReportResponse{}, err
	}
	if shared {
		s.logger.Debug("report computation shared", zap.String("key", key))
	}
	return resp.(ReportResponse), nil
}

func (s *service) compute(ctx context.Context, companyID uuid.UUID, req GenerateRequest, opts Options) (ReportResponse, error) {
	snap, err := s.repo.LoadSnapshot(ctx, companyID, req.Year, time.Month(req.Month))
	if err != nil {
		return ReportResponse{}, err
	}

	result, err := Compute(snap, opts)
	if err != nil {
		return ReportResponse{}, err
	}

	if err := s.recordGenerated(ctx, companyID, req, result); err != nil {
		// The report itself is sound; losing the event is a worker
		// concern, not a caller concern.
		s.logger.Warn("report.generated outbox write failed", zap.Error(err))
	}

	s.logger.Info("report generated",
		zap.String("company_id", companyID.String()),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.String("mode", req.Mode),
		zap.Int("rows", len(result.Rows)),
		zap.Int("anomalies", len(result.Anomalies)),
	)

	return ReportResponse{
		Year:      req.Year,
		Month:     req.Month,
		Mode:      req.Mode,
		Rows:      result.Rows,
		Anomalies: result.Anomalies,
		Days:      result.Days,
	}, nil
}

func (s *service) recordGenerated(ctx context.Context, companyID uuid.UUID, req GenerateRequest, result Result) error {
	payload, err := json.Marshal(events.ReportGeneratedEvent{
		EventType:    events.ReportGeneratedTopic,
		CompanyID:    companyID.String(),
		Year:         req.Year,
		Month:        req.Month,
		Mode:         req.Mode,
		RowCount:     len(result.Rows),
		AnomalyCount: len(result.Anomalies),
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "report",
		AggregateID:   companyID.String(),
		EventType:     events.ReportGeneratedTopic,
		Topic:         events.ReportGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return err
	}
	return tx.Commit()
}

func parseDeductions(inputs []DeductionRequest) (map[uuid.UUID]DeductionInput, error) {
	out := make(map[uuid.UUID]DeductionInput, len(inputs))
	for _, in := range inputs {
		employeeID, err := uuid.Parse(in.EmployeeID)
		if err != nil {
			return nil, reporterrors.ErrInvalidDeduction
		}
		advance, err := decimal.NewFromString(in.Advance)
		if err != nil {
			return nil, reporterrors.ErrInvalidDeduction
		}
		penalty, err := decimal.NewFromString(in.LatePenalty)
		if err != nil {
			return nil, reporterrors.ErrInvalidDeduction
		}
		out[employeeID] = DeductionInput{Advance: advance, LatePenalty: penalty}
	}
	return out, nil
}
