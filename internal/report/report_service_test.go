package report_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/report"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSnapshotRepository struct {
	loadFn func(ctx context.Context, companyID uuid.UUID, year int, month time.Month) (report.Snapshot, error)
}

func (f *fakeSnapshotRepository) LoadSnapshot(ctx context.Context, companyID uuid.UUID, year int, month time.Month) (report.Snapshot, error) {
	if f.loadFn != nil {
		return f.loadFn(ctx, companyID, year, month)
	}
	return report.Snapshot{}, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}
func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type reportServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service report.Service
	repo    *fakeSnapshotRepository
	outbox  *fakeOutboxRepository
}

func setupReportServiceTest(t *testing.T) *reportServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSnapshotRepository{}
	outbox := &fakeOutboxRepository{}
	svc := report.NewService(db, repo, outbox)

	return &reportServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, outbox: outbox}
}

func TestReportService_Generate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New()

	t.Run("success enqueues outbox event", func(t *testing.T) {
		deps := setupReportServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.loadFn = func(ctx context.Context, cid uuid.UUID, year int, month time.Month) (report.Snapshot, error) {
			assert.Equal(t, companyID, cid.String())
			assert.Equal(t, 2026, year)
			assert.Equal(t, time.September, month)
			snap := baseSnapshot(employeeID)
			snap.CompanyID = cid
			return snap, nil
		}

		var published kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			published = event
			return nil
		}

		resp, err := deps.service.Generate(ctx, companyID, report.GenerateRequest{
			Year:         2026,
			Month:        9,
			Mode:         string(report.ModeAttendance),
			GraceMinutes: 10,
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Rows, 1)
		assert.Equal(t, "30000.00", resp.Rows[0].Salary)
		assert.Equal(t, "hr.report.generated.v1", published.Topic)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid company id", func(t *testing.T) {
		deps := setupReportServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Generate(ctx, "not-a-uuid", report.GenerateRequest{
			Year:  2026,
			Month: 9,
			Mode:  string(report.ModeAttendance),
		})

		assert.Error(t, err)
	})

	t.Run("negative malformed deduction amount", func(t *testing.T) {
		deps := setupReportServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Generate(ctx, companyID, report.GenerateRequest{
			Year:  2026,
			Month: 9,
			Mode:  string(report.ModeTotals),
			Deductions: []report.DeductionRequest{
				{EmployeeID: employeeID.String(), Advance: "lots", LatePenalty: "0"},
			},
		})

		assert.Error(t, err)
	})

	t.Run("report survives outbox failure", func(t *testing.T) {
		deps := setupReportServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.loadFn = func(ctx context.Context, cid uuid.UUID, year int, month time.Month) (report.Snapshot, error) {
			return baseSnapshot(employeeID), nil
		}
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			return assert.AnError
		}

		resp, err := deps.service.Generate(ctx, companyID, report.GenerateRequest{
			Year:         2026,
			Month:        9,
			Mode:         string(report.ModeAttendance),
			GraceMinutes: 10,
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Rows, 1)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
