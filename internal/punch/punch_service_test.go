package punch_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-attendance/internal/employee"
	"go-attendance/internal/punch"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePunchRepository struct {
	upsertFn         func(ctx context.Context, p *punch.ProcessedPunch) error
	findAllByRangeFn func(ctx context.Context, companyID string, from, to time.Time) ([]punch.ProcessedPunch, error)
}

func (f *fakePunchRepository) WithTx(tx *sql.Tx) punch.Repository { return f }

func (f *fakePunchRepository) Upsert(ctx context.Context, p *punch.ProcessedPunch) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, p)
	}
	return nil
}

func (f *fakePunchRepository) FindAllByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]punch.ProcessedPunch, error) {
	if f.findAllByRangeFn != nil {
		return f.findAllByRangeFn(ctx, companyID, from, to)
	}
	return nil, nil
}

type fakeEmployeeRepository struct {
	findAllFn func(ctx context.Context, companyID string) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, companyID)
	}
	return nil, nil
}
func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepository) Delete(ctx context.Context, companyID, id string) error { return nil }
func (f *fakeEmployeeRepository) ExistsByIDAndCompany(ctx context.Context, companyID, id string) (bool, error) {
	return true, nil
}

type punchServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service punch.Service
	repo    *fakePunchRepository
	emp     *fakeEmployeeRepository
}

func setupPunchServiceTest(t *testing.T) *punchServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePunchRepository{}
	emp := &fakeEmployeeRepository{}
	svc := punch.NewService(db, repo, emp)

	return &punchServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, emp: emp}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestPunchService_ImportScans(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New()

	roster := []employee.Employee{
		{ID: employeeID, CompanyID: uuid.MustParse(companyID), Code: "EMP-001", FullName: "Asha Verma"},
	}

	t.Run("success reduces and upserts", func(t *testing.T) {
		deps := setupPunchServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.emp.findAllFn = func(ctx context.Context, cid string) ([]employee.Employee, error) {
			return roster, nil
		}

		var upserted []*punch.ProcessedPunch
		deps.repo.upsertFn = func(ctx context.Context, p *punch.ProcessedPunch) error {
			upserted = append(upserted, p)
			return nil
		}

		resp, err := deps.service.ImportScans(ctx, companyID, punch.ImportScansRequest{
			Scans: []punch.RawScanInput{
				{EmployeeCode: "EMP-001", ScannedAt: "2026-09-14T08:55:00Z"},
				{EmployeeCode: "EMP-001", ScannedAt: "2026-09-14T18:05:00Z"},
				{EmployeeCode: "GHOST-9", ScannedAt: "2026-09-14T09:00:00Z"},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.DaysProcessed)
		assert.Equal(t, []string{"GHOST-9"}, resp.SkippedCodes)
		assert.Len(t, upserted, 1)
		assert.Equal(t, employeeID, upserted[0].EmployeeID)
		assert.Equal(t, punch.StatusPresent, upserted[0].Status)
		assert.NotNil(t, upserted[0].PunchOut)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative no usable scans", func(t *testing.T) {
		deps := setupPunchServiceTest(t)
		defer deps.db.Close()

		deps.emp.findAllFn = func(ctx context.Context, cid string) ([]employee.Employee, error) {
			return roster, nil
		}

		_, err := deps.service.ImportScans(ctx, companyID, punch.ImportScansRequest{
			Scans: []punch.RawScanInput{
				{EmployeeCode: "GHOST-9", ScannedAt: "2026-09-14T09:00:00Z"},
			},
		})

		assert.Error(t, err)
	})

	t.Run("negative bad timestamp", func(t *testing.T) {
		deps := setupPunchServiceTest(t)
		defer deps.db.Close()

		deps.emp.findAllFn = func(ctx context.Context, cid string) ([]employee.Employee, error) {
			return roster, nil
		}

		_, err := deps.service.ImportScans(ctx, companyID, punch.ImportScansRequest{
			Scans: []punch.RawScanInput{
				{EmployeeCode: "EMP-001", ScannedAt: "yesterday"},
			},
		})

		assert.Error(t, err)
	})
}

func TestPunchService_GetAllByMonth(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupPunchServiceTest(t)
		defer deps.db.Close()

		in := time.Date(2026, 9, 14, 8, 55, 0, 0, time.UTC)
		deps.repo.findAllByRangeFn = func(ctx context.Context, cid string, from, to time.Time) ([]punch.ProcessedPunch, error) {
			assert.Equal(t, "2026-09-01", from.Format("2006-01-02"))
			assert.Equal(t, "2026-09-30", to.Format("2006-01-02"))
			return []punch.ProcessedPunch{
				{
					ID:         uuid.New(),
					EmployeeID: uuid.New(),
					PunchDate:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
					PunchIn:    in,
					Status:     punch.StatusMissedPunchOut,
				},
			}, nil
		}

		resp, err := deps.service.GetAllByMonth(ctx, companyID, 2026, 9)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "2026-09-14", resp[0].Date)
		assert.Nil(t, resp[0].PunchOut)
	})
}
