package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-attendance/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn             func(ctx context.Context, e *employee.Employee) error
	findAllByCompanyFn   func(ctx context.Context, companyID string) ([]employee.Employee, error)
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*employee.Employee, error)
	updateFn             func(ctx context.Context, e *employee.Employee) error
	deleteFn             func(ctx context.Context, companyID, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func (f *fakeEmployeeRepository) ExistsByIDAndCompany(ctx context.Context, companyID, id string) (bool, error) {
	return true, nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	svc := employee.NewService(db, repo)

	return &employeeServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		req := employee.CreateEmployeeRequest{
			Code:        "EMP-001",
			FullName:    "Asha Verma",
			Department:  "Operations",
			BasicSalary: "30000",
		}

		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			assert.Equal(t, uuid.MustParse(companyID), e.CompanyID)
			assert.Equal(t, "EMP-001", e.Code)
			assert.True(t, e.BasicSalary.Equal(decimal.NewFromInt(30000)))
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, req)

		assert.NoError(t, err)
		assert.Equal(t, "EMP-001", resp.Code)
		assert.Equal(t, "30000.00", resp.BasicSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative salary rejected", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		req := employee.CreateEmployeeRequest{
			Code:        "EMP-002",
			FullName:    "Rohit Pillai",
			Department:  "Operations",
			BasicSalary: "-100",
		}

		_, err := deps.service.Create(ctx, companyID, req)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate code maps to conflict", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		req := employee.CreateEmployeeRequest{
			Code:        "EMP-001",
			FullName:    "Asha Verma",
			Department:  "Operations",
			BasicSalary: "30000",
		}

		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			return errors.New(`duplicate key value violates unique constraint "uq_employee_company_code"`)
		}

		_, err := deps.service.Create(ctx, companyID, req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, targetID string) (*employee.Employee, error) {
			return &employee.Employee{
				ID:          uuid.MustParse(targetID),
				CompanyID:   uuid.MustParse(cid),
				Code:        "EMP-001",
				FullName:    "Asha Verma",
				Department:  "Operations",
				BasicSalary: decimal.NewFromInt(30000),
			}, nil
		}

		resp, err := deps.service.GetByID(ctx, companyID, id)

		assert.NoError(t, err)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "30000.00", resp.BasicSalary)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, targetID string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByID(ctx, companyID, id)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success updates salary", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, targetID string) (*employee.Employee, error) {
			return &employee.Employee{
				ID:          uuid.MustParse(targetID),
				CompanyID:   uuid.MustParse(cid),
				Code:        "EMP-001",
				FullName:    "Asha Verma",
				Department:  "Operations",
				BasicSalary: decimal.NewFromInt(30000),
			}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			assert.True(t, e.BasicSalary.Equal(decimal.NewFromInt(32000)))
			return nil
		}

		resp, err := deps.service.Update(ctx, companyID, id, employee.UpdateEmployeeRequest{
			FullName:    "Asha Verma",
			Department:  "Operations",
			BasicSalary: "32000",
		})

		assert.NoError(t, err)
		assert.Equal(t, "32000.00", resp.BasicSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
