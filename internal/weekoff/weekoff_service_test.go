package weekoff_test

import (
	"context"
	"database/sql"
	"testing"

	"go-attendance/internal/weekoff"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeWeekOffRepository struct {
	createFn             func(ctx context.Context, g *weekoff.Group) error
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*weekoff.Group, error)
	replaceMembersFn     func(ctx context.Context, groupID string, employeeIDs []string) error
}

func (f *fakeWeekOffRepository) WithTx(tx *sql.Tx) weekoff.Repository { return f }

func (f *fakeWeekOffRepository) Create(ctx context.Context, g *weekoff.Group) error {
	if f.createFn != nil {
		return f.createFn(ctx, g)
	}
	return nil
}

func (f *fakeWeekOffRepository) FindAllByCompany(ctx context.Context, companyID string) ([]weekoff.Group, error) {
	return nil, nil
}

func (f *fakeWeekOffRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*weekoff.Group, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWeekOffRepository) Update(ctx context.Context, g *weekoff.Group) error { return nil }

func (f *fakeWeekOffRepository) Delete(ctx context.Context, companyID, id string) error { return nil }

func (f *fakeWeekOffRepository) ReplaceMembers(ctx context.Context, groupID string, employeeIDs []string) error {
	if f.replaceMembersFn != nil {
		return f.replaceMembersFn(ctx, groupID, employeeIDs)
	}
	return nil
}

func TestWeekOffService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success dedups days", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := &fakeWeekOffRepository{}
		repo.createFn = func(ctx context.Context, g *weekoff.Group) error {
			assert.Equal(t, []int{0, 6}, []int(g.Days))
			return nil
		}
		svc := weekoff.NewService(db, repo)

		resp, err := svc.Create(ctx, companyID, weekoff.CreateGroupRequest{
			Name: "Weekend",
			Days: []int{0, 6, 0, 6},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Weekend", resp.Name)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("negative bad company id", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		svc := weekoff.NewService(db, &fakeWeekOffRepository{})

		_, err = svc.Create(ctx, "nope", weekoff.CreateGroupRequest{Name: "Weekend", Days: []int{0}})

		assert.Error(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestWeekOffService_SetMembers(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	groupID := uuid.New()

	t.Run("success", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		members := []string{uuid.NewString(), uuid.NewString()}
		repo := &fakeWeekOffRepository{}
		repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*weekoff.Group, error) {
			return &weekoff.Group{ID: groupID, CompanyID: uuid.MustParse(cid), Name: "Weekend"}, nil
		}
		var replaced []string
		repo.replaceMembersFn = func(ctx context.Context, gid string, employeeIDs []string) error {
			assert.Equal(t, groupID.String(), gid)
			replaced = employeeIDs
			return nil
		}
		svc := weekoff.NewService(db, repo)

		_, err = svc.SetMembers(ctx, companyID, groupID.String(), weekoff.SetMembersRequest{EmployeeIDs: members})

		assert.NoError(t, err)
		assert.Equal(t, members, replaced)
	})

	t.Run("negative group not found", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := weekoff.NewService(db, &fakeWeekOffRepository{})

		_, err = svc.SetMembers(ctx, companyID, groupID.String(), weekoff.SetMembersRequest{})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
