package leaverecord

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-attendance/internal/employee"
	leaverecorderrors "go-attendance/internal/leaverecord/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leaverecord_service.go -destination=mock/leaverecord_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateLeaveRecordRequest) (LeaveRecordResponse, error)
	GetAllByMonth(ctx context.Context, companyID string, year, month int) ([]LeaveRecordResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaverecord.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverecord.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateLeaveRecordRequest) (LeaveRecordResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return LeaveRecordResponse{}, leaverecorderrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveRecordResponse{}, leaverecorderrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveRecordResponse{}, leaverecorderrors.ErrInvalidEmployeeID
	}

	leaveDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return LeaveRecordResponse{}, leaverecorderrors.ErrInvalidDateFormat
	}

	var substituteUUID *uuid.UUID
	if req.SubstituteEmployeeID != nil {
		parsed, err := uuid.Parse(*req.SubstituteEmployeeID)
		if err != nil {
			return LeaveRecordResponse{}, leaverecorderrors.ErrInvalidSubstituteID
		}
		if parsed == employeeUUID {
			return LeaveRecordResponse{}, leaverecorderrors.ErrSubstituteIsSelf
		}
		substituteUUID = &parsed
	}

	exists, err := s.employeeRepo.ExistsByIDAndCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return LeaveRecordResponse{}, err
	}
	if !exists {
		return LeaveRecordResponse{}, leaverecorderrors.ErrEmployeeNotInCompany
	}
	if substituteUUID != nil {
		exists, err := s.employeeRepo.ExistsByIDAndCompany(ctx, companyID, substituteUUID.String())
		if err != nil {
			return LeaveRecordResponse{}, err
		}
		if !exists {
			return LeaveRecordResponse{}, leaverecorderrors.ErrEmployeeNotInCompany
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec := &LeaveRecord{
		ID:                   uuid.New(),
		CompanyID:            companyUUID,
		EmployeeID:           employeeUUID,
		LeaveDate:            leaveDate,
		Reason:               req.Reason,
		SubstituteEmployeeID: substituteUUID,
		CreatedBy:            actorUUID,
	}

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("create leave record persist failed", zap.Error(err))
		return LeaveRecordResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return LeaveRecordResponse{}, err
	}

	s.logger.Info("leave record created",
		zap.String("employee_id", rec.EmployeeID.String()),
		zap.String("leave_date", rec.LeaveDate.Format(dateLayout)),
	)
	return mapToResponse(*rec), nil
}

func (s *service) GetAllByMonth(ctx context.Context, companyID string, year, month int) ([]LeaveRecordResponse, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.repo.FindAllByCompanyAndRange(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveRecordResponse, len(records))
	for i, rec := range records {
		resp[i] = mapToResponse(rec)
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndCompany(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaverecorderrors.ErrLeaveRecordNotFound
		}
		return err
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return err
	}
	return tx.Commit()
}

func mapToResponse(rec LeaveRecord) LeaveRecordResponse {
	resp := LeaveRecordResponse{
		ID:         rec.ID.String(),
		CompanyID:  rec.CompanyID.String(),
		EmployeeID: rec.EmployeeID.String(),
		Date:       rec.LeaveDate.Format(dateLayout),
		Reason:     rec.Reason,
		CreatedBy:  rec.CreatedBy.String(),
	}
	if rec.SubstituteEmployeeID != nil {
		sub := rec.SubstituteEmployeeID.String()
		resp.SubstituteEmployeeID = &sub
	}
	return resp
}
