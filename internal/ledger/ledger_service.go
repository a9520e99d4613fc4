package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-attendance/internal/employee"
	"go-attendance/internal/events"
	ledgererrors "go-attendance/internal/ledger/errors"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledger_service.go -destination=mock/ledger_service_mock.go -package=mock
type Service interface {
	Credit(ctx context.Context, companyID, actorID string, req MutateAdvanceRequest) (CreditAdvanceResponse, error)
	Deduct(ctx context.Context, companyID, actorID string, req MutateAdvanceRequest) (DeductAdvanceResponse, error)
	GetBalance(ctx context.Context, companyID, employeeID string) (AdvanceBalanceResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, outbox: outbox, logger: l}
}

// Credit raises the employee's advance balance and commits the audit
// row plus the outbox event in the same transaction.
func (s *service) Credit(ctx context.Context, companyID, actorID string, req MutateAdvanceRequest) (CreditAdvanceResponse, error) {
	companyUUID, employeeUUID, actorUUID, amount, err := s.validateMutation(ctx, companyID, actorID, req)
	if err != nil {
		return CreditAdvanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CreditAdvanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	balance, err := qtx.Credit(ctx, companyUUID, employeeUUID, amount)
	if err != nil {
		s.logger.Error("advance credit failed", zap.Error(err))
		return CreditAdvanceResponse{}, err
	}

	if err := qtx.RecordTransaction(ctx, &AdvanceTransaction{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		EmployeeID:      employeeUUID,
		TxType:          TxTypeCredit,
		RequestedAmount: amount,
		AppliedAmount:   amount,
		BalanceAfter:    balance,
		CreatedBy:       actorUUID,
	}); err != nil {
		return CreditAdvanceResponse{}, err
	}

	if err := s.enqueueEvent(ctx, tx, events.AdvanceCreditedTopic, employeeUUID, events.AdvanceCreditedEvent{
		EventType:  events.AdvanceCreditedTopic,
		CompanyID:  companyID,
		EmployeeID: employeeUUID.String(),
		Amount:     amount.StringFixed(2),
		NewBalance: balance.StringFixed(2),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return CreditAdvanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return CreditAdvanceResponse{}, err
	}

	s.logger.Info("advance credited",
		zap.String("employee_id", employeeUUID.String()),
		zap.String("amount", amount.StringFixed(2)),
	)
	return CreditAdvanceResponse{
		EmployeeID: employeeUUID.String(),
		Credited:   amount.StringFixed(2),
		NewBalance: balance.StringFixed(2),
	}, nil
}

// Deduct lowers the balance by at most what is available. Requesting
// more than the balance is defined business behavior, not an error; the
// caller learns the actually-applied amount from the response.
func (s *service) Deduct(ctx context.Context, companyID, actorID string, req MutateAdvanceRequest) (DeductAdvanceResponse, error) {
	companyUUID, employeeUUID, actorUUID, amount, err := s.validateMutation(ctx, companyID, actorID, req)
	if err != nil {
		return DeductAdvanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeductAdvanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	applied, balance, err := qtx.Deduct(ctx, employeeUUID, amount)
	if err != nil {
		s.logger.Error("advance deduct failed", zap.Error(err))
		return DeductAdvanceResponse{}, err
	}

	if err := qtx.RecordTransaction(ctx, &AdvanceTransaction{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		EmployeeID:      employeeUUID,
		TxType:          TxTypeDeduct,
		RequestedAmount: amount,
		AppliedAmount:   applied,
		BalanceAfter:    balance,
		CreatedBy:       actorUUID,
	}); err != nil {
		return DeductAdvanceResponse{}, err
	}

	if err := s.enqueueEvent(ctx, tx, events.AdvanceDeductedTopic, employeeUUID, events.AdvanceDeductedEvent{
		EventType:  events.AdvanceDeductedTopic,
		CompanyID:  companyID,
		EmployeeID: employeeUUID.String(),
		Requested:  amount.StringFixed(2),
		Applied:    applied.StringFixed(2),
		NewBalance: balance.StringFixed(2),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return DeductAdvanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeductAdvanceResponse{}, err
	}

	s.logger.Info("advance deducted",
		zap.String("employee_id", employeeUUID.String()),
		zap.String("requested", amount.StringFixed(2)),
		zap.String("applied", applied.StringFixed(2)),
	)
	return DeductAdvanceResponse{
		EmployeeID:    employeeUUID.String(),
		Requested:     amount.StringFixed(2),
		AppliedAmount: applied.StringFixed(2),
		NewBalance:    balance.StringFixed(2),
	}, nil
}

func (s *service) GetBalance(ctx context.Context, companyID, employeeID string) (AdvanceBalanceResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AdvanceBalanceResponse{}, ledgererrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AdvanceBalanceResponse{}, ledgererrors.ErrInvalidEmployeeID
	}

	balance, err := s.repo.GetBalance(ctx, companyUUID, employeeUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdvanceBalanceResponse{}, ledgererrors.ErrAccountNotFound
		}
		return AdvanceBalanceResponse{}, err
	}

	return AdvanceBalanceResponse{
		EmployeeID: employeeUUID.String(),
		Balance:    balance.StringFixed(2),
	}, nil
}

func (s *service) validateMutation(ctx context.Context, companyID, actorID string, req MutateAdvanceRequest) (companyUUID, employeeUUID, actorUUID uuid.UUID, amount decimal.Decimal, err error) {
	companyUUID, err = uuid.Parse(companyID)
	if err != nil {
		err = ledgererrors.ErrInvalidCompanyID
		return
	}
	actorUUID, err = uuid.Parse(actorID)
	if err != nil {
		err = ledgererrors.ErrInvalidActorID
		return
	}
	employeeUUID, err = uuid.Parse(req.EmployeeID)
	if err != nil {
		err = ledgererrors.ErrInvalidEmployeeID
		return
	}

	amount, err = decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		err = ledgererrors.ErrInvalidAmount
		return
	}

	exists, err := s.employeeRepo.ExistsByIDAndCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return
	}
	if !exists {
		err = ledgererrors.ErrEmployeeNotInCompany
	}
	return
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, topic string, employeeID uuid.UUID, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "advance_account",
		AggregateID:   employeeID.String(),
		EventType:     topic,
		Topic:         topic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
}
