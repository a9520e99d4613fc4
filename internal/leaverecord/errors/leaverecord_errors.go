package leaverecorderrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidSubstituteID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid substitute employee id",
		http.StatusBadRequest,
	)
	ErrSubstituteIsSelf = apperror.New(
		apperror.CodeInvalidInput,
		"substitute must be a different employee",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrDuplicateLeaveDate = apperror.New(
		apperror.CodeConflict,
		"a leave record already exists for this employee and date",
		http.StatusConflict,
	)
	ErrLeaveRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave record not found",
		http.StatusNotFound,
	)
)
