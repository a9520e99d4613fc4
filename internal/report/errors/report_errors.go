package reporterrors

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
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a positive number",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidMode = apperror.New(
		apperror.CodeInvalidInput,
		"mode must be one of attendance, late, totals",
		http.StatusBadRequest,
	)
	ErrInvalidGracePeriod = apperror.New(
		apperror.CodeInvalidInput,
		"grace period must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidDeduction = apperror.New(
		apperror.CodeInvalidInput,
		"deduction amounts must be non-negative numbers",
		http.StatusBadRequest,
	)
	ErrUnknownDeductionEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"deduction references an employee outside this company",
		http.StatusBadRequest,
	)
)
