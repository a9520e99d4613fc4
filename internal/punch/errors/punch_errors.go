package puncherrors

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
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"invalid scan timestamp, expected RFC 3339",
		http.StatusBadRequest,
	)
	ErrNoUsableScans = apperror.New(
		apperror.CodeInvalidInput,
		"no scans matched a known employee code",
		http.StatusBadRequest,
	)
)
