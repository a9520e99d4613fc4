package shift

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-attendance/internal/shared/apperror"
)

var errBadTimeOfDay = apperror.New(
	apperror.CodeInvalidInput,
	"invalid time of day, expected HH:MM",
	http.StatusBadRequest,
)

// ParseMinute converts "HH:MM" into minutes since midnight.
func ParseMinute(v string) (int, error) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, errBadTimeOfDay
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, errBadTimeOfDay
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, errBadTimeOfDay
	}
	return h*60 + m, nil
}

// FormatMinute renders minutes since midnight as "HH:MM".
func FormatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
