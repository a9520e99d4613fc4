package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MapValidationError converts the first binding failure into a typed
// AppError carrying the offending field name.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]

		// Field() already yields the json tag name, see Init().
		fieldName := strings.ReplaceAll(e.Field(), "_", " ")

		switch e.Tag() {
		case "required":
			return RequiredField(fieldName)
		default:
			return InvalidField(fieldName)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
