package genre

import (
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrGenreNotFound  = errors.New("genre not found")
	ErrDuplicateName  = errors.New("a genre with that name already exists")
	ErrAlreadyDeleted = errors.New("genre has already been deleted")
	ErrNotDeleted     = errors.New("genre has not been deleted")
)

// ToHTTPStatus maps a service error to its response status.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrGenreNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrAlreadyDeleted),
		errors.Is(err, ErrNotDeleted),
		IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsValidationError reports whether err carries field-level violations.
func IsValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}

// ValidationMessages flattens ozzo field errors into a deterministic list
// so the client always sees every violated constraint.
func ValidationMessages(err error) []string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, field+": "+verrs[field].Error())
	}
	return messages
}
