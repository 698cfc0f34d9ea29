package game

import (
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrGenreNotActive = errors.New("genre does not exist or is not active")
	ErrAlreadyDeleted = errors.New("game is already deleted")
	ErrNotDeleted     = errors.New("game is not deleted")
)

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrGenreNotActive),
		errors.Is(err, ErrAlreadyDeleted),
		errors.Is(err, ErrNotDeleted):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func IsValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}

// ValidationMessages flattens a validation error into "field: message" lines,
// sorted by field so the output is stable.
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
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = append(out, field+": "+verrs[field].Error())
	}
	return out
}
