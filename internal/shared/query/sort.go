package query

import "fmt"

// SortMap whitelists the sort names a resource exposes, mapped to their
// column expressions. Sort input is user-controlled and interpolated into
// ORDER BY, so anything outside the map falls back to the default.
type SortMap map[string]string

// OrderBy renders an ascending ORDER BY for the requested field, falling
// back to the given default name when the field is unknown or empty.
// Descending sorts are not exposed.
func (m SortMap) OrderBy(field, fallback string) string {
	col, ok := m[field]
	if !ok {
		col = m[fallback]
	}
	return fmt.Sprintf("ORDER BY %s ASC", col)
}
