package query

import (
	"fmt"
	"strings"
)

// Builder accumulates WHERE conditions and their positional args for a
// single statement. Conditions are ANDed in the order they were added, so
// the resulting predicate is deterministic for identical inputs — the count
// query and the page query must be built from the same Builder args.
type Builder struct {
	conds []string
	args  []interface{}
}

func NewBuilder() *Builder {
	return &Builder{}
}

// NotDeleted excludes soft-deleted rows. Every list/get path adds this;
// only internal restore/permanent-delete lookups skip it.
func (b *Builder) NotDeleted(alias string) *Builder {
	b.conds = append(b.conds, fmt.Sprintf("%sdeleted_at IS NULL", prefix(alias)))
	return b
}

// Equal adds an equality condition against the next placeholder.
func (b *Builder) Equal(column string, value interface{}) *Builder {
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", column, len(b.args)))
	return b
}

// Search adds a case-insensitive substring match over one or more text
// columns. All columns share a single placeholder, ORed together:
// (name ILIKE $3 OR description ILIKE $3). Empty terms add nothing.
func (b *Builder) Search(term string, columns ...string) *Builder {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return b
	}
	b.args = append(b.args, "%"+term+"%")
	n := len(b.args)

	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
	return b
}

// Where renders the accumulated conditions as a WHERE clause, or an empty
// string when no condition was added.
func (b *Builder) Where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// Args returns the positional arguments in placeholder order.
func (b *Builder) Args() []interface{} {
	return b.args
}

// Next returns the index the next placeholder would take. Used to append
// LIMIT/OFFSET placeholders after the predicate args.
func (b *Builder) Next() int {
	return len(b.args) + 1
}

func prefix(alias string) string {
	if alias == "" {
		return ""
	}
	return alias + "."
}
