package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderEmpty(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, "", b.Where())
	assert.Empty(t, b.Args())
	assert.Equal(t, 1, b.Next())
}

func TestBuilderNotDeletedAlwaysFirst(t *testing.T) {
	b := NewBuilder().NotDeleted("g").Equal("g.platform", "Steam")
	assert.Equal(t, "WHERE g.deleted_at IS NULL AND g.platform = $1", b.Where())
	assert.Equal(t, []interface{}{"Steam"}, b.Args())
}

func TestBuilderNotDeletedWithoutAlias(t *testing.T) {
	b := NewBuilder().NotDeleted("")
	assert.Equal(t, "WHERE deleted_at IS NULL", b.Where())
}

func TestBuilderEqualNumbersPlaceholders(t *testing.T) {
	b := NewBuilder().
		Equal("status", "Jugado").
		Equal("is_active", true).
		Equal("genre_id", "abc")

	assert.Equal(t, "WHERE status = $1 AND is_active = $2 AND genre_id = $3", b.Where())
	assert.Equal(t, []interface{}{"Jugado", true, "abc"}, b.Args())
	assert.Equal(t, 4, b.Next())
}

func TestBuilderSearchSingleColumn(t *testing.T) {
	b := NewBuilder().NotDeleted("").Search("witcher", "title")
	assert.Equal(t, "WHERE deleted_at IS NULL AND (title ILIKE $1)", b.Where())
	assert.Equal(t, []interface{}{"%witcher%"}, b.Args())
}

func TestBuilderSearchMultiColumnSharesPlaceholder(t *testing.T) {
	b := NewBuilder().Equal("is_active", true).Search("rpg", "name", "description")
	assert.Equal(t, "WHERE is_active = $1 AND (name ILIKE $2 OR description ILIKE $2)", b.Where())
	require.Len(t, b.Args(), 2)
	assert.Equal(t, "%rpg%", b.Args()[1])
}

func TestBuilderSearchBlankTermIgnored(t *testing.T) {
	b := NewBuilder().Search("   ", "title")
	assert.Equal(t, "", b.Where())
	assert.Empty(t, b.Args())
}

func TestNewPageableDefaults(t *testing.T) {
	p := NewPageable(0, 0, 12)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 12, p.Limit)
	assert.Equal(t, 0, p.Offset())
}

func TestNewPageableClampsLimit(t *testing.T) {
	p := NewPageable(2, 500, 10)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, MaxLimit, p.Offset())
}

func TestNewPageableFloorsNegatives(t *testing.T) {
	p := NewPageable(-3, -1, 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestPaginationArithmetic(t *testing.T) {
	cases := []struct {
		total, limit, pages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 12, 3},
		{50, 50, 1},
		{51, 50, 2},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("total=%d_limit=%d", tc.total, tc.limit), func(t *testing.T) {
			meta := NewPagination(Pageable{Page: 1, Limit: tc.limit}, tc.total)
			assert.Equal(t, tc.pages, meta.Pages)
			assert.Equal(t, tc.total, meta.Total)
		})
	}
}

func TestPaginationNavigationFlags(t *testing.T) {
	meta := NewPagination(Pageable{Page: 1, Limit: 10}, 25)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)

	meta = NewPagination(Pageable{Page: 2, Limit: 10}, 25)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)

	meta = NewPagination(Pageable{Page: 3, Limit: 10}, 25)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

func TestPaginationPageBeyondLast(t *testing.T) {
	// Past-the-end pages are valid requests; metadata must stay coherent.
	meta := NewPagination(Pageable{Page: 9, Limit: 10}, 25)
	assert.Equal(t, 3, meta.Pages)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

func TestSortMapWhitelist(t *testing.T) {
	sorts := SortMap{
		"title":     "g.title",
		"price":     "g.price",
		"createdAt": "g.created_at",
	}

	assert.Equal(t, "ORDER BY g.price ASC", sorts.OrderBy("price", "title"))
	assert.Equal(t, "ORDER BY g.title ASC", sorts.OrderBy("", "title"))
	// Injection attempts fall back to the default column.
	assert.Equal(t, "ORDER BY g.title ASC", sorts.OrderBy("price; DROP TABLE games", "title"))
}
