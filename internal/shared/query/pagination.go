package query

const (
	// MaxLimit is the hard ceiling on page size. Requests above it are
	// clamped, not rejected.
	MaxLimit = 50
)

// Pageable is the sanitized page/limit pair for a list request.
type Pageable struct {
	Page  int
	Limit int
}

// NewPageable normalizes raw page/limit values: page floors at 1, limit
// floors at 1 and caps at MaxLimit, zero limit falls back to the
// resource's default.
func NewPageable(page, limit, defaultLimit int) Pageable {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pageable{Page: page, Limit: limit}
}

// Offset computes the number of rows to skip for the current page.
func (p Pageable) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the page metadata attached to every list response.
// A page past the end yields an empty item list with valid metadata,
// never an error.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	Pages       int  `json:"pages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination derives page metadata from the total count of matching
// rows. The count and the page fetch run as two separate queries with no
// transaction around them; a concurrent write between the two can make the
// returned item count disagree with Total. Accepted, documented race.
func NewPagination(p Pageable, total int) *Pagination {
	pages := (total + p.Limit - 1) / p.Limit
	return &Pagination{
		Page:        p.Page,
		Limit:       p.Limit,
		Total:       total,
		Pages:       pages,
		HasNextPage: p.Page < pages,
		HasPrevPage: p.Page > 1,
	}
}
