package genre

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gaming-collection-backend/internal/shared/query"
)

// Repository defines genre data access. The postgres implementation lives
// in repository/; services and the game domain's foreign-key gate depend
// on this interface only.
type Repository interface {
	// List returns a page of non-deleted genres plus the total count of
	// rows matching the same predicate.
	List(ctx context.Context, filter Filter, page query.Pageable) ([]Genre, int, error)

	// ListActive returns every active, non-deleted genre sorted by name.
	ListActive(ctx context.Context) ([]Genre, error)

	// GetByID excludes soft-deleted rows.
	// Errors: ErrGenreNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)

	// GetByIDAny includes soft-deleted rows; used by the delete/restore
	// paths, which need to see the current soft-delete state.
	GetByIDAny(ctx context.Context, id uuid.UUID) (*Genre, error)

	// Create inserts a new genre.
	// Errors: ErrDuplicateName when the unique name index is violated.
	Create(ctx context.Context, g *Genre) (*Genre, error)

	// Update persists name/description/is_active of a non-deleted genre.
	// Errors: ErrGenreNotFound, ErrDuplicateName
	Update(ctx context.Context, g *Genre) (*Genre, error)

	// SoftDelete stamps deleted_at and clears is_active.
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (*Genre, error)

	// Restore clears deleted_at and resets is_active.
	Restore(ctx context.Context, id uuid.UUID) (*Genre, error)

	// HardDelete removes the row irrecoverably, regardless of soft-delete
	// state, returning the removed record.
	HardDelete(ctx context.Context, id uuid.UUID) (*Genre, error)

	// ExistsActive reports whether the genre exists, is not soft-deleted
	// and is active — the precondition for a game referencing it.
	ExistsActive(ctx context.Context, id uuid.UUID) (bool, error)
}
