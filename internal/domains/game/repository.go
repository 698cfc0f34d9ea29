package game

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gaming-collection-backend/internal/shared/query"
)

// Repository is the persistence port for games. Read methods return entities
// with the referenced genre populated.
type Repository interface {
	// List returns one page of non-deleted games matching the filter, plus
	// the total match count before pagination.
	List(ctx context.Context, filter Filter, page query.Pageable) ([]Game, int, error)

	// GetByID excludes soft-deleted rows.
	GetByID(ctx context.Context, id uuid.UUID) (*Game, error)

	// GetByIDAny includes soft-deleted rows; used by the delete and restore
	// paths to inspect current state.
	GetByIDAny(ctx context.Context, id uuid.UUID) (*Game, error)

	Create(ctx context.Context, g *Game) (*Game, error)
	Update(ctx context.Context, g *Game) (*Game, error)

	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (*Game, error)
	Restore(ctx context.Context, id uuid.UUID) (*Game, error)
	HardDelete(ctx context.Context, id uuid.UUID) (*Game, error)

	// SearchByTitle matches non-deleted games by title substring, any
	// active state.
	SearchByTitle(ctx context.Context, term string) ([]Game, error)

	// GetByStatus returns non-deleted, active games with the given status.
	GetByStatus(ctx context.Context, status Status) ([]Game, error)

	// GetByPlatform returns non-deleted, active games on the given platform.
	GetByPlatform(ctx context.Context, platform Platform) ([]Game, error)
}
