package genre

import (
	"context"

	"github.com/google/uuid"

	"gaming-collection-backend/internal/shared/query"
)

// Service defines genre business logic.
type Service interface {
	// List applies search/active filters with pagination; soft-deleted
	// genres are always excluded.
	List(ctx context.Context, filter Filter) ([]Genre, *query.Pagination, error)

	// ListActive is the unpaginated convenience listing backing the game
	// form's genre selector.
	ListActive(ctx context.Context) ([]Genre, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)

	// Create validates the request and inserts the genre.
	// Errors: validation.Errors, ErrDuplicateName
	Create(ctx context.Context, req *CreateGenreRequest) (*Genre, error)

	// Update changes only the supplied fields.
	// Errors: ErrGenreNotFound, validation.Errors, ErrDuplicateName
	Update(ctx context.Context, id uuid.UUID, req *UpdateGenreRequest) (*Genre, error)

	// SoftDelete marks the genre deleted and inactive. Deleting an
	// already-deleted genre fails with ErrAlreadyDeleted.
	SoftDelete(ctx context.Context, id uuid.UUID) (*Genre, error)

	// Restore clears the soft-delete mark. Restoring a live genre fails
	// with ErrNotDeleted.
	Restore(ctx context.Context, id uuid.UUID) (*Genre, error)

	// PermanentDelete removes the record for good, from either state.
	PermanentDelete(ctx context.Context, id uuid.UUID) (*Genre, error)
}
