package genre

import (
	"time"

	"github.com/google/uuid"
)

// Genre is a video game genre. Games hold a non-owning reference to a
// genre; only genres that are active and not soft-deleted may be newly
// referenced.
type Genre struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description" db:"description"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	DeletedAt   *time.Time `json:"deletedAt" db:"deleted_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// IsDeleted reports whether the genre is soft-deleted.
func (g *Genre) IsDeleted() bool {
	return g.DeletedAt != nil
}

// Referenceable reports whether a game may reference this genre right now.
func (g *Genre) Referenceable() bool {
	return g.IsActive && !g.IsDeleted()
}
