package game

import (
	"context"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"gaming-collection-backend/internal/shared/query"
)

// Service is the business layer for the collection.
type Service interface {
	List(ctx context.Context, filter Filter) ([]*GameResponse, *query.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GameResponse, error)
	Create(ctx context.Context, req *CreateGameRequest) (*GameResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateGameRequest) (*GameResponse, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*GameResponse, error)
	Restore(ctx context.Context, id uuid.UUID) (*GameResponse, error)
	PermanentDelete(ctx context.Context, id uuid.UUID) (*GameResponse, error)

	SearchByTitle(ctx context.Context, term string) ([]*GameResponse, error)
	GetByStatus(ctx context.Context, status Status) ([]*GameResponse, error)
	GetByPlatform(ctx context.Context, platform Platform) ([]*GameResponse, error)

	ExportToExcel(ctx context.Context, filter Filter) (*excelize.File, error)
}
