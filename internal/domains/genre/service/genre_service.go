package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gaming-collection-backend/internal/domains/genre"
	"gaming-collection-backend/internal/shared/query"
	"gaming-collection-backend/pkg/cache"
	"gaming-collection-backend/pkg/logger"
)

const (
	defaultLimit = 10

	activeGenresCacheKey = "genres:active"
	cachePattern         = "genres:*"
	// Cached game lists embed the joined genre name and description, so
	// genre mutations flush them too.
	gamesCachePattern = "games:*"
	cacheTTL          = 10 * time.Minute
)

type genreService struct {
	repo  genre.Repository
	cache cache.Cache
}

func NewService(repo genre.Repository, cache cache.Cache) genre.Service {
	return &genreService{repo: repo, cache: cache}
}

func (s *genreService) List(ctx context.Context, filter genre.Filter) ([]genre.Genre, *query.Pagination, error) {
	page := query.NewPageable(filter.Page, filter.Limit, defaultLimit)

	genres, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}

	return genres, query.NewPagination(page, total), nil
}

func (s *genreService) ListActive(ctx context.Context) ([]genre.Genre, error) {
	var cached []genre.Genre
	found, err := s.cache.Get(ctx, activeGenresCacheKey, &cached)
	if err != nil {
		logger.Error("active genres cache read failed", err)
	}
	if found {
		return cached, nil
	}

	genres, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, activeGenresCacheKey, genres, cacheTTL); err != nil {
		logger.Error("active genres cache write failed", err)
	}
	return genres, nil
}

func (s *genreService) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *genreService) Create(ctx context.Context, req *genre.CreateGenreRequest) (*genre.Genre, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return created, nil
}

func (s *genreService) Update(ctx context.Context, id uuid.UUID, req *genre.UpdateGenreRequest) (*genre.Genre, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(existing)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *genreService) SoftDelete(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	existing, err := s.repo.GetByIDAny(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.IsDeleted() {
		return nil, genre.ErrAlreadyDeleted
	}

	deleted, err := s.repo.SoftDelete(ctx, id, time.Now())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return deleted, nil
}

func (s *genreService) Restore(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	existing, err := s.repo.GetByIDAny(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.IsDeleted() {
		return nil, genre.ErrNotDeleted
	}

	restored, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return restored, nil
}

func (s *genreService) PermanentDelete(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	removed, err := s.repo.HardDelete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return removed, nil
}

// invalidate drops every cached genre view along with the game lists that
// carry a genre projection. Cache failures never fail the request that
// triggered them.
func (s *genreService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, cachePattern); err != nil {
		logger.Error("genre cache invalidation failed", err)
	}
	if err := s.cache.DeletePattern(ctx, gamesCachePattern); err != nil {
		logger.Error("game list cache invalidation failed", err)
	}
}
