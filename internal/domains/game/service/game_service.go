package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gaming-collection-backend/internal/domains/game"
	"gaming-collection-backend/internal/domains/genre"
	"gaming-collection-backend/internal/shared/query"
	"gaming-collection-backend/pkg/cache"
	"gaming-collection-backend/pkg/logger"
)

const (
	defaultLimit = 12

	cachePattern = "games:*"
	cacheTTL     = 10 * time.Minute
)

type gameService struct {
	repo   game.Repository
	genres genre.Repository
	cache  cache.Cache
}

// NewService wires the game repository together with the genre repository;
// the latter backs the referential check on writes.
func NewService(repo game.Repository, genres genre.Repository, c cache.Cache) game.Service {
	return &gameService{repo: repo, genres: genres, cache: c}
}

type cachedList struct {
	Data       []*game.GameResponse `json:"data"`
	Pagination query.Pagination     `json:"pagination"`
}

func (s *gameService) List(ctx context.Context, filter game.Filter) ([]*game.GameResponse, *query.Pagination, error) {
	page := query.NewPageable(filter.Page, filter.Limit, defaultLimit)

	key := listCacheKey(filter, page)
	var cached cachedList
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached.Data, &cached.Pagination, nil
	}

	games, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}
	responses := game.ToResponseList(games)
	pagination := query.NewPagination(page, total)

	if err := s.cache.Set(ctx, key, cachedList{Data: responses, Pagination: *pagination}, cacheTTL); err != nil {
		logger.Warn("failed to cache game list", map[string]interface{}{"error": err.Error()})
	}
	return responses, pagination, nil
}

func (s *gameService) GetByID(ctx context.Context, id uuid.UUID) (*game.GameResponse, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.ToResponse(), nil
}

func (s *gameService) Create(ctx context.Context, req *game.CreateGameRequest) (*game.GameResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	genreID, err := uuid.Parse(req.Genre)
	if err != nil {
		return nil, game.ErrGenreNotActive
	}
	if err := s.requireActiveGenre(ctx, genreID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created.ToResponse(), nil
}

func (s *gameService) Update(ctx context.Context, id uuid.UUID, req *game.UpdateGameRequest) (*game.GameResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The genre reference is only re-checked when the request changes it;
	// a genre deactivated after the fact does not block other edits.
	if req.Genre != nil {
		genreID, err := uuid.Parse(*req.Genre)
		if err != nil {
			return nil, game.ErrGenreNotActive
		}
		if err := s.requireActiveGenre(ctx, genreID); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(existing)
	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated.ToResponse(), nil
}

func (s *gameService) SoftDelete(ctx context.Context, id uuid.UUID) (*game.GameResponse, error) {
	existing, err := s.repo.GetByIDAny(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.IsDeleted() {
		return nil, game.ErrAlreadyDeleted
	}
	deleted, err := s.repo.SoftDelete(ctx, id, time.Now())
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return deleted.ToResponse(), nil
}

func (s *gameService) Restore(ctx context.Context, id uuid.UUID) (*game.GameResponse, error) {
	existing, err := s.repo.GetByIDAny(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.IsDeleted() {
		return nil, game.ErrNotDeleted
	}
	restored, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return restored.ToResponse(), nil
}

func (s *gameService) PermanentDelete(ctx context.Context, id uuid.UUID) (*game.GameResponse, error) {
	removed, err := s.repo.HardDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return removed.ToResponse(), nil
}

func (s *gameService) SearchByTitle(ctx context.Context, term string) ([]*game.GameResponse, error) {
	games, err := s.repo.SearchByTitle(ctx, term)
	if err != nil {
		return nil, err
	}
	return game.ToResponseList(games), nil
}

func (s *gameService) GetByStatus(ctx context.Context, status game.Status) ([]*game.GameResponse, error) {
	games, err := s.repo.GetByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return game.ToResponseList(games), nil
}

func (s *gameService) GetByPlatform(ctx context.Context, platform game.Platform) ([]*game.GameResponse, error) {
	games, err := s.repo.GetByPlatform(ctx, platform)
	if err != nil {
		return nil, err
	}
	return game.ToResponseList(games), nil
}

func (s *gameService) requireActiveGenre(ctx context.Context, id uuid.UUID) error {
	ok, err := s.genres.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return game.ErrGenreNotActive
	}
	return nil
}

func (s *gameService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, cachePattern); err != nil {
		logger.Warn("failed to invalidate game cache", map[string]interface{}{"error": err.Error()})
	}
}

func listCacheKey(f game.Filter, p query.Pageable) string {
	active := "nil"
	if f.IsActive != nil {
		active = fmt.Sprintf("%v", *f.IsActive)
	}
	raw := fmt.Sprintf("p=%s|s=%s|g=%s|q=%s|a=%s|sort=%s|page=%d|limit=%d",
		f.Platform, f.Status, f.GenreID, f.Search, active, f.Sort, p.Page, p.Limit)
	return fmt.Sprintf("games:list:%x", md5.Sum([]byte(raw)))
}
