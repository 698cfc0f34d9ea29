package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gaming-collection-backend/internal/domains/game"
	"gaming-collection-backend/internal/shared/query"
)

// gameColumns selects the game row plus the populated genre columns. The
// LEFT JOIN keeps games readable even if their genre was hard-deleted.
const gameColumns = `
	g.id, g.title, g.platform, g.genre_id, g.status, g.price, g.currency,
	g.description, g.release_date, g.image, g.is_active, g.deleted_at,
	g.created_at, g.updated_at,
	ge.name, ge.description`

const gameFrom = ` FROM games g LEFT JOIN genres ge ON g.genre_id = ge.id `

var sortable = query.SortMap{
	"title":       "g.title",
	"price":       "g.price",
	"releaseDate": "g.release_date",
	"createdAt":   "g.created_at",
	"platform":    "g.platform",
	"status":      "g.status",
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) game.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, filter game.Filter, page query.Pageable) ([]game.Game, int, error) {
	b := query.NewBuilder().NotDeleted("g")
	if filter.Platform != "" {
		b.Equal("g.platform", filter.Platform)
	}
	if filter.Status != "" {
		b.Equal("g.status", filter.Status)
	}
	if filter.GenreID != "" {
		id, err := uuid.Parse(filter.GenreID)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid genre filter: %w", err)
		}
		b.Equal("g.genre_id", id)
	}
	if filter.IsActive != nil {
		b.Equal("g.is_active", *filter.IsActive)
	}
	b.Search(filter.Search, "g.title")

	var total int
	countSQL := "SELECT COUNT(*)" + gameFrom + b.Where()
	if err := r.pool.QueryRow(ctx, countSQL, b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count games: %w", err)
	}

	listSQL := fmt.Sprintf("SELECT %s %s %s %s LIMIT $%d OFFSET $%d",
		gameColumns, gameFrom, b.Where(), sortable.OrderBy(filter.Sort, "title"), b.Next(), b.Next()+1)
	args := append(b.Args(), page.Limit, page.Offset())

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games, err := scanGames(rows)
	if err != nil {
		return nil, 0, err
	}
	return games, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*game.Game, error) {
	sql := "SELECT" + gameColumns + gameFrom + "WHERE g.id = $1 AND g.deleted_at IS NULL"
	return r.getOne(ctx, sql, id)
}

func (r *postgresRepository) GetByIDAny(ctx context.Context, id uuid.UUID) (*game.Game, error) {
	sql := "SELECT" + gameColumns + gameFrom + "WHERE g.id = $1"
	return r.getOne(ctx, sql, id)
}

func (r *postgresRepository) Create(ctx context.Context, g *game.Game) (*game.Game, error) {
	sql := `
		INSERT INTO games (title, platform, genre_id, status, price, currency,
			description, release_date, image, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, sql,
		g.Title, g.Platform, g.GenreID, g.Status, g.Price, g.Currency,
		g.Description, g.ReleaseDate, g.Image, g.IsActive,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, g *game.Game) (*game.Game, error) {
	sql := `
		UPDATE games
		SET title = $1, platform = $2, genre_id = $3, status = $4, price = $5,
			currency = $6, description = $7, release_date = $8, image = $9,
			is_active = $10, updated_at = now()
		WHERE id = $11 AND deleted_at IS NULL
		RETURNING id`
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, sql,
		g.Title, g.Platform, g.GenreID, g.Status, g.Price, g.Currency,
		g.Description, g.ReleaseDate, g.Image, g.IsActive, g.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, game.ErrGameNotFound
		}
		return nil, fmt.Errorf("update game: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (*game.Game, error) {
	sql := `
		UPDATE games
		SET deleted_at = $1, is_active = false, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL
		RETURNING id`
	var got uuid.UUID
	if err := r.pool.QueryRow(ctx, sql, at, id).Scan(&got); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, game.ErrGameNotFound
		}
		return nil, fmt.Errorf("soft delete game: %w", err)
	}
	return r.GetByIDAny(ctx, got)
}

func (r *postgresRepository) Restore(ctx context.Context, id uuid.UUID) (*game.Game, error) {
	sql := `
		UPDATE games
		SET deleted_at = NULL, is_active = true, updated_at = now()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING id`
	var got uuid.UUID
	if err := r.pool.QueryRow(ctx, sql, id).Scan(&got); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, game.ErrGameNotFound
		}
		return nil, fmt.Errorf("restore game: %w", err)
	}
	return r.GetByID(ctx, got)
}

func (r *postgresRepository) HardDelete(ctx context.Context, id uuid.UUID) (*game.Game, error) {
	g, err := r.GetByIDAny(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.pool.Exec(ctx, "DELETE FROM games WHERE id = $1", id); err != nil {
		return nil, fmt.Errorf("hard delete game: %w", err)
	}
	return g, nil
}

func (r *postgresRepository) SearchByTitle(ctx context.Context, term string) ([]game.Game, error) {
	b := query.NewBuilder().NotDeleted("g").Search(term, "g.title")
	sql := "SELECT" + gameColumns + gameFrom + b.Where() + " ORDER BY g.title ASC"
	return r.queryMany(ctx, sql, b.Args()...)
}

func (r *postgresRepository) GetByStatus(ctx context.Context, status game.Status) ([]game.Game, error) {
	b := query.NewBuilder().NotDeleted("g").Equal("g.is_active", true).Equal("g.status", status)
	sql := "SELECT" + gameColumns + gameFrom + b.Where() + " ORDER BY g.title ASC"
	return r.queryMany(ctx, sql, b.Args()...)
}

func (r *postgresRepository) GetByPlatform(ctx context.Context, platform game.Platform) ([]game.Game, error) {
	b := query.NewBuilder().NotDeleted("g").Equal("g.is_active", true).Equal("g.platform", platform)
	sql := "SELECT" + gameColumns + gameFrom + b.Where() + " ORDER BY g.title ASC"
	return r.queryMany(ctx, sql, b.Args()...)
}

func (r *postgresRepository) getOne(ctx context.Context, sql string, id uuid.UUID) (*game.Game, error) {
	row := r.pool.QueryRow(ctx, sql, id)
	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, game.ErrGameNotFound
		}
		return nil, fmt.Errorf("get game: %w", err)
	}
	return g, nil
}

func (r *postgresRepository) queryMany(ctx context.Context, sql string, args ...interface{}) ([]game.Game, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()
	return scanGames(rows)
}

func scanGame(row pgx.Row) (*game.Game, error) {
	var g game.Game
	var genreName, genreDescription *string
	err := row.Scan(
		&g.ID, &g.Title, &g.Platform, &g.GenreID, &g.Status, &g.Price, &g.Currency,
		&g.Description, &g.ReleaseDate, &g.Image, &g.IsActive, &g.DeletedAt,
		&g.CreatedAt, &g.UpdatedAt,
		&genreName, &genreDescription,
	)
	if err != nil {
		return nil, err
	}
	if genreName != nil {
		g.Genre = &game.GenreRef{ID: g.GenreID, Name: *genreName, Description: genreDescription}
	}
	return &g, nil
}

func scanGames(rows pgx.Rows) ([]game.Game, error) {
	games := make([]game.Game, 0)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return games, nil
}
