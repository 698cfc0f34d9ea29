package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gaming-collection-backend/internal/domains/genre"
	"gaming-collection-backend/internal/shared/query"
)

const genreColumns = "id, name, description, is_active, deleted_at, created_at, updated_at"

// sortable maps the exposed sort names to their columns. Anything else
// falls back to name.
var sortable = query.SortMap{
	"name":      "name",
	"createdAt": "created_at",
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) genre.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, filter genre.Filter, page query.Pageable) ([]genre.Genre, int, error) {
	b := query.NewBuilder().NotDeleted("")
	if filter.IsActive != nil {
		b.Equal("is_active", *filter.IsActive)
	}
	b.Search(filter.Search, "name", "description")

	// Count and fetch share the same predicate; no transaction wraps them.
	var total int
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM genres %s", b.Where())
	if err := r.pool.QueryRow(ctx, countSQL, b.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count genres: %w", err)
	}

	listSQL := fmt.Sprintf(
		"SELECT %s FROM genres %s %s LIMIT $%d OFFSET $%d",
		genreColumns, b.Where(), sortable.OrderBy(filter.Sort, "name"), b.Next(), b.Next()+1,
	)
	args := append(b.Args(), page.Limit, page.Offset())

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	genres, err := scanGenres(rows)
	if err != nil {
		return nil, 0, err
	}
	return genres, total, nil
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]genre.Genre, error) {
	sql := fmt.Sprintf(
		"SELECT %s FROM genres WHERE deleted_at IS NULL AND is_active = true ORDER BY name ASC",
		genreColumns,
	)

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list active genres: %w", err)
	}
	defer rows.Close()

	return scanGenres(rows)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	sql := fmt.Sprintf("SELECT %s FROM genres WHERE id = $1 AND deleted_at IS NULL", genreColumns)
	return r.getOne(ctx, sql, id)
}

func (r *postgresRepository) GetByIDAny(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	sql := fmt.Sprintf("SELECT %s FROM genres WHERE id = $1", genreColumns)
	return r.getOne(ctx, sql, id)
}

func (r *postgresRepository) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	sql := fmt.Sprintf(`
		INSERT INTO genres (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING %s
	`, genreColumns)

	created, err := r.scanRow(r.pool.QueryRow(ctx, sql, g.Name, g.Description, g.IsActive))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, genre.ErrDuplicateName
		}
		return nil, fmt.Errorf("create genre: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	sql := fmt.Sprintf(`
		UPDATE genres
		SET name = $1, description = $2, is_active = $3, updated_at = now()
		WHERE id = $4 AND deleted_at IS NULL
		RETURNING %s
	`, genreColumns)

	updated, err := r.scanRow(r.pool.QueryRow(ctx, sql, g.Name, g.Description, g.IsActive, g.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		if isUniqueViolation(err) {
			return nil, genre.ErrDuplicateName
		}
		return nil, fmt.Errorf("update genre: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (*genre.Genre, error) {
	sql := fmt.Sprintf(`
		UPDATE genres
		SET deleted_at = $1, is_active = false, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL
		RETURNING %s
	`, genreColumns)

	deleted, err := r.scanRow(r.pool.QueryRow(ctx, sql, at, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("soft delete genre: %w", err)
	}
	return deleted, nil
}

func (r *postgresRepository) Restore(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	sql := fmt.Sprintf(`
		UPDATE genres
		SET deleted_at = NULL, is_active = true, updated_at = now()
		WHERE id = $1
		RETURNING %s
	`, genreColumns)

	restored, err := r.scanRow(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("restore genre: %w", err)
	}
	return restored, nil
}

func (r *postgresRepository) HardDelete(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	sql := fmt.Sprintf("DELETE FROM genres WHERE id = $1 RETURNING %s", genreColumns)

	removed, err := r.scanRow(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("hard delete genre: %w", err)
	}
	return removed, nil
}

func (r *postgresRepository) ExistsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM genres WHERE id = $1 AND deleted_at IS NULL AND is_active = true)",
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check active genre: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) getOne(ctx context.Context, sql string, id uuid.UUID) (*genre.Genre, error) {
	g, err := r.scanRow(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("get genre: %w", err)
	}
	return g, nil
}

func (r *postgresRepository) scanRow(row pgx.Row) (*genre.Genre, error) {
	var g genre.Genre
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&g.IsActive,
		&g.DeletedAt,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanGenres(rows pgx.Rows) ([]genre.Genre, error) {
	genres := make([]genre.Genre, 0)
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.Description,
			&g.IsActive,
			&g.DeletedAt,
			&g.CreatedAt,
			&g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return genres, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
