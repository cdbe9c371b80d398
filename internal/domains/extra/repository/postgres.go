package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"authorsite-backend/internal/domains/extra"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) extra.Repository {
	return &postgresRepository{pool: pool}
}

const extraColumns = `id, title, description, icon, url, display_order, active, created_at, updated_at`

func scanExtra(row pgx.Row) (*extra.Extra, error) {
	var e extra.Extra
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Icon,
		&e.URL,
		&e.DisplayOrder,
		&e.Active,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepository) Create(ctx context.Context, e *extra.Extra) (*extra.Extra, error) {
	query := `
        INSERT INTO extras (title, description, icon, url, display_order, active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + extraColumns

	created, err := scanExtra(r.pool.QueryRow(
		ctx, query, e.Title, e.Description, e.Icon, e.URL, e.DisplayOrder, e.Active,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create extra: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*extra.Extra, error) {
	query := `SELECT ` + extraColumns + ` FROM extras WHERE id = $1`

	e, err := scanExtra(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, extra.ErrExtraNotFound
		}
		return nil, fmt.Errorf("failed to get extra by id: %w", err)
	}

	return e, nil
}

func (r *postgresRepository) List(ctx context.Context, activeOnly bool) ([]extra.Extra, error) {
	query := `SELECT ` + extraColumns + ` FROM extras`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY display_order ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list extras: %w", err)
	}
	defer rows.Close()

	extras := []extra.Extra{}
	for rows.Next() {
		e, err := scanExtra(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan extra row: %w", err)
		}
		extras = append(extras, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate extra rows: %w", err)
	}

	return extras, nil
}

func (r *postgresRepository) Update(ctx context.Context, e *extra.Extra) (*extra.Extra, error) {
	query := `
        UPDATE extras
        SET title = $2, description = $3, icon = $4, url = $5,
            display_order = $6, active = $7, updated_at = now()
        WHERE id = $1
        RETURNING ` + extraColumns

	updated, err := scanExtra(r.pool.QueryRow(
		ctx, query, e.ID, e.Title, e.Description, e.Icon, e.URL, e.DisplayOrder, e.Active,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, extra.ErrExtraNotFound
		}
		return nil, fmt.Errorf("failed to update extra: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM extras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete extra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return extra.ErrExtraNotFound
	}
	return nil
}
