package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"authorsite-backend/internal/domains/faq"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) faq.Repository {
	return &postgresRepository{pool: pool}
}

const faqColumns = `id, category, questions, display_order, created_at, updated_at`

func scanCategory(row pgx.Row) (*faq.Category, error) {
	var c faq.Category
	err := row.Scan(
		&c.ID,
		&c.Category,
		&c.Questions,
		&c.DisplayOrder,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *faq.Category) (*faq.Category, error) {
	query := `
        INSERT INTO faqs (category, questions, display_order)
        VALUES ($1, $2, $3)
        RETURNING ` + faqColumns

	created, err := scanCategory(r.pool.QueryRow(ctx, query, c.Category, c.Questions, c.DisplayOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*faq.Category, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs WHERE id = $1`

	c, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, faq.ErrFaqNotFound
		}
		return nil, fmt.Errorf("failed to get faq by id: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]faq.Category, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs ORDER BY display_order ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	categories := []faq.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan faq row: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate faq rows: %w", err)
	}

	return categories, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *faq.Category) (*faq.Category, error) {
	query := `
        UPDATE faqs
        SET category = $2, questions = $3, display_order = $4, updated_at = now()
        WHERE id = $1
        RETURNING ` + faqColumns

	updated, err := scanCategory(r.pool.QueryRow(ctx, query, c.ID, c.Category, c.Questions, c.DisplayOrder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, faq.ErrFaqNotFound
		}
		return nil, fmt.Errorf("failed to update faq: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return faq.ErrFaqNotFound
	}
	return nil
}
