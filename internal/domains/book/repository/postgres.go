package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"authorsite-backend/internal/domains/book"
)

// postgresRepository implements book.Repository on pgxpool.
// Genres and buy_links live in jsonb columns; pgx marshals them
// through encoding/json on both sides.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `id, title, author, series, book_number, cover_image, blurb,
       genres, status, release_date, buy_links, created_at, updated_at`

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Series,
		&b.BookNumber,
		&b.CoverImage,
		&b.Blurb,
		&b.Genres,
		&b.Status,
		&b.ReleaseDate,
		&b.BuyLinks,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, author, series, book_number, cover_image, blurb,
                           genres, status, release_date, buy_links)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + bookColumns

	created, err := scanBook(r.pool.QueryRow(
		ctx,
		query,
		b.Title,
		b.Author,
		b.Series,
		b.BookNumber,
		b.CoverImage,
		b.Blurb,
		b.Genres,
		b.Status,
		b.ReleaseDate,
		b.BuyLinks,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) List(ctx context.Context, filter book.ListFilter) ([]book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books`
	args := []interface{}{}

	// "available" groups new releases with available titles
	switch filter.Status {
	case book.StatusAvailable:
		query += ` WHERE status IN ($1, $2)`
		args = append(args, book.StatusAvailable, book.StatusNewRelease)
	case book.StatusUpcoming:
		query += ` WHERE status = $1`
		args = append(args, book.StatusUpcoming)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate book rows: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET title = $2, author = $3, series = $4, book_number = $5,
            cover_image = $6, blurb = $7, genres = $8, status = $9,
            release_date = $10, buy_links = $11, updated_at = now()
        WHERE id = $1
        RETURNING ` + bookColumns

	updated, err := scanBook(r.pool.QueryRow(
		ctx,
		query,
		b.ID,
		b.Title,
		b.Author,
		b.Series,
		b.BookNumber,
		b.CoverImage,
		b.Blurb,
		b.Genres,
		b.Status,
		b.ReleaseDate,
		b.BuyLinks,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Row deleted between read and write; the delete wins.
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}
