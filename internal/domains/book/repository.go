package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for books.
type Repository interface {
	// Create inserts a new book and returns it with ID and timestamps set
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns ErrBookNotFound when the id is absent
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// List returns books newest first, optionally narrowed by status group
	List(ctx context.Context, filter ListFilter) ([]Book, error)

	// Update persists the full entity state under its id.
	// Returns ErrBookNotFound when the row vanished (e.g. a concurrent delete).
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete removes the book. Not idempotent: a second delete of the same
	// id returns ErrBookNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
