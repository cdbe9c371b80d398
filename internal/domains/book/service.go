package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the book catalog.
type Service interface {
	// Create validates the request and inserts a new book.
	// Blank author/series/status fall back to their defaults.
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	// GetByID returns a single book. Errors: ErrBookNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// List returns the catalog newest first. The result is cached;
	// every mutation invalidates the cache so public reads see admin
	// changes immediately.
	List(ctx context.Context, filter ListFilter) ([]Book, error)

	// Update applies a partial update. Errors: ErrBookNotFound,
	// ErrInvalidStatus, ErrInvalidTitle.
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*Book, error)

	// Delete removes a book. Errors: ErrBookNotFound (also on repeat delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
