package faq

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for FAQ categories.
type Repository interface {
	Create(ctx context.Context, c *Category) (*Category, error)

	// GetByID returns ErrFaqNotFound when absent
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// List returns categories ordered by display_order ascending
	List(ctx context.Context) ([]Category, error)

	// Update persists the full entity; ErrFaqNotFound when the row is gone
	Update(ctx context.Context, c *Category) (*Category, error)

	// Delete is not idempotent; repeat deletes return ErrFaqNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
