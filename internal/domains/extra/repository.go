package extra

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for extras.
type Repository interface {
	Create(ctx context.Context, e *Extra) (*Extra, error)

	// GetByID returns ErrExtraNotFound when absent
	GetByID(ctx context.Context, id uuid.UUID) (*Extra, error)

	// List returns extras ordered by display_order ascending.
	// When activeOnly is set, inactive extras are filtered out.
	List(ctx context.Context, activeOnly bool) ([]Extra, error)

	// Update persists the full entity; ErrExtraNotFound when the row is gone
	Update(ctx context.Context, e *Extra) (*Extra, error)

	// Delete is not idempotent; repeat deletes return ErrExtraNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
