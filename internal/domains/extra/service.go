package extra

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for extras management.
type Service interface {
	Create(ctx context.Context, req *CreateExtraRequest) (*Extra, error)

	// ListPublic returns only active extras, in display order
	ListPublic(ctx context.Context) ([]Extra, error)

	// ListAll returns every extra for the admin panel
	ListAll(ctx context.Context) ([]Extra, error)

	Update(ctx context.Context, id uuid.UUID, req *UpdateExtraRequest) (*Extra, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
