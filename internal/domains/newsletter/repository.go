package newsletter

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for newsletter subscribers.
type Repository interface {
	// Create inserts a subscriber with the normalized email.
	// The database enforces uniqueness on lower(email); a violation is
	// returned as ErrAlreadySubscribed, so even two racing subscribes
	// cannot both succeed.
	Create(ctx context.Context, email string) (*Subscriber, error)

	// GetByEmail returns (nil, nil) when the email has never subscribed
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)

	// Reactivate flips an inactive subscription back on with a fresh
	// subscribed_at timestamp
	Reactivate(ctx context.Context, id uuid.UUID) (*Subscriber, error)

	// List returns subscribers newest first
	List(ctx context.Context) ([]Subscriber, error)
}
