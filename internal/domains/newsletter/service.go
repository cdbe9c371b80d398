package newsletter

import "context"

// Service defines business logic for the newsletter intake.
type Service interface {
	// Subscribe registers an email address. Errors: ErrInvalidEmail,
	// ErrAlreadySubscribed (active duplicate). An inactive earlier
	// subscription is reactivated instead of conflicting.
	Subscribe(ctx context.Context, req *SubscribeRequest) (*Subscriber, error)

	// List returns all subscribers (active and inactive) for the admin panel
	List(ctx context.Context) ([]Subscriber, error)
}
