package contact

import "context"

// Repository defines data access for contact inquiries.
type Repository interface {
	Create(ctx context.Context, inquiry *Inquiry) (*Inquiry, error)

	// List returns inquiries newest first
	List(ctx context.Context) ([]Inquiry, error)
}
