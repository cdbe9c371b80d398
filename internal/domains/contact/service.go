package contact

import "context"

// Service defines business logic for the contact form.
type Service interface {
	// Submit validates and stores an inquiry. Errors: ErrInvalidInquiry.
	Submit(ctx context.Context, req *CreateInquiryRequest) (*Inquiry, error)

	// List returns all inquiries for the admin panel
	List(ctx context.Context) ([]Inquiry, error)
}
