package upload

import "context"

// Service defines business logic for image uploads.
type Service interface {
	// Upload validates an image, stores the original plus resized
	// variants, and returns their URLs. Errors: ErrInvalidImage.
	// Nothing is written to storage when validation fails.
	Upload(ctx context.Context, data []byte) (*Result, error)
}
