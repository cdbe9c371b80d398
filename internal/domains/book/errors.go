package book

import "errors"

var (
	// Validation errors
	ErrInvalidTitle  = errors.New("book title is required")
	ErrTitleTooLong  = errors.New("book title exceeds maximum length")
	ErrInvalidStatus = errors.New("book status must be available, new-release or upcoming")

	// Business rule errors
	ErrBookNotFound = errors.New("book not found")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrTitleTooLong):
		return "INVALID_TITLE"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrTitleTooLong), errors.Is(err, ErrInvalidStatus):
		return 400
	default:
		return 500
	}
}
