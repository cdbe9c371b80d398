package faq

import "errors"

var (
	ErrInvalidCategory = errors.New("faq category name is required")
	ErrFaqNotFound     = errors.New("faq not found")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrFaqNotFound):
		return "FAQ_NOT_FOUND"
	case errors.Is(err, ErrInvalidCategory):
		return "INVALID_CATEGORY"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrFaqNotFound):
		return 404
	case errors.Is(err, ErrInvalidCategory):
		return 400
	default:
		return 500
	}
}
