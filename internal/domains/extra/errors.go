package extra

import "errors"

var (
	ErrInvalidTitle  = errors.New("extra title is required")
	ErrInvalidURL    = errors.New("extra url is missing or not a valid url")
	ErrExtraNotFound = errors.New("extra not found")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrExtraNotFound):
		return "EXTRA_NOT_FOUND"
	case errors.Is(err, ErrInvalidTitle):
		return "INVALID_TITLE"
	case errors.Is(err, ErrInvalidURL):
		return "INVALID_URL"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrExtraNotFound):
		return 404
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidURL):
		return 400
	default:
		return 500
	}
}
