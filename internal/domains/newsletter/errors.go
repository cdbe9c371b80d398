package newsletter

import "errors"

var (
	ErrInvalidEmail      = errors.New("a valid email address is required")
	ErrAlreadySubscribed = errors.New("email already subscribed")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAlreadySubscribed):
		return "ALREADY_SUBSCRIBED"
	case errors.Is(err, ErrInvalidEmail):
		return "INVALID_EMAIL"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAlreadySubscribed):
		return 409
	case errors.Is(err, ErrInvalidEmail):
		return 400
	default:
		return 500
	}
}
