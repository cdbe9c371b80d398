package settings

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSettings    = errors.New("invalid settings payload")
	ErrWeakPassword       = errors.New("new password is too short")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	case errors.Is(err, ErrWeakPassword):
		return "WEAK_PASSWORD"
	case errors.Is(err, ErrInvalidSettings):
		return "INVALID_SETTINGS"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return 401
	case errors.Is(err, ErrWeakPassword), errors.Is(err, ErrInvalidSettings):
		return 400
	default:
		return 500
	}
}
