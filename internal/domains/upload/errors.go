package upload

import "errors"

var (
	ErrInvalidImage = errors.New("invalid image")
	ErrMissingFile  = errors.New("no file in request")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidImage):
		return "INVALID_IMAGE"
	case errors.Is(err, ErrMissingFile):
		return "MISSING_FILE"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidImage), errors.Is(err, ErrMissingFile):
		return 400
	default:
		return 500
	}
}
