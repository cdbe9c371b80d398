package contact

import "errors"

var ErrInvalidInquiry = errors.New("invalid inquiry")

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInquiry):
		return "INVALID_INQUIRY"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInquiry):
		return 400
	default:
		return 500
	}
}
