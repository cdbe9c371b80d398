package newsletter

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubscribeRequest - POST /newsletter/subscribe
type SubscribeRequest struct {
	Email string `json:"email"`
}

func (r SubscribeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		// EmailFormat checks syntax only. is.Email resolves the domain
		// over DNS, which would block the request path and reject
		// addresses on unresolvable hosts.
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
	)
}
