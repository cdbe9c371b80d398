package contact

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateInquiryRequest - POST /contact/inquiry
type CreateInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r CreateInquiryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, MaxNameLength)),
		// Syntax check only, no DNS lookup on the request path.
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Subject, validation.Length(0, MaxSubjectLength)),
		validation.Field(&r.Message, validation.Required, validation.Length(1, MaxMessageLength)),
	)
}

// ToEntity builds an Inquiry with whitespace-trimmed fields. ID and
// SubmittedAt are assigned by the database.
func (r *CreateInquiryRequest) ToEntity() *Inquiry {
	return &Inquiry{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Subject: strings.TrimSpace(r.Subject),
		Message: strings.TrimSpace(r.Message),
	}
}
