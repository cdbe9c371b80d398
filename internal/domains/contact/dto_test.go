package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateInquiryRequest_Validate(t *testing.T) {
	valid := CreateInquiryRequest{
		Name:    "A Reader",
		Email:   "reader@example.com",
		Message: "Loved the last book.",
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateInquiryRequest)
		wantErr bool
	}{
		{"valid", func(r *CreateInquiryRequest) {}, false},
		{"valid with subject", func(r *CreateInquiryRequest) { r.Subject = "Fan mail" }, false},
		// Format check must not depend on the domain resolving.
		{"short unresolvable domain", func(r *CreateInquiryRequest) { r.Email = "a@b.com" }, false},
		{"unregistered domain", func(r *CreateInquiryRequest) { r.Email = "reader@no-such-host.invalid" }, false},
		{"missing name", func(r *CreateInquiryRequest) { r.Name = "" }, true},
		{"missing email", func(r *CreateInquiryRequest) { r.Email = "" }, true},
		{"bad email", func(r *CreateInquiryRequest) { r.Email = "nope" }, true},
		{"missing message", func(r *CreateInquiryRequest) { r.Message = "" }, true},
		{"message too long", func(r *CreateInquiryRequest) { r.Message = strings.Repeat("x", MaxMessageLength+1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateInquiryRequest_ToEntityTrims(t *testing.T) {
	req := CreateInquiryRequest{
		Name:    "  A Reader ",
		Email:   " reader@example.com ",
		Message: " Hello ",
	}

	inquiry := req.ToEntity()

	assert.Equal(t, "A Reader", inquiry.Name)
	assert.Equal(t, "reader@example.com", inquiry.Email)
	assert.Equal(t, "Hello", inquiry.Message)
}
