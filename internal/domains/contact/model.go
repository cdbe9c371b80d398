package contact

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxNameLength    = 200
	MaxSubjectLength = 300
	MaxMessageLength = 5000
)

// StatusNew marks an inquiry nobody has looked at yet.
const StatusNew = "new"

// Inquiry is one message sent through the contact form. Inquiries are
// append-only; the admin panel reads them but never edits or deletes.
type Inquiry struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Subject     string    `json:"subject" db:"subject"`
	Message     string    `json:"message" db:"message"`
	Status      string    `json:"status" db:"status"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
}
