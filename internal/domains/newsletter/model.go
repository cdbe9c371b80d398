package newsletter

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subscriber is one newsletter signup. Records are never deleted;
// unsubscribing flips Active off and a later resubscribe reactivates.
type Subscriber struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
	Active       bool      `json:"active" db:"active"`
}

// NormalizeEmail lowercases and trims an address so uniqueness is
// case-insensitive: A@b.com and a@b.com are the same subscriber.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
