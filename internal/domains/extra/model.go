package extra

import (
	"time"

	"github.com/google/uuid"
)

// Extra is a promotional bonus-content link (playlist, moodboard,
// bonus chapter) shown on the public extras page when active.
type Extra struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Icon         string    `json:"icon" db:"icon"`
	URL          string    `json:"url" db:"url"`
	DisplayOrder int       `json:"order" db:"display_order"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
