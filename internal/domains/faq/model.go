package faq

import (
	"time"

	"github.com/google/uuid"
)

// Question is one Q&A entry inside a category. A question may carry an
// optional call-to-action link.
type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	HasLink  bool   `json:"has_link"`
	LinkText string `json:"link_text,omitempty"`
	LinkURL  string `json:"link_url,omitempty"`
}

// Category groups questions under a heading. DisplayOrder is
// admin-controlled and not required to be unique or contiguous.
type Category struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Category     string     `json:"category" db:"category"`
	Questions    []Question `json:"questions" db:"questions"`
	DisplayOrder int        `json:"order" db:"display_order"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
