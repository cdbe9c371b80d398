package book

import (
	"time"

	"github.com/google/uuid"
)

// Publication status values. The public site groups available and
// new-release together; upcoming is listed separately.
const (
	StatusAvailable  = "available"
	StatusNewRelease = "new-release"
	StatusUpcoming   = "upcoming"
)

const (
	DefaultSeries  = "Standalone"
	MaxTitleLength = 255
)

// BuyLink is one retailer link shown on a book card.
type BuyLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Book is the domain entity for a published or announced title.
type Book struct {
	ID uuid.UUID `json:"id" db:"id"`

	Title      string `json:"title" db:"title"`
	Author     string `json:"author" db:"author"`
	Series     string `json:"series" db:"series"`
	BookNumber *int   `json:"book_number,omitempty" db:"book_number"`

	CoverImage string   `json:"cover_image" db:"cover_image"`
	Blurb      string   `json:"blurb" db:"blurb"`
	Genres     []string `json:"genres" db:"genres"`

	Status      string    `json:"status" db:"status"`
	ReleaseDate *string   `json:"release_date,omitempty" db:"release_date"`
	BuyLinks    []BuyLink `json:"buy_links" db:"buy_links"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidStatus reports whether s is one of the known publication states.
func IsValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusNewRelease, StatusUpcoming:
		return true
	}
	return false
}

// IsUpcoming reports whether the book belongs in the upcoming group.
func (b *Book) IsUpcoming() bool {
	return b.Status == StatusUpcoming
}
