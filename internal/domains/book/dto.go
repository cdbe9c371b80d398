package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBookRequest - POST /admin/books
type CreateBookRequest struct {
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Series      string    `json:"series"`
	BookNumber  *int      `json:"book_number"`
	CoverImage  string    `json:"cover_image"`
	Blurb       string    `json:"blurb"`
	Genres      []string  `json:"genres"`
	Status      string    `json:"status"`
	ReleaseDate *string   `json:"release_date"`
	BuyLinks    []BuyLink `json:"buy_links"`
}

func (r CreateBookRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, MaxTitleLength)),
		validation.Field(&r.Status, validation.In(StatusAvailable, StatusNewRelease, StatusUpcoming)),
	)
	if err == nil {
		return nil
	}
	// Map field failures to the sentinels the handlers know, so a bad
	// status is not reported as a title problem.
	if fields, ok := err.(validation.Errors); ok {
		if _, bad := fields["title"]; bad {
			if len(r.Title) > MaxTitleLength {
				return ErrTitleTooLong
			}
			return ErrInvalidTitle
		}
		if _, bad := fields["status"]; bad {
			return ErrInvalidStatus
		}
	}
	return err
}

// ToEntity converts the request to a Book, applying the series and status
// defaults the way the admin form leaves them blank.
func (r *CreateBookRequest) ToEntity(defaultAuthor string) *Book {
	b := &Book{
		Title:       r.Title,
		Author:      r.Author,
		Series:      r.Series,
		BookNumber:  r.BookNumber,
		CoverImage:  r.CoverImage,
		Blurb:       r.Blurb,
		Genres:      r.Genres,
		Status:      r.Status,
		ReleaseDate: r.ReleaseDate,
		BuyLinks:    r.BuyLinks,
	}
	if b.Author == "" {
		b.Author = defaultAuthor
	}
	if b.Series == "" {
		b.Series = DefaultSeries
	}
	if b.Status == "" {
		b.Status = StatusAvailable
	}
	if b.Genres == nil {
		b.Genres = []string{}
	}
	if b.BuyLinks == nil {
		b.BuyLinks = []BuyLink{}
	}
	return b
}

// UpdateBookRequest - PUT /admin/books/:id
// All fields optional; only non-nil fields are applied.
type UpdateBookRequest struct {
	Title       *string    `json:"title"`
	Author      *string    `json:"author"`
	Series      *string    `json:"series"`
	BookNumber  *int       `json:"book_number"`
	CoverImage  *string    `json:"cover_image"`
	Blurb       *string    `json:"blurb"`
	Genres      *[]string  `json:"genres"`
	Status      *string    `json:"status"`
	ReleaseDate *string    `json:"release_date"`
	BuyLinks    *[]BuyLink `json:"buy_links"`
}

func (r UpdateBookRequest) Validate() error {
	if r.Title != nil {
		if *r.Title == "" {
			return ErrInvalidTitle
		}
		if len(*r.Title) > MaxTitleLength {
			return ErrTitleTooLong
		}
	}
	if r.Status != nil && !IsValidStatus(*r.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// ApplyToEntity applies non-nil fields to an existing Book
func (r *UpdateBookRequest) ApplyToEntity(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.Series != nil {
		b.Series = *r.Series
	}
	if r.BookNumber != nil {
		b.BookNumber = r.BookNumber
	}
	if r.CoverImage != nil {
		b.CoverImage = *r.CoverImage
	}
	if r.Blurb != nil {
		b.Blurb = *r.Blurb
	}
	if r.Genres != nil {
		b.Genres = *r.Genres
	}
	if r.Status != nil {
		b.Status = *r.Status
	}
	if r.ReleaseDate != nil {
		b.ReleaseDate = r.ReleaseDate
	}
	if r.BuyLinks != nil {
		b.BuyLinks = *r.BuyLinks
	}
}

// ListFilter narrows the public listing.
// Group "available" includes new releases; "upcoming" stands alone.
type ListFilter struct {
	Status string `form:"status"`
}
