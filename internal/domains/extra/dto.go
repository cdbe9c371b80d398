package extra

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateExtraRequest - POST /admin/extras
type CreateExtraRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"order"`
	Active       *bool  `json:"active"`
}

func (r CreateExtraRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.URL, validation.Required, is.URL),
	)
	if err == nil {
		return nil
	}
	if fields, ok := err.(validation.Errors); ok {
		if _, bad := fields["title"]; bad {
			return ErrInvalidTitle
		}
		if _, bad := fields["url"]; bad {
			return ErrInvalidURL
		}
	}
	return err
}

func (r *CreateExtraRequest) ToEntity() *Extra {
	e := &Extra{
		Title:        r.Title,
		Description:  r.Description,
		Icon:         NormalizeIcon(r.Icon),
		URL:          r.URL,
		DisplayOrder: r.DisplayOrder,
		Active:       true,
	}
	if r.Active != nil {
		e.Active = *r.Active
	}
	return e
}

// UpdateExtraRequest - PUT /admin/extras/:id
// Only non-nil fields are applied.
type UpdateExtraRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	URL          *string `json:"url"`
	DisplayOrder *int    `json:"order"`
	Active       *bool   `json:"active"`
}

func (r UpdateExtraRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return ErrInvalidTitle
	}
	if r.URL != nil && *r.URL == "" {
		return ErrInvalidURL
	}
	return nil
}

func (r *UpdateExtraRequest) ApplyToEntity(e *Extra) {
	if r.Title != nil {
		e.Title = *r.Title
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Icon != nil {
		e.Icon = NormalizeIcon(*r.Icon)
	}
	if r.URL != nil {
		e.URL = *r.URL
	}
	if r.DisplayOrder != nil {
		e.DisplayOrder = *r.DisplayOrder
	}
	if r.Active != nil {
		e.Active = *r.Active
	}
}
