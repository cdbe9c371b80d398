package faq

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCategoryRequest - POST /admin/faqs
type CreateCategoryRequest struct {
	Category     string     `json:"category"`
	Questions    []Question `json:"questions"`
	DisplayOrder int        `json:"order"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Category, validation.Required, validation.Length(1, 255)),
	)
}

func (r *CreateCategoryRequest) ToEntity() *Category {
	c := &Category{
		Category:     r.Category,
		Questions:    r.Questions,
		DisplayOrder: r.DisplayOrder,
	}
	if c.Questions == nil {
		c.Questions = []Question{}
	}
	return c
}

// UpdateCategoryRequest - PUT /admin/faqs/:id
// Only non-nil fields are applied.
type UpdateCategoryRequest struct {
	Category     *string     `json:"category"`
	Questions    *[]Question `json:"questions"`
	DisplayOrder *int        `json:"order"`
}

func (r UpdateCategoryRequest) Validate() error {
	if r.Category != nil && *r.Category == "" {
		return ErrInvalidCategory
	}
	return nil
}

func (r *UpdateCategoryRequest) ApplyToEntity(c *Category) {
	if r.Category != nil {
		c.Category = *r.Category
	}
	if r.Questions != nil {
		c.Questions = *r.Questions
	}
	if r.DisplayOrder != nil {
		c.DisplayOrder = *r.DisplayOrder
	}
}
