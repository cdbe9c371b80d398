package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCategoryRequest_Validate(t *testing.T) {
	assert.NoError(t, CreateCategoryRequest{Category: "Reading Order"}.Validate())
	assert.Error(t, CreateCategoryRequest{}.Validate())
}

func TestCreateCategoryRequest_ToEntity(t *testing.T) {
	req := CreateCategoryRequest{Category: "Reading Order", DisplayOrder: 3}

	c := req.ToEntity()

	assert.Equal(t, "Reading Order", c.Category)
	assert.Equal(t, 3, c.DisplayOrder)
	assert.NotNil(t, c.Questions)
}

func TestUpdateCategoryRequest_ApplyToEntityPartial(t *testing.T) {
	c := &Category{
		Category: "Reading Order",
		Questions: []Question{
			{Question: "Where do I start?", Answer: "Book one.", HasLink: true, LinkText: "Books", LinkURL: "/books"},
		},
		DisplayOrder: 1,
	}

	order := 5
	req := UpdateCategoryRequest{DisplayOrder: &order}
	req.ApplyToEntity(c)

	assert.Equal(t, 5, c.DisplayOrder)
	assert.Equal(t, "Reading Order", c.Category)
	assert.Len(t, c.Questions, 1)
}

func TestUpdateCategoryRequest_Validate(t *testing.T) {
	empty := ""
	assert.NoError(t, UpdateCategoryRequest{}.Validate())
	assert.ErrorIs(t, UpdateCategoryRequest{Category: &empty}.Validate(), ErrInvalidCategory)
}
