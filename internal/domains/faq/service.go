package faq

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for FAQ management.
type Service interface {
	Create(ctx context.Context, req *CreateCategoryRequest) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
