package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"authorsite-backend/internal/domains/faq"
)

// FaqService implements faq.Service
type FaqService struct {
	repo faq.Repository
}

func NewFaqService(repo faq.Repository) faq.Service {
	return &FaqService{repo: repo}
}

func (s *FaqService) Create(ctx context.Context, req *faq.CreateCategoryRequest) (*faq.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", faq.ErrInvalidCategory, err)
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *FaqService) List(ctx context.Context) ([]faq.Category, error) {
	return s.repo.List(ctx)
}

func (s *FaqService) Update(ctx context.Context, id uuid.UUID, req *faq.UpdateCategoryRequest) (*faq.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)
	return s.repo.Update(ctx, existing)
}

func (s *FaqService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
