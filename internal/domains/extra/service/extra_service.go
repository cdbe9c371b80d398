package service

import (
	"context"

	"github.com/google/uuid"

	"authorsite-backend/internal/domains/extra"
)

// ExtraService implements extra.Service
type ExtraService struct {
	repo extra.Repository
}

func NewExtraService(repo extra.Repository) extra.Service {
	return &ExtraService{repo: repo}
}

func (s *ExtraService) Create(ctx context.Context, req *extra.CreateExtraRequest) (*extra.Extra, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *ExtraService) ListPublic(ctx context.Context) ([]extra.Extra, error) {
	return s.repo.List(ctx, true)
}

func (s *ExtraService) ListAll(ctx context.Context) ([]extra.Extra, error) {
	return s.repo.List(ctx, false)
}

func (s *ExtraService) Update(ctx context.Context, id uuid.UUID, req *extra.UpdateExtraRequest) (*extra.Extra, error) {
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

func (s *ExtraService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
