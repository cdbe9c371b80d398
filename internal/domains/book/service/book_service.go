package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"authorsite-backend/internal/domains/book"
	"authorsite-backend/pkg/cache"
	"authorsite-backend/pkg/logger"
)

const (
	listCacheKeyPrefix = "books:list:"
	listCacheTTL       = 15 * time.Minute
)

// BookService implements book.Service
type BookService struct {
	repo          book.Repository
	cache         cache.Cache
	defaultAuthor string
}

func NewBookService(repo book.Repository, c cache.Cache, defaultAuthor string) book.Service {
	return &BookService{
		repo:          repo,
		cache:         c,
		defaultAuthor: defaultAuthor,
	}
}

func (s *BookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity(s.defaultAuthor))
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return created, nil
}

func (s *BookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookService) List(ctx context.Context, filter book.ListFilter) ([]book.Book, error) {
	cacheKey := listCacheKeyPrefix + filter.Status
	if filter.Status == "" {
		cacheKey = listCacheKeyPrefix + "all"
	}

	var cached []book.Book
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return cached, nil
	}
	if err != nil {
		// Cache trouble must not break public reads
		logger.Error("book list cache read failed", err)
	}

	books, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, books, listCacheTTL); err != nil {
		logger.Error("book list cache write failed", err)
	}

	return books, nil
}

func (s *BookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return updated, nil
}

func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

// invalidateListCache drops every cached listing so the public API reflects
// the mutation immediately.
func (s *BookService) invalidateListCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, listCacheKeyPrefix+"*"); err != nil {
		logger.Error("book list cache invalidation failed", err)
	}
}
