package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"authorsite-backend/internal/domains/settings"
	"authorsite-backend/pkg/cache"
	"authorsite-backend/pkg/jwt"
	"authorsite-backend/pkg/logger"
)

const (
	authorCacheKey = "settings:author"
	heroCacheKey   = "settings:hero"
	cacheTTL       = 15 * time.Minute
)

type settingsService struct {
	repo       settings.Repository
	cache      cache.Cache
	jwtManager *jwt.Manager
}

// NewSettingsService creates a settings service
func NewSettingsService(repo settings.Repository, c cache.Cache, jwtManager *jwt.Manager) settings.Service {
	return &settingsService{
		repo:       repo,
		cache:      c,
		jwtManager: jwtManager,
	}
}

func (s *settingsService) GetAuthorProfile(ctx context.Context) (*settings.AuthorProfile, error) {
	var cached settings.AuthorProfile
	if found, err := s.cache.Get(ctx, authorCacheKey, &cached); err != nil {
		logger.Error("author profile cache read failed", err)
	} else if found {
		return &cached, nil
	}

	row, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	profile := row.Author()
	if err := s.cache.Set(ctx, authorCacheKey, profile, cacheTTL); err != nil {
		logger.Error("author profile cache write failed", err)
	}
	return profile, nil
}

func (s *settingsService) GetHero(ctx context.Context) (*settings.HeroSettings, error) {
	var cached settings.HeroSettings
	if found, err := s.cache.Get(ctx, heroCacheKey, &cached); err != nil {
		logger.Error("hero settings cache read failed", err)
	} else if found {
		return &cached, nil
	}

	row, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	hero := row.Hero()
	if err := s.cache.Set(ctx, heroCacheKey, hero, cacheTTL); err != nil {
		logger.Error("hero settings cache write failed", err)
	}
	return hero, nil
}

func (s *settingsService) Login(ctx context.Context, req *settings.LoginRequest) (*settings.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, settings.ErrInvalidCredentials
	}

	row, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(req.Password)); err != nil {
		return nil, settings.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAdminToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &settings.LoginResponse{Token: token}, nil
}

func (s *settingsService) ChangePassword(ctx context.Context, req *settings.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		if req.CurrentPassword == "" {
			return settings.ErrInvalidCredentials
		}
		return fmt.Errorf("%w: %s", settings.ErrWeakPassword, err.Error())
	}

	row, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return settings.ErrInvalidCredentials
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// The swap is guarded on the hash we verified against. If another
	// change landed in between, the guard misses and this one fails.
	ok, err := s.repo.UpdatePasswordHash(ctx, row.PasswordHash, string(newHash))
	if err != nil {
		return err
	}
	if !ok {
		return settings.ErrInvalidCredentials
	}
	return nil
}

func (s *settingsService) ReplaceAuthorProfile(ctx context.Context, req *settings.UpdateAuthorRequest) (*settings.AuthorProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", settings.ErrInvalidSettings, err.Error())
	}

	row, err := s.repo.UpdateAuthorProfile(ctx, req.ToProfile())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, authorCacheKey)
	return row.Author(), nil
}

func (s *settingsService) ReplaceHero(ctx context.Context, req *settings.UpdateHeroRequest) (*settings.HeroSettings, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", settings.ErrInvalidSettings, err.Error())
	}

	row, err := s.repo.UpdateHero(ctx, req.ToHero())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, heroCacheKey)
	return row.Hero(), nil
}

func (s *settingsService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Error("settings cache invalidation failed", err)
	}
}
