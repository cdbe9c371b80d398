package settings

import "context"

// Service defines business logic for site settings and admin auth.
type Service interface {
	// GetAuthorProfile returns the public author section
	GetAuthorProfile(ctx context.Context) (*AuthorProfile, error)

	// GetHero returns the public hero/about section
	GetHero(ctx context.Context) (*HeroSettings, error)

	// Login verifies the admin password and issues a session token.
	// Errors: ErrInvalidCredentials.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// ChangePassword replaces the admin credential. Errors:
	// ErrInvalidCredentials (current mismatch), ErrWeakPassword.
	ChangePassword(ctx context.Context, req *ChangePasswordRequest) error

	// ReplaceAuthorProfile overwrites the author section
	ReplaceAuthorProfile(ctx context.Context, req *UpdateAuthorRequest) (*AuthorProfile, error)

	// ReplaceHero overwrites the hero/about section
	ReplaceHero(ctx context.Context, req *UpdateHeroRequest) (*HeroSettings, error)
}
