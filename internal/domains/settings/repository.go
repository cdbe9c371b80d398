package settings

import "context"

// Repository defines data access for the settings singleton.
type Repository interface {
	// Get returns the singleton row. The migration seeds it, so a
	// missing row is an internal error, not a 404.
	Get(ctx context.Context) (*Settings, error)

	// EnsureDefaults inserts the singleton when it does not exist yet.
	// Existing rows are left untouched.
	EnsureDefaults(ctx context.Context, defaults *Settings) error

	// UpdateAuthorProfile replaces the author section
	UpdateAuthorProfile(ctx context.Context, profile *AuthorProfile) (*Settings, error)

	// UpdateHero replaces the hero/about section
	UpdateHero(ctx context.Context, hero *HeroSettings) (*Settings, error)

	// UpdatePasswordHash swaps the credential only when currentHash is
	// still in place, so two concurrent changes cannot both win.
	// Returns false when the row no longer carries currentHash.
	UpdatePasswordHash(ctx context.Context, currentHash, newHash string) (bool, error)
}
