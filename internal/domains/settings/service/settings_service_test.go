package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"authorsite-backend/internal/domains/settings"
	"authorsite-backend/pkg/jwt"
)

// fakeSettingsRepo holds one settings row in memory.
type fakeSettingsRepo struct {
	row settings.Settings
}

func newFakeSettingsRepo(t *testing.T, password string) *fakeSettingsRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &fakeSettingsRepo{
		row: settings.Settings{
			ID:           settings.SettingsID,
			PasswordHash: string(hash),
			AuthorName:   "Heeloly Upasani",
			SocialLinks:  map[string]string{},
			HeroTitle:    "Heeloly Upasani",
		},
	}
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*settings.Settings, error) {
	row := r.row
	return &row, nil
}

func (r *fakeSettingsRepo) EnsureDefaults(ctx context.Context, defaults *settings.Settings) error {
	return nil
}

func (r *fakeSettingsRepo) UpdateAuthorProfile(ctx context.Context, p *settings.AuthorProfile) (*settings.Settings, error) {
	r.row.AuthorName = p.AuthorName
	r.row.AuthorBio = p.AuthorBio
	r.row.AuthorPhoto = p.AuthorPhoto
	r.row.AuthorEmail = p.AuthorEmail
	r.row.SocialLinks = p.SocialLinks
	row := r.row
	return &row, nil
}

func (r *fakeSettingsRepo) UpdateHero(ctx context.Context, h *settings.HeroSettings) (*settings.Settings, error) {
	r.row.HeroImage = h.HeroImage
	r.row.HeroTitle = h.HeroTitle
	r.row.HeroTitleColor = h.HeroTitleColor
	r.row.AboutTitle = h.AboutTitle
	r.row.AboutContent = h.AboutContent
	r.row.AboutImage = h.AboutImage
	row := r.row
	return &row, nil
}

func (r *fakeSettingsRepo) UpdatePasswordHash(ctx context.Context, currentHash, newHash string) (bool, error) {
	if r.row.PasswordHash != currentHash {
		return false, nil
	}
	r.row.PasswordHash = newHash
	return true, nil
}

// noopCache satisfies cache.Cache without storing anything.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}
func (noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, keys ...string) error      { return nil }
func (noopCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (noopCache) Ping(ctx context.Context) error                        { return nil }

func newTestService(t *testing.T, password string) (settings.Service, *fakeSettingsRepo, *jwt.Manager) {
	t.Helper()
	repo := newFakeSettingsRepo(t, password)
	manager := jwt.NewManager("test-secret")
	return NewSettingsService(repo, noopCache{}, manager), repo, manager
}

func TestLogin(t *testing.T) {
	svc, _, manager := newTestService(t, "opensesame")

	res, err := svc.Login(context.Background(), &settings.LoginRequest{Password: "opensesame"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	claims, err := manager.ValidateAdminToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t, "opensesame")

	_, err := svc.Login(context.Background(), &settings.LoginRequest{Password: "guess"})
	assert.ErrorIs(t, err, settings.ErrInvalidCredentials)
}

func TestLogin_EmptyPassword(t *testing.T) {
	svc, _, _ := newTestService(t, "opensesame")

	_, err := svc.Login(context.Background(), &settings.LoginRequest{})
	assert.ErrorIs(t, err, settings.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	svc, repo, _ := newTestService(t, "opensesame")

	err := svc.ChangePassword(context.Background(), &settings.ChangePasswordRequest{
		CurrentPassword: "opensesame",
		NewPassword:     "a-stronger-one",
	})
	require.NoError(t, err)

	// Old password stops working, new one logs in.
	_, err = svc.Login(context.Background(), &settings.LoginRequest{Password: "opensesame"})
	assert.ErrorIs(t, err, settings.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &settings.LoginRequest{Password: "a-stronger-one"})
	assert.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.row.PasswordHash), []byte("a-stronger-one")))
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, _, _ := newTestService(t, "opensesame")

	err := svc.ChangePassword(context.Background(), &settings.ChangePasswordRequest{
		CurrentPassword: "guess",
		NewPassword:     "a-stronger-one",
	})
	assert.ErrorIs(t, err, settings.ErrInvalidCredentials)
}

func TestChangePassword_TooShort(t *testing.T) {
	svc, _, _ := newTestService(t, "opensesame")

	err := svc.ChangePassword(context.Background(), &settings.ChangePasswordRequest{
		CurrentPassword: "opensesame",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, settings.ErrWeakPassword)
}

func TestReplaceAuthorProfile_FullReplace(t *testing.T) {
	svc, repo, _ := newTestService(t, "opensesame")
	repo.row.AuthorBio = "an old bio"

	profile, err := svc.ReplaceAuthorProfile(context.Background(), &settings.UpdateAuthorRequest{
		AuthorName: "Heeloly Upasani",
	})
	require.NoError(t, err)

	// Omitted fields are cleared, not preserved.
	assert.Equal(t, "Heeloly Upasani", profile.AuthorName)
	assert.Empty(t, profile.AuthorBio)
	assert.NotNil(t, profile.SocialLinks)
}

func TestReplaceAuthorProfile_RequiresName(t *testing.T) {
	svc, _, _ := newTestService(t, "opensesame")

	_, err := svc.ReplaceAuthorProfile(context.Background(), &settings.UpdateAuthorRequest{})
	assert.ErrorIs(t, err, settings.ErrInvalidSettings)
}

func TestReplaceHero_FullReplace(t *testing.T) {
	svc, _, _ := newTestService(t, "opensesame")

	hero, err := svc.ReplaceHero(context.Background(), &settings.UpdateHeroRequest{
		HeroTitle:      "Worlds of Shadow",
		HeroTitleColor: "#f5e6c8",
	})
	require.NoError(t, err)
	assert.Equal(t, "Worlds of Shadow", hero.HeroTitle)
	assert.Equal(t, "#f5e6c8", hero.HeroTitleColor)
	assert.Empty(t, hero.AboutContent)
}
