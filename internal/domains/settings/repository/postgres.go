package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"authorsite-backend/internal/domains/settings"
)

const settingsColumns = `id, password_hash, author_name, author_bio, author_photo,
	author_email, social_links, hero_image, hero_title, hero_title_color,
	about_title, about_content, about_image, updated_at`

type postgresSettingsRepository struct {
	db *pgxpool.Pool
}

// NewPostgresSettingsRepository creates a PostgreSQL settings repository
func NewPostgresSettingsRepository(db *pgxpool.Pool) settings.Repository {
	return &postgresSettingsRepository{db: db}
}

func scanSettings(row pgx.Row) (*settings.Settings, error) {
	var s settings.Settings
	err := row.Scan(
		&s.ID, &s.PasswordHash, &s.AuthorName, &s.AuthorBio, &s.AuthorPhoto,
		&s.AuthorEmail, &s.SocialLinks, &s.HeroImage, &s.HeroTitle, &s.HeroTitleColor,
		&s.AboutTitle, &s.AboutContent, &s.AboutImage, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	query := fmt.Sprintf(`SELECT %s FROM site_settings WHERE id = $1`, settingsColumns)

	s, err := scanSettings(r.db.QueryRow(ctx, query, settings.SettingsID))
	if err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	return s, nil
}

func (r *postgresSettingsRepository) EnsureDefaults(ctx context.Context, defaults *settings.Settings) error {
	query := `
		INSERT INTO site_settings (
			id, password_hash, author_name, author_bio, author_photo,
			author_email, social_links, hero_image, hero_title, hero_title_color,
			about_title, about_content, about_image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.db.Exec(ctx, query,
		settings.SettingsID, defaults.PasswordHash,
		defaults.AuthorName, defaults.AuthorBio, defaults.AuthorPhoto,
		defaults.AuthorEmail, defaults.SocialLinks,
		defaults.HeroImage, defaults.HeroTitle, defaults.HeroTitleColor,
		defaults.AboutTitle, defaults.AboutContent, defaults.AboutImage,
	)
	if err != nil {
		return fmt.Errorf("failed to seed site settings: %w", err)
	}
	return nil
}

func (r *postgresSettingsRepository) UpdateAuthorProfile(ctx context.Context, profile *settings.AuthorProfile) (*settings.Settings, error) {
	query := fmt.Sprintf(`
		UPDATE site_settings
		SET author_name = $2, author_bio = $3, author_photo = $4,
			author_email = $5, social_links = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, settingsColumns)

	s, err := scanSettings(r.db.QueryRow(ctx, query, settings.SettingsID,
		profile.AuthorName, profile.AuthorBio, profile.AuthorPhoto,
		profile.AuthorEmail, profile.SocialLinks))
	if err != nil {
		return nil, fmt.Errorf("failed to update author profile: %w", err)
	}
	return s, nil
}

func (r *postgresSettingsRepository) UpdateHero(ctx context.Context, hero *settings.HeroSettings) (*settings.Settings, error) {
	query := fmt.Sprintf(`
		UPDATE site_settings
		SET hero_image = $2, hero_title = $3, hero_title_color = $4,
			about_title = $5, about_content = $6, about_image = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, settingsColumns)

	s, err := scanSettings(r.db.QueryRow(ctx, query, settings.SettingsID,
		hero.HeroImage, hero.HeroTitle, hero.HeroTitleColor,
		hero.AboutTitle, hero.AboutContent, hero.AboutImage))
	if err != nil {
		return nil, fmt.Errorf("failed to update hero settings: %w", err)
	}
	return s, nil
}

func (r *postgresSettingsRepository) UpdatePasswordHash(ctx context.Context, currentHash, newHash string) (bool, error) {
	query := `
		UPDATE site_settings
		SET password_hash = $3, updated_at = NOW()
		WHERE id = $1 AND password_hash = $2`

	tag, err := r.db.Exec(ctx, query, settings.SettingsID, currentHash, newHash)
	if err != nil {
		return false, fmt.Errorf("failed to update password hash: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
