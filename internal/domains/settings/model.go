package settings

import "time"

// SettingsID is the fixed primary key of the single settings row. The
// migration seeds it; application code only ever reads and updates it.
const SettingsID = "site_settings"

const (
	MaxNameLength  = 200
	MaxTitleLength = 300
	MinPasswordLen = 8
)

// Settings is the site-wide singleton: the admin credential plus the
// author profile and hero/about sections rendered by the public site.
type Settings struct {
	ID           string `json:"-" db:"id"`
	PasswordHash string `json:"-" db:"password_hash"`

	AuthorName  string            `json:"author_name" db:"author_name"`
	AuthorBio   string            `json:"author_bio" db:"author_bio"`
	AuthorPhoto string            `json:"author_photo" db:"author_photo"`
	AuthorEmail string            `json:"author_email" db:"author_email"`
	SocialLinks map[string]string `json:"social_links" db:"social_links"`

	HeroImage      string `json:"hero_image" db:"hero_image"`
	HeroTitle      string `json:"hero_title" db:"hero_title"`
	HeroTitleColor string `json:"hero_title_color" db:"hero_title_color"`
	AboutTitle     string `json:"about_title" db:"about_title"`
	AboutContent   string `json:"about_content" db:"about_content"`
	AboutImage     string `json:"about_image" db:"about_image"`

	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AuthorProfile is the public author section of the settings row.
type AuthorProfile struct {
	AuthorName  string            `json:"author_name"`
	AuthorBio   string            `json:"author_bio"`
	AuthorPhoto string            `json:"author_photo"`
	AuthorEmail string            `json:"author_email"`
	SocialLinks map[string]string `json:"social_links"`
}

// HeroSettings is the public hero/about section of the settings row.
type HeroSettings struct {
	HeroImage      string `json:"hero_image"`
	HeroTitle      string `json:"hero_title"`
	HeroTitleColor string `json:"hero_title_color"`
	AboutTitle     string `json:"about_title"`
	AboutContent   string `json:"about_content"`
	AboutImage     string `json:"about_image"`
}

// Author extracts the author profile section.
func (s *Settings) Author() *AuthorProfile {
	return &AuthorProfile{
		AuthorName:  s.AuthorName,
		AuthorBio:   s.AuthorBio,
		AuthorPhoto: s.AuthorPhoto,
		AuthorEmail: s.AuthorEmail,
		SocialLinks: s.SocialLinks,
	}
}

// Hero extracts the hero/about section.
func (s *Settings) Hero() *HeroSettings {
	return &HeroSettings{
		HeroImage:      s.HeroImage,
		HeroTitle:      s.HeroTitle,
		HeroTitleColor: s.HeroTitleColor,
		AboutTitle:     s.AboutTitle,
		AboutContent:   s.AboutContent,
		AboutImage:     s.AboutImage,
	}
}
