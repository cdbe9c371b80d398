package settings

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// LoginRequest - POST /admin/login
type LoginRequest struct {
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse carries the admin session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ChangePasswordRequest - POST /admin/change-password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(MinPasswordLen, 128)),
	)
}

// UpdateAuthorRequest - PUT /admin/author. The whole author section is
// replaced; omitted optional fields become empty.
type UpdateAuthorRequest struct {
	AuthorName  string            `json:"author_name"`
	AuthorBio   string            `json:"author_bio"`
	AuthorPhoto string            `json:"author_photo"`
	AuthorEmail string            `json:"author_email"`
	SocialLinks map[string]string `json:"social_links"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorName, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&r.AuthorEmail, is.EmailFormat),
	)
}

// ToProfile converts the request into the replacement author section.
func (r *UpdateAuthorRequest) ToProfile() *AuthorProfile {
	links := r.SocialLinks
	if links == nil {
		links = map[string]string{}
	}
	return &AuthorProfile{
		AuthorName:  r.AuthorName,
		AuthorBio:   r.AuthorBio,
		AuthorPhoto: r.AuthorPhoto,
		AuthorEmail: r.AuthorEmail,
		SocialLinks: links,
	}
}

// UpdateHeroRequest - PUT /admin/hero. Full replace, same contract as
// the author section.
type UpdateHeroRequest struct {
	HeroImage      string `json:"hero_image"`
	HeroTitle      string `json:"hero_title"`
	HeroTitleColor string `json:"hero_title_color"`
	AboutTitle     string `json:"about_title"`
	AboutContent   string `json:"about_content"`
	AboutImage     string `json:"about_image"`
}

func (r UpdateHeroRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.HeroTitle, validation.Required, validation.Length(1, MaxTitleLength)),
	)
}

// ToHero converts the request into the replacement hero section.
func (r *UpdateHeroRequest) ToHero() *HeroSettings {
	return &HeroSettings{
		HeroImage:      r.HeroImage,
		HeroTitle:      r.HeroTitle,
		HeroTitleColor: r.HeroTitleColor,
		AboutTitle:     r.AboutTitle,
		AboutContent:   r.AboutContent,
		AboutImage:     r.AboutImage,
	}
}
