package profile

import (
	"errors"
	"strings"
)

// ErrInvalidProfile indicates a profile without a name.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile is the filmmaker's about-page data.
type Profile struct {
	Name        string       `json:"name" yaml:"name"`
	Title       string       `json:"title" yaml:"title"`
	Bio         string       `json:"bio" yaml:"bio"`
	PhotoURL    string       `json:"photo_url,omitempty" yaml:"photo_url,omitempty"`
	Email       string       `json:"email,omitempty" yaml:"email,omitempty"`
	Skills      []string     `json:"skills" yaml:"skills"`
	Education   []Education  `json:"education" yaml:"education"`
	SocialLinks []SocialLink `json:"social_links" yaml:"social_links"`
}

// Education is one entry of the profile's education history.
type Education struct {
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	Years       string `json:"years" yaml:"years"`
}

// SocialLink points at an external profile.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

// Validate checks the fields the about view cannot render without.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidProfile
	}
	return nil
}

// Normalized returns p with nil lists replaced by empty ones.
func (p Profile) Normalized() Profile {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.SocialLinks == nil {
		p.SocialLinks = []SocialLink{}
	}
	return p
}
