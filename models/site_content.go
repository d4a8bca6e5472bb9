package models

import "strings"

type FooterContent struct {
	Address    string   `json:"address" yaml:"address"`
	Phone      string   `json:"phone" yaml:"phone"`
	Email      string   `json:"email" yaml:"email"`
	QuickLinks []string `json:"quickLinks" yaml:"quickLinks"`
}

// SiteContent is the singleton record behind the hero, about-us and footer.
type SiteContent struct {
	HeroImage     string        `json:"heroImage" yaml:"heroImage"`
	HeroTitle     string        `json:"heroTitle" yaml:"heroTitle"`
	HeroSubtitle  string        `json:"heroSubtitle" yaml:"heroSubtitle"`
	AboutUs       string        `json:"aboutUs" yaml:"aboutUs"`
	FooterContent FooterContent `json:"footerContent" yaml:"footerContent"`
}

func (s SiteContent) Clone() SiteContent {
	s.FooterContent.QuickLinks = append([]string(nil), s.FooterContent.QuickLinks...)
	return s
}

type FooterContentPatch struct {
	Address    *string   `json:"address"`
	Phone      *string   `json:"phone"`
	Email      *string   `json:"email"`
	QuickLinks *[]string `json:"quickLinks"`
}

type SiteContentPatch struct {
	HeroImage     *string             `json:"heroImage"`
	HeroTitle     *string             `json:"heroTitle"`
	HeroSubtitle  *string             `json:"heroSubtitle"`
	AboutUs       *string             `json:"aboutUs"`
	FooterContent *FooterContentPatch `json:"footerContent"`
}

// Apply merges top-level fields and then the footer key by key. Empty values
// are skipped so a populated record never loses a field.
func (patch SiteContentPatch) Apply(s *SiteContent) {
	setIfPresent(&s.HeroImage, patch.HeroImage)
	setIfPresent(&s.HeroTitle, patch.HeroTitle)
	setIfPresent(&s.HeroSubtitle, patch.HeroSubtitle)
	setIfPresent(&s.AboutUs, patch.AboutUs)

	f := patch.FooterContent
	if f == nil {
		return
	}
	setIfPresent(&s.FooterContent.Address, f.Address)
	setIfPresent(&s.FooterContent.Phone, f.Phone)
	setIfPresent(&s.FooterContent.Email, f.Email)
	if f.QuickLinks != nil && len(*f.QuickLinks) > 0 {
		s.FooterContent.QuickLinks = append([]string(nil), (*f.QuickLinks)...)
	}
}

// setIfPresent ignores nil and blank values, so no field can be emptied.
func setIfPresent(dst *string, v *string) {
	if v == nil {
		return
	}
	if trimmed := strings.TrimSpace(*v); trimmed != "" {
		*dst = trimmed
	}
}
