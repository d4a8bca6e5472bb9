package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, in := range []string{"pending", "Confirmed", " DELIVERED "} {
		_, err := ParseOrderStatus(in)
		assert.NoError(t, err, in)
	}

	_, err := ParseOrderStatus("shipped")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 1, ClampRating(-3))
	assert.Equal(t, 1, ClampRating(0))
	assert.Equal(t, 4, ClampRating(4))
	assert.Equal(t, 5, ClampRating(9))
}

func TestProductPatchMergesSpecifications(t *testing.T) {
	p := Product{
		Name: "Urban X",
		Specifications: Specifications{
			Range:    "400 km",
			TopSpeed: "180 km/h",
		},
		Features: []string{"Compact Design"},
	}
	speed := "190 km/h"
	ProductPatch{Specifications: &SpecificationsPatch{TopSpeed: &speed}}.Apply(&p)

	assert.Equal(t, "400 km", p.Specifications.Range)
	assert.Equal(t, "190 km/h", p.Specifications.TopSpeed)
	assert.Equal(t, "Urban X", p.Name)
	assert.Equal(t, []string{"Compact Design"}, p.Features)
}

func TestSiteContentPatchKeepsUntouchedFooterFields(t *testing.T) {
	s := SiteContent{
		HeroTitle: "Drive the Future",
		FooterContent: FooterContent{
			Address:    "Pune, Maharashtra, India",
			Phone:      "+91 98348 28850",
			Email:      "info@charzdev.com",
			QuickLinks: []string{"Home"},
		},
	}
	phone := "X"
	empty := ""
	SiteContentPatch{
		HeroTitle:     &empty,
		FooterContent: &FooterContentPatch{Phone: &phone},
	}.Apply(&s)

	assert.Equal(t, "Drive the Future", s.HeroTitle)
	assert.Equal(t, "X", s.FooterContent.Phone)
	assert.Equal(t, "Pune, Maharashtra, India", s.FooterContent.Address)
	assert.Equal(t, "info@charzdev.com", s.FooterContent.Email)
	assert.Equal(t, []string{"Home"}, s.FooterContent.QuickLinks)
}

func TestSiteContentPatchIgnoresBlankValues(t *testing.T) {
	s := SiteContent{
		HeroTitle:     "Drive the Future",
		FooterContent: FooterContent{Email: "info@charzdev.com"},
	}
	blank := "   "
	tagline := "  Charge Ahead \n"
	SiteContentPatch{
		HeroTitle:     &blank,
		HeroSubtitle:  &tagline,
		FooterContent: &FooterContentPatch{Email: &blank},
	}.Apply(&s)

	assert.Equal(t, "Drive the Future", s.HeroTitle)
	assert.Equal(t, "Charge Ahead", s.HeroSubtitle)
	assert.Equal(t, "info@charzdev.com", s.FooterContent.Email)
}
