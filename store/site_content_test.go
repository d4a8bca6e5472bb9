package store

import (
	"testing"

	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/stretchr/testify/assert"
)

func TestUpdateSiteContentMergesFooterByKey(t *testing.T) {
	s := newSeeded(t)
	before := s.SiteContent()

	phone := "X"
	after := s.UpdateSiteContent(models.SiteContentPatch{
		FooterContent: &models.FooterContentPatch{Phone: &phone},
	})

	assert.Equal(t, "X", after.FooterContent.Phone)
	assert.Equal(t, before.FooterContent.Address, after.FooterContent.Address)
	assert.Equal(t, before.FooterContent.Email, after.FooterContent.Email)
	assert.Equal(t, before.FooterContent.QuickLinks, after.FooterContent.QuickLinks)
	assert.Equal(t, before.HeroTitle, after.HeroTitle)
	assert.Equal(t, after, s.SiteContent())
}

func TestUpdateSiteContentTopLevel(t *testing.T) {
	s := newSeeded(t)

	title := "Charge Ahead"
	blank := ""
	after := s.UpdateSiteContent(models.SiteContentPatch{HeroTitle: &title, AboutUs: &blank})

	assert.Equal(t, "Charge Ahead", after.HeroTitle)
	assert.NotEmpty(t, after.AboutUs)
	assert.Equal(t, "Pune, Maharashtra, India", after.FooterContent.Address)
}
