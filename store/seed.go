package store

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/amandhingra1/charzdev-ev/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the state a store starts from.
type Seed struct {
	Products    []models.Product   `yaml:"products"`
	Reviews     []models.Review    `yaml:"reviews"`
	Orders      []models.Order     `yaml:"orders"`
	SiteContent models.SiteContent `yaml:"siteContent"`
}

var ErrIncompleteSiteContent = errors.New("seed site content is incomplete")

// DefaultSeed returns the built-in catalogue.
func DefaultSeed() (Seed, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeed reads a seed document from path. An empty path means DefaultSeed.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	for i, o := range seed.Orders {
		status, err := models.ParseOrderStatus(string(o.Status))
		if err != nil {
			return Seed{}, fmt.Errorf("seed order %q: %w", o.ID, err)
		}
		seed.Orders[i].Status = status
	}
	if err := checkSiteContent(seed.SiteContent); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// The public site never renders a half-filled record, so a seed must fill
// every field.
func checkSiteContent(c models.SiteContent) error {
	fields := map[string]string{
		"heroImage":             c.HeroImage,
		"heroTitle":             c.HeroTitle,
		"heroSubtitle":          c.HeroSubtitle,
		"aboutUs":               c.AboutUs,
		"footerContent.address": c.FooterContent.Address,
		"footerContent.phone":   c.FooterContent.Phone,
		"footerContent.email":   c.FooterContent.Email,
	}
	for name, v := range fields {
		if v == "" {
			return fmt.Errorf("%w: %s is empty", ErrIncompleteSiteContent, name)
		}
	}
	if len(c.FooterContent.QuickLinks) == 0 {
		return fmt.Errorf("%w: footerContent.quickLinks is empty", ErrIncompleteSiteContent)
	}
	return nil
}
