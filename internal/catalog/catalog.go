// Package catalog holds the static descriptive data the site is built from:
// destinations, travel tips, the sticker palette, the packing seed list,
// and the inspiration section's categories and quotes.
// Everything is embedded at compile time; nothing here is configurable at
// runtime.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/skovand/travelease/internal/apperr"
	"github.com/skovand/travelease/internal/models"
)

//go:embed seed/destinations.yaml
var destinationsYAML []byte

//go:embed seed/tips.yaml
var tipsYAML []byte

//go:embed seed/stickers.yaml
var stickersYAML []byte

//go:embed seed/packing.yaml
var packingYAML []byte

//go:embed seed/inspiration.yaml
var inspirationYAML []byte

// Catalog is the parsed, read-only seed data.
type Catalog struct {
	destinations []models.Destination
	tips         []models.Tip
	stickers     []models.Sticker
	packing      []models.PackingItem
	categories   []models.TravelCategory
	quotes       []models.TravelQuote
}

// Load parses the embedded seed files. It is called once at startup.
func Load() (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(destinationsYAML, &c.destinations); err != nil {
		return nil, fmt.Errorf("catalog: parse destinations: %w", err)
	}
	if err := yaml.Unmarshal(tipsYAML, &c.tips); err != nil {
		return nil, fmt.Errorf("catalog: parse tips: %w", err)
	}
	if err := yaml.Unmarshal(stickersYAML, &c.stickers); err != nil {
		return nil, fmt.Errorf("catalog: parse stickers: %w", err)
	}
	if err := yaml.Unmarshal(packingYAML, &c.packing); err != nil {
		return nil, fmt.Errorf("catalog: parse packing: %w", err)
	}
	var insp struct {
		Categories []models.TravelCategory `yaml:"categories"`
		Quotes     []models.TravelQuote    `yaml:"quotes"`
	}
	if err := yaml.Unmarshal(inspirationYAML, &insp); err != nil {
		return nil, fmt.Errorf("catalog: parse inspiration: %w", err)
	}
	c.categories = insp.Categories
	c.quotes = insp.Quotes
	return c, nil
}

// MustLoad is Load for wiring paths where seed corruption is a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Destinations returns destinations, optionally filtered by region.
// An empty or "all" region returns everything.
func (c *Catalog) Destinations(region string) []models.Destination {
	if region == "" || region == "all" {
		return append([]models.Destination(nil), c.destinations...)
	}
	var out []models.Destination
	for _, d := range c.destinations {
		if string(d.Region) == region {
			out = append(out, d)
		}
	}
	return out
}

// Destination looks up a single destination by id.
func (c *Catalog) Destination(id string) (models.Destination, error) {
	for _, d := range c.destinations {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Destination{}, fmt.Errorf("catalog: destination %q: %w", id, apperr.ErrNotFound)
}

// Tips returns travel tips, optionally filtered by category.
// An empty or "all" category returns everything.
func (c *Catalog) Tips(category string) []models.Tip {
	if category == "" || category == "all" {
		return append([]models.Tip(nil), c.tips...)
	}
	var out []models.Tip
	for _, t := range c.tips {
		if string(t.Category) == category {
			out = append(out, t)
		}
	}
	return out
}

// TipCategories returns the distinct tip categories in seed order.
func (c *Catalog) TipCategories() []string {
	seen := make(map[models.TipCategory]bool)
	var out []string
	for _, t := range c.tips {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, string(t.Category))
		}
	}
	return out
}

// StickersForTime returns palette stickers whose tag equals tod, plus every
// "anytime" sticker. Passing TimeAnytime therefore returns only the anytime
// set, mirroring how the palette behaves on the site.
func (c *Catalog) StickersForTime(tod models.TimeOfDay) []models.Sticker {
	var out []models.Sticker
	for _, s := range c.stickers {
		if s.TimeOfDay == tod || s.TimeOfDay == models.TimeAnytime {
			out = append(out, s)
		}
	}
	return out
}

// StickerByID looks up a palette sticker.
func (c *Catalog) StickerByID(id string) (models.Sticker, error) {
	for _, s := range c.stickers {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Sticker{}, fmt.Errorf("catalog: sticker %q: %w", id, apperr.ErrNotFound)
}

// PackingSeed returns a fresh copy of the packing list with every item
// unpacked. Each session mutates its own copy.
func (c *Catalog) PackingSeed() []models.PackingItem {
	out := make([]models.PackingItem, len(c.packing))
	copy(out, c.packing)
	for i := range out {
		out[i].Packed = false
	}
	return out
}

// TravelCategories returns the themed browsing entries for the
// inspiration section.
func (c *Catalog) TravelCategories() []models.TravelCategory {
	return append([]models.TravelCategory(nil), c.categories...)
}

// Quotes returns up to limit travel quotes in rotation order. The section
// starts at three and loads three more at a time; limit <= 0 or beyond the
// pool returns everything.
func (c *Catalog) Quotes(limit int) []models.TravelQuote {
	if limit <= 0 || limit > len(c.quotes) {
		limit = len(c.quotes)
	}
	return append([]models.TravelQuote(nil), c.quotes[:limit]...)
}

// QuoteCount returns the size of the quote pool.
func (c *Catalog) QuoteCount() int { return len(c.quotes) }

// Featured returns the destinations shown as inspiration cards.
func (c *Catalog) Featured() []models.Destination {
	n := len(c.destinations)
	if n > 6 {
		n = 6
	}
	return append([]models.Destination(nil), c.destinations[:n]...)
}
