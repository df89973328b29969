// Package packing implements the packing checklist model.
package packing

import (
	"math"

	"github.com/skovand/travelease/internal/models"
)

// Checklist holds one visitor's packing items. Items are seeded once and only
// their packed flag changes at runtime.
type Checklist struct {
	items []models.PackingItem
}

// New builds a checklist over its own copy of the seed items.
func New(items []models.PackingItem) *Checklist {
	return &Checklist{items: append([]models.PackingItem(nil), items...)}
}

// TogglePacked flips the packed flag on the matching item.
// A missing id is a silent no-op.
func (c *Checklist) TogglePacked(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Packed = !c.items[i].Packed
			return
		}
	}
}

// Items returns a copy of all items in seed order.
func (c *Checklist) Items() []models.PackingItem {
	return append([]models.PackingItem(nil), c.items...)
}

// Partition splits the items into the essential and optional display groups.
// It is a derived view; both slices are copies.
func (c *Checklist) Partition() (essential, optional []models.PackingItem) {
	for _, item := range c.items {
		if item.Essential {
			essential = append(essential, item)
		} else {
			optional = append(optional, item)
		}
	}
	return essential, optional
}

// Summary returns the packing progress. Percent is 0 for an empty list.
func (c *Checklist) Summary() models.PackingSummary {
	s := models.PackingSummary{Total: len(c.items)}
	for _, item := range c.items {
		if item.Packed {
			s.Packed++
		}
	}
	if s.Total > 0 {
		s.Percent = int(math.Round(float64(s.Packed) / float64(s.Total) * 100))
	}
	return s
}
