// Package moodboard implements the sticker placement model for the moodboard
// canvas.
package moodboard

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/skovand/travelease/internal/models"
)

// StickerSize is the fixed bounding-box side of a placed sticker, in canvas
// pixels. Placement keeps this box fully inside the canvas.
const StickerSize = 100

// Rotate/rescale increments applied by the canvas controls.
const (
	RotationStep = 15.0
	ScaleStep    = 0.1
)

// Scale bounds. The site leaves scale unbounded (it can reach zero and flip
// negative); here it is clamped to a sane positive range.
const (
	MinScale = 0.1
	MaxScale = 3.0
)

// Bounds is the canvas extent in pixels.
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Direction selects which way a rotate or rescale control moves.
type Direction int

// Rotate left/right and scale down/up pair onto the same two values.
const (
	DirectionDown Direction = iota // rotate left / scale down
	DirectionUp                    // rotate right / scale up
)

// Board holds the stickers placed on one visitor's canvas.
type Board struct {
	placed []models.PlacedSticker
	bounds Bounds
	rng    *rand.Rand
}

// New creates an empty board over the given canvas bounds.
// rng drives placement randomness; pass a seeded source in tests.
func New(bounds Bounds, rng *rand.Rand) *Board {
	return &Board{bounds: bounds, rng: rng}
}

// Resize records a new canvas extent for subsequent placements and moves.
// A canvas that cannot hold a single sticker is ignored; placement math
// assumes at least StickerSize in each dimension.
func (b *Board) Resize(bounds Bounds) {
	if bounds.Width >= StickerSize && bounds.Height >= StickerSize {
		b.bounds = bounds
	}
}

// Bounds returns the current canvas extent.
func (b *Board) Bounds() Bounds { return b.bounds }

// Place puts a palette sticker onto the canvas at a uniformly random position
// whose bounding box stays inside the canvas, with a random rotation in
// [-15°, 15°], scale 1, and a z-index above every existing sticker.
func (b *Board) Place(template models.Sticker) models.PlacedSticker {
	s := models.PlacedSticker{
		ID:        uuid.NewString(),
		ImageURL:  template.ImageURL,
		X:         b.rng.Float64() * (b.bounds.Width - StickerSize),
		Y:         b.rng.Float64() * (b.bounds.Height - StickerSize),
		Rotation:  b.rng.Float64()*2*RotationStep - RotationStep,
		Scale:     1,
		ZIndex:    len(b.placed) + 1,
		TimeOfDay: template.TimeOfDay,
	}
	b.placed = append(b.placed, s)
	return s
}

// Move updates a sticker's position, clamped to the canvas extent.
// A missing id is a silent no-op.
func (b *Board) Move(id string, x, y float64) {
	if s := b.find(id); s != nil {
		s.X = clamp(x, 0, b.bounds.Width-StickerSize)
		s.Y = clamp(y, 0, b.bounds.Height-StickerSize)
	}
}

// Rotate turns a sticker by one rotation step in the given direction.
func (b *Board) Rotate(id string, dir Direction) {
	if s := b.find(id); s != nil {
		if dir == DirectionUp {
			s.Rotation += RotationStep
		} else {
			s.Rotation -= RotationStep
		}
	}
}

// Rescale grows or shrinks a sticker by one scale step, clamped to
// [MinScale, MaxScale].
func (b *Board) Rescale(id string, dir Direction) {
	if s := b.find(id); s != nil {
		if dir == DirectionUp {
			s.Scale += ScaleStep
		} else {
			s.Scale -= ScaleStep
		}
		s.Scale = clamp(s.Scale, MinScale, MaxScale)
	}
}

// Remove deletes a placed sticker. A missing id is a silent no-op.
func (b *Board) Remove(id string) {
	for i := range b.placed {
		if b.placed[i].ID == id {
			b.placed = append(b.placed[:i], b.placed[i+1:]...)
			return
		}
	}
}

// ClearAll empties the canvas.
func (b *Board) ClearAll() {
	b.placed = b.placed[:0]
}

// Placed returns a copy of the placed stickers in z-order.
func (b *Board) Placed() []models.PlacedSticker {
	return append([]models.PlacedSticker(nil), b.placed...)
}

func (b *Board) find(id string) *models.PlacedSticker {
	for i := range b.placed {
		if b.placed[i].ID == id {
			return &b.placed[i]
		}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
