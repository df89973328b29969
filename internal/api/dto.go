package api

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/skovand/travelease/internal/models"
	"github.com/skovand/travelease/internal/moodboard"
	"github.com/skovand/travelease/internal/planner"
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// SubscribeRequest is the request body for the newsletter subscription endpoint.
type SubscribeRequest struct {
	Email string `json:"email" example:"traveler@example.com" validate:"required"`
}

// SubscribeResponse is returned after a successful subscription.
type SubscribeResponse struct {
	Success bool   `json:"success" example:"true" validate:"required"`
	Message string `json:"message" example:"Subscription successful!" validate:"required"`
	ID      string `json:"id" example:"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"`
}

// CreateSessionRequest starts a planning session. All fields are optional;
// omitted fields fall back to the starter trip.
type CreateSessionRequest struct {
	Destination  string `json:"destination,omitempty" example:"Kyoto, Japan"`
	StartDate    string `json:"start_date,omitempty" example:"2026-10-01"`
	DurationDays int    `json:"duration_days,omitempty" example:"7"`
}

// Validate checks field ranges on the session create request.
func (r CreateSessionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StartDate, validation.Date("2006-01-02")),
		validation.Field(&r.DurationDays, validation.Min(0), validation.Max(planner.MaxDurationDays)),
	)
}

// UpdateTripRequest changes the trip header and regenerates the itinerary.
type UpdateTripRequest struct {
	Destination  string `json:"destination,omitempty" example:"Lisbon, Portugal"`
	StartDate    string `json:"start_date,omitempty" example:"2026-11-15"`
	DurationDays int    `json:"duration_days,omitempty" example:"10"`
}

// Validate checks field ranges on the trip update request.
func (r UpdateTripRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StartDate, validation.Date("2006-01-02")),
		validation.Field(&r.DurationDays, validation.Min(0), validation.Max(planner.MaxDurationDays)),
	)
}

// ActiveDayRequest selects which itinerary day is being edited.
type ActiveDayRequest struct {
	Index int `json:"index" example:"2" validate:"required"`
}

// NotesRequest replaces the notes text of the active day.
type NotesRequest struct {
	Notes string `json:"notes" example:"Book the ferry before noon." validate:"required"`
}

// ActivityPatchRequest carries the editable fields of an activity.
// Only fields present in the body are applied.
type ActivityPatchRequest struct {
	Title       *string `json:"title,omitempty" example:"Sunset sail"`
	Time        *string `json:"time,omitempty" example:"18:30"`
	Description *string `json:"description,omitempty" example:"Catamaran from the old port."`
	Location    *string `json:"location,omitempty" example:"Vlychada Marina"`
	Priority    *string `json:"priority,omitempty" example:"high"`
}

// Validate checks the optional fields of an activity patch.
func (r ActivityPatchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Time, validation.Match(timePattern)),
		validation.Field(&r.Priority, validation.In("high", "medium", "low")),
	)
}

func (r ActivityPatchRequest) patch() planner.ActivityPatch {
	p := planner.ActivityPatch{
		Title:       r.Title,
		Time:        r.Time,
		Description: r.Description,
		Location:    r.Location,
	}
	if r.Priority != nil {
		pr := models.Priority(*r.Priority)
		p.Priority = &pr
	}
	return p
}

// CanvasDTO describes the moodboard canvas bounds in CSS pixels.
type CanvasDTO struct {
	Width  float64 `json:"width" example:"800" validate:"required"`
	Height float64 `json:"height" example:"600" validate:"required"`
}

// Validate requires a canvas that can hold at least one sticker.
func (c CanvasDTO) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Width, validation.Required, validation.Min(float64(moodboard.StickerSize))),
		validation.Field(&c.Height, validation.Required, validation.Min(float64(moodboard.StickerSize))),
	)
}

// PlaceStickerRequest drops a palette sticker onto the moodboard.
// Canvas, when present, resizes the board before placement.
type PlaceStickerRequest struct {
	StickerID string     `json:"sticker_id" example:"s12" validate:"required"`
	Canvas    *CanvasDTO `json:"canvas,omitempty"`
}

// Validate checks the sticker placement request.
func (r PlaceStickerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StickerID, validation.Required),
		validation.Field(&r.Canvas),
	)
}

// StickerOpRequest applies a single adjustment to a placed sticker.
// Op is one of move, rotate or rescale. Move requires X and Y;
// rotate and rescale step by a fixed amount in the given direction.
type StickerOpRequest struct {
	Op        string   `json:"op" example:"rotate" validate:"required"`
	X         *float64 `json:"x,omitempty" example:"240"`
	Y         *float64 `json:"y,omitempty" example:"120"`
	Direction string   `json:"direction,omitempty" example:"left"`
}

// Validate checks the sticker adjustment request.
func (r StickerOpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Op, validation.Required, validation.In("move", "rotate", "rescale")),
		validation.Field(&r.X, validation.Required.When(r.Op == "move")),
		validation.Field(&r.Y, validation.Required.When(r.Op == "move")),
		validation.Field(&r.Direction,
			validation.Required.When(r.Op == "rotate" || r.Op == "rescale"),
			validation.In("left", "right", "up", "down")),
	)
}

func (r StickerOpRequest) direction() moodboard.Direction {
	switch r.Direction {
	case "right", "up":
		return moodboard.DirectionUp
	default:
		return moodboard.DirectionDown
	}
}

// SessionResponse is the full state of a planning session.
type SessionResponse struct {
	ID           string                 `json:"id" validate:"required"`
	Destination  string                 `json:"destination" example:"Santorini, Greece" validate:"required"`
	TripDate     string                 `json:"trip_date" example:"2026-09-16" validate:"required"`
	DurationDays int                    `json:"duration_days" example:"7" validate:"required"`
	ActiveDay    int                    `json:"active_day" example:"0" validate:"required"`
	Days         []models.TripDay       `json:"days" validate:"required"`
	Stickers     []models.PlacedSticker `json:"stickers" validate:"required"`
	Canvas       CanvasDTO              `json:"canvas" validate:"required"`
	Packing      PackingResponse        `json:"packing" validate:"required"`
}

// PackingResponse groups the checklist by importance along with the
// running completion summary.
type PackingResponse struct {
	Essential []models.PackingItem  `json:"essential" validate:"required"`
	Optional  []models.PackingItem  `json:"optional" validate:"required"`
	Summary   models.PackingSummary `json:"summary" validate:"required"`
}

// DestinationListResponse wraps a destination listing.
type DestinationListResponse struct {
	Destinations []models.Destination `json:"destinations" validate:"required"`
	Total        int                  `json:"total" example:"6" validate:"required"`
}

// TipListResponse wraps a travel tip listing.
type TipListResponse struct {
	Tips       []models.Tip `json:"tips" validate:"required"`
	Categories []string     `json:"categories" validate:"required"`
}

// StickerListResponse wraps the sticker palette for a time of day.
type StickerListResponse struct {
	Stickers []models.Sticker `json:"stickers" validate:"required"`
}

// InspirationResponse is the home page inspiration section: featured
// destination cards, themed categories, and a pageable quote rotation.
type InspirationResponse struct {
	Featured    []models.Destination    `json:"featured" validate:"required"`
	Categories  []models.TravelCategory `json:"categories" validate:"required"`
	Quotes      []models.TravelQuote    `json:"quotes" validate:"required"`
	TotalQuotes int                     `json:"total_quotes" example:"9" validate:"required"`
}
