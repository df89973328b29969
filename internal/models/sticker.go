package models

// TimeOfDay tags palette stickers with the part of the day they suit.
type TimeOfDay string

// Time-of-day tags. Anytime stickers appear in every filtered view.
const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
	TimeAnytime   TimeOfDay = "anytime"
)

// Valid reports whether t is a known time-of-day tag.
func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeNight, TimeAnytime:
		return true
	}
	return false
}

// Sticker is a palette entry the visitor can place on a moodboard.
type Sticker struct {
	ID        string    `json:"id" yaml:"id"`
	ImageURL  string    `json:"image_url" yaml:"image_url"`
	TimeOfDay TimeOfDay `json:"time_of_day" yaml:"time_of_day"`
}

// PlacedSticker is a decorative image instance positioned on the canvas.
// ZIndex equals the insertion order: new stickers render above older ones.
type PlacedSticker struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Rotation  float64   `json:"rotation"` // degrees
	Scale     float64   `json:"scale"`
	ZIndex    int       `json:"z_index"`
	TimeOfDay TimeOfDay `json:"time_of_day"`
}
