// Package models defines the domain types for TravelEase.
package models

import "time"

// Priority ranks an activity within a day.
type Priority string

// Activity priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Activity is a single scheduled item within a trip day.
type Activity struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Time        string   `json:"time"` // "15:04" wall-clock time
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Priority    Priority `json:"priority"`
}

// TripDay holds one calendar day's worth of itinerary state.
type TripDay struct {
	Date       time.Time  `json:"date"`
	Notes      string     `json:"notes"`
	Activities []Activity `json:"activities"`
}
