package models

// TimeLeft is the derived breakdown of the time remaining until a trip.
// All fields are zero once the trip date has passed.
type TimeLeft struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}
