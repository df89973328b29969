// Package planner implements the day-by-day trip itinerary model.
package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/skovand/travelease/internal/models"
)

// Defaults applied to newly added activities.
const (
	DefaultActivityTitle       = "New Activity"
	DefaultActivityTime        = "12:00"
	DefaultActivityDescription = "Add description here"
)

// Duration limits for a trip, matching the site's duration input.
const (
	MinDurationDays = 1
	MaxDurationDays = 30
)

// Itinerary holds one visitor's trip plan: destination, departure date, and a
// fixed-length run of consecutive trip days. The day count always equals the
// configured duration; changing the date, destination, or duration rebuilds
// the whole sequence and discards prior edits.
type Itinerary struct {
	destination string
	tripDate    time.Time
	duration    int
	days        []models.TripDay
	activeDay   int
}

// New builds an itinerary and generates its day sequence.
// A duration outside [MinDurationDays, MaxDurationDays] is clamped.
func New(destination string, tripDate time.Time, durationDays int) *Itinerary {
	it := &Itinerary{}
	it.Regenerate(destination, tripDate, durationDays)
	return it
}

// Regenerate rebuilds the day sequence from scratch: day i gets the date
// tripDate + i days, empty notes, and no activities. All prior activities and
// notes are discarded; there is no migration of earlier edits.
func (it *Itinerary) Regenerate(destination string, tripDate time.Time, durationDays int) {
	if durationDays < MinDurationDays {
		durationDays = MinDurationDays
	}
	if durationDays > MaxDurationDays {
		durationDays = MaxDurationDays
	}

	days := make([]models.TripDay, durationDays)
	for i := range days {
		days[i] = models.TripDay{
			Date:       tripDate.AddDate(0, 0, i),
			Activities: []models.Activity{},
		}
	}

	it.destination = destination
	it.tripDate = tripDate
	it.duration = durationDays
	it.days = days
	it.activeDay = 0
}

// Destination returns the trip destination.
func (it *Itinerary) Destination() string { return it.destination }

// TripDate returns the departure date, the countdown target.
func (it *Itinerary) TripDate() time.Time { return it.tripDate }

// Duration returns the trip length in days.
func (it *Itinerary) Duration() int { return it.duration }

// Days returns a copy of the day sequence.
func (it *Itinerary) Days() []models.TripDay {
	out := make([]models.TripDay, len(it.days))
	for i, d := range it.days {
		d.Activities = append([]models.Activity(nil), d.Activities...)
		out[i] = d
	}
	return out
}

// ActiveDay returns the index of the day currently displayed.
func (it *Itinerary) ActiveDay() int { return it.activeDay }

// SetActiveDay switches which day is displayed and edited. It changes no
// data. An out-of-range index is ignored.
func (it *Itinerary) SetActiveDay(i int) {
	if i >= 0 && i < len(it.days) {
		it.activeDay = i
	}
}

// AddActivity appends a new activity with default fields to the active day
// and returns it.
func (it *Itinerary) AddActivity() models.Activity {
	a := models.Activity{
		ID:          uuid.NewString(),
		Title:       DefaultActivityTitle,
		Time:        DefaultActivityTime,
		Description: DefaultActivityDescription,
		Priority:    models.PriorityMedium,
	}
	day := &it.days[it.activeDay]
	day.Activities = append(day.Activities, a)
	return a
}

// ActivityPatch is a set of optional field updates for one activity.
// Nil fields are left untouched.
type ActivityPatch struct {
	Title       *string
	Time        *string
	Description *string
	Location    *string
	Priority    *models.Priority
}

// UpdateActivity applies patch to the activity with the given id on the
// active day only. A missing id is a silent no-op; ids are internally
// generated, so a miss means the entry was already removed. Returns whether
// an activity was updated.
func (it *Itinerary) UpdateActivity(id string, patch ActivityPatch) bool {
	day := &it.days[it.activeDay]
	for i := range day.Activities {
		if day.Activities[i].ID != id {
			continue
		}
		a := &day.Activities[i]
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.Time != nil {
			a.Time = *patch.Time
		}
		if patch.Description != nil {
			a.Description = *patch.Description
		}
		if patch.Location != nil {
			a.Location = *patch.Location
		}
		if patch.Priority != nil && patch.Priority.Valid() {
			a.Priority = *patch.Priority
		}
		return true
	}
	return false
}

// DeleteActivity removes the activity with the given id from the active day.
// A missing id is a silent no-op.
func (it *Itinerary) DeleteActivity(id string) {
	day := &it.days[it.activeDay]
	for i := range day.Activities {
		if day.Activities[i].ID == id {
			day.Activities = append(day.Activities[:i], day.Activities[i+1:]...)
			return
		}
	}
}

// UpdateNotes replaces the active day's notes text.
func (it *Itinerary) UpdateNotes(notes string) {
	it.days[it.activeDay].Notes = notes
}
