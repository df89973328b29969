// Package countdown derives the days/hours/minutes/seconds breakdown of the
// time remaining until a trip.
package countdown

import (
	"time"

	"github.com/skovand/travelease/internal/models"
)

// Remaining computes the breakdown of target minus now. A target in the past
// (or exactly now) yields all-zero fields, never negatives.
func Remaining(target, now time.Time) models.TimeLeft {
	diff := target.Sub(now).Milliseconds()
	if diff <= 0 {
		return models.TimeLeft{}
	}
	return models.TimeLeft{
		Days:    int(diff / (1000 * 60 * 60 * 24)),
		Hours:   int(diff / (1000 * 60 * 60) % 24),
		Minutes: int(diff / 1000 / 60 % 60),
		Seconds: int(diff / 1000 % 60),
	}
}
