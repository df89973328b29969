package countdown

import (
	"testing"
	"time"

	"github.com/skovand/travelease/internal/models"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// 1 day, 1 hour, 1 minute, 1 second = 90061 seconds.
	got := Remaining(now.Add(90061*time.Second), now)
	want := models.TimeLeft{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}
	if got != want {
		t.Errorf("90061s out = %+v, want %+v", got, want)
	}
}

func TestRemainingPastTarget(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := Remaining(now.Add(-time.Hour), now); got != (models.TimeLeft{}) {
		t.Errorf("past target = %+v, want all zero", got)
	}
	if got := Remaining(now, now); got != (models.TimeLeft{}) {
		t.Errorf("target == now = %+v, want all zero", got)
	}
}

func TestRemainingSubSecond(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	// 999ms rounds down to zero seconds but is still a positive diff.
	if got := Remaining(now.Add(999*time.Millisecond), now); got != (models.TimeLeft{}) {
		t.Errorf("999ms = %+v, want all zero fields", got)
	}
}

func TestRemainingWholeDays(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got := Remaining(now.AddDate(0, 0, 15), now)
	want := models.TimeLeft{Days: 15}
	if got != want {
		t.Errorf("15d out = %+v, want %+v", got, want)
	}
}
