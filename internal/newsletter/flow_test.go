package newsletter

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// subscriberFunc adapts a function to the Subscriber interface.
type subscriberFunc func(ctx context.Context, email string) error

func (f subscriberFunc) Subscribe(ctx context.Context, email string) error {
	return f(ctx, email)
}

func TestSubmitInvalidEmailSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	f := NewFlow(subscriberFunc(func(context.Context, string) error {
		calls.Add(1)
		return nil
	}))

	f.SetEmail("not-an-email")
	f.Submit(context.Background())

	if f.State() != StateError {
		t.Fatalf("state = %s, want error", f.State())
	}
	if f.ErrorMessage() != "Please enter a valid email address" {
		t.Errorf("message = %q", f.ErrorMessage())
	}
	if calls.Load() != 0 {
		t.Errorf("collaborator called %d times, want 0", calls.Load())
	}
}

func TestSubmitSuccess(t *testing.T) {
	f := NewFlow(subscriberFunc(func(context.Context, string) error {
		return nil
	}), WithRevertDelays(time.Hour, time.Hour))
	defer f.Close()

	f.SetEmail("user@example.com")
	f.Submit(context.Background())

	if f.State() != StateSuccess {
		t.Fatalf("state = %s, want success", f.State())
	}
	if f.Email() != "" {
		t.Errorf("email = %q, want cleared", f.Email())
	}
	if !f.ConfettiVisible() {
		t.Error("confetti not showing after success")
	}
}

func TestSuccessAutoReverts(t *testing.T) {
	f := NewFlow(subscriberFunc(func(context.Context, string) error {
		return nil
	}), WithRevertDelays(40*time.Millisecond, 20*time.Millisecond))
	defer f.Close()

	f.SetEmail("user@example.com")
	f.Submit(context.Background())

	deadline := time.Now().Add(time.Second)
	for f.ConfettiVisible() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if f.ConfettiVisible() {
		t.Fatal("confetti never hidden")
	}
	if f.State() != StateSuccess {
		t.Fatalf("state = %s before revert delay, want success", f.State())
	}

	for f.State() != StateIdle && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if f.State() != StateIdle {
		t.Fatal("success never reverted to idle")
	}
}

func TestSubmitServerError(t *testing.T) {
	f := NewFlow(subscriberFunc(func(context.Context, string) error {
		return errors.New("Failed to send welcome email")
	}))
	defer f.Close()

	f.SetEmail("user@example.com")
	f.Submit(context.Background())

	if f.State() != StateError {
		t.Fatalf("state = %s, want error", f.State())
	}
	if f.ErrorMessage() != "Failed to send welcome email" {
		t.Errorf("message = %q", f.ErrorMessage())
	}

	// Error sticks until the next edit, then resets to idle.
	if f.State() != StateError {
		t.Fatal("error state did not persist")
	}
	f.SetEmail("user2@example.com")
	if f.State() != StateIdle || f.ErrorMessage() != "" {
		t.Errorf("after edit: state = %s, message = %q", f.State(), f.ErrorMessage())
	}
}

func TestSecondSubmitWhileSubmittingIsRejected(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	f := NewFlow(subscriberFunc(func(context.Context, string) error {
		calls.Add(1)
		<-release
		return nil
	}), WithRevertDelays(time.Hour, time.Hour))
	defer f.Close()

	f.SetEmail("user@example.com")
	done := make(chan struct{})
	go func() {
		f.Submit(context.Background())
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for f.State() != StateSubmitting && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if f.State() != StateSubmitting {
		t.Fatal("first submit never reached submitting")
	}

	// Second submit must be a no-op while the first is in flight.
	f.Submit(context.Background())
	if calls.Load() != 1 {
		t.Fatalf("collaborator called %d times, want 1", calls.Load())
	}

	close(release)
	<-done
	if f.State() != StateSuccess {
		t.Errorf("state = %s, want success", f.State())
	}
}

func TestLateResponseAfterCloseIsIgnored(t *testing.T) {
	release := make(chan struct{})
	f := NewFlow(subscriberFunc(func(context.Context, string) error {
		<-release
		return nil
	}))

	f.SetEmail("user@example.com")
	done := make(chan struct{})
	go func() {
		f.Submit(context.Background())
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for f.State() != StateSubmitting && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	f.Close()
	close(release)
	<-done

	if f.State() == StateSuccess {
		t.Error("late response mutated state after Close")
	}
	if f.ConfettiVisible() {
		t.Error("confetti shown after Close")
	}
}
