package newsletter

import (
	"context"
	"sync"
	"time"
)

// State is the subscription form's lifecycle state.
type State string

// Form states. Success auto-reverts to idle; error reverts on the next edit.
const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Messages shown by the form.
const (
	invalidEmailMessage = "Please enter a valid email address"
	// GenericFailure is the fallback when the endpoint gives no usable message.
	GenericFailure = "Failed to subscribe. Please try again."
)

// Auto-revert delays after a successful submission.
const (
	successRevertDelay = 8 * time.Second
	confettiHideDelay  = 7 * time.Second
)

// Subscriber is the network collaborator the flow submits to.
// A nil error means the subscription was accepted.
type Subscriber interface {
	Subscribe(ctx context.Context, email string) error
}

// Flow is the subscription form state machine:
// idle → submitting → {success | error} → idle.
//
// It is safe for concurrent use; transitions apply in call order. After Close
// no transition is applied, so a network response that lands after teardown
// is ignored.
type Flow struct {
	sub Subscriber

	mu       sync.Mutex
	state    State
	email    string
	errMsg   string
	confetti bool
	closed   bool
	timers   []*time.Timer

	successRevert time.Duration
	confettiHide  time.Duration
}

// FlowOption configures a Flow.
type FlowOption func(*Flow)

// WithRevertDelays overrides the success/confetti auto-revert delays.
// Tests use short delays; the form ships with 8s/7s.
func WithRevertDelays(successRevert, confettiHide time.Duration) FlowOption {
	return func(f *Flow) {
		f.successRevert = successRevert
		f.confettiHide = confettiHide
	}
}

// NewFlow creates an idle flow backed by the given collaborator.
func NewFlow(sub Subscriber, opts ...FlowOption) *Flow {
	f := &Flow{
		sub:           sub,
		state:         StateIdle,
		successRevert: successRevertDelay,
		confettiHide:  confettiHideDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current form state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Email returns the current input value.
func (f *Flow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// ErrorMessage returns the message shown in the error state.
func (f *Flow) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// ConfettiVisible reports whether the success confetti is showing.
func (f *Flow) ConfettiVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confetti
}

// SetEmail updates the input value. An edit while in the error state resets
// the form to idle and clears the message.
func (f *Flow) SetEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = email
	if f.state == StateError {
		f.state = StateIdle
		f.errMsg = ""
	}
}

// Submit validates the current input and, if it passes, calls the subscribe
// collaborator. A submit while one is already in flight is rejected (the
// form's submit control is disabled in that state). Submit blocks for the
// duration of the network call.
func (f *Flow) Submit(ctx context.Context) {
	f.mu.Lock()
	if f.closed || f.state == StateSubmitting {
		f.mu.Unlock()
		return
	}
	if !ValidateEmail(f.email) {
		f.state = StateError
		f.errMsg = invalidEmailMessage
		f.mu.Unlock()
		return
	}
	f.state = StateSubmitting
	email := f.email
	f.mu.Unlock()

	err := f.sub.Subscribe(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		// Torn down while the request was in flight; drop the response.
		return
	}
	if err != nil {
		f.state = StateError
		if f.errMsg = err.Error(); f.errMsg == "" {
			f.errMsg = GenericFailure
		}
		return
	}

	f.state = StateSuccess
	f.confetti = true
	f.email = ""
	f.timers = append(f.timers,
		time.AfterFunc(f.confettiHide, f.hideConfetti),
		time.AfterFunc(f.successRevert, f.revertSuccess),
	)
}

func (f *Flow) hideConfetti() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.confetti = false
	}
}

func (f *Flow) revertSuccess() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed && f.state == StateSuccess {
		f.state = StateIdle
	}
}

// Close tears the form down: pending auto-revert timers are stopped and any
// in-flight response is ignored. The flow accepts no further submits.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	for _, t := range f.timers {
		t.Stop()
	}
	f.timers = nil
}
