// Package mailer sends the welcome email to new newsletter subscribers.
package mailer

import "context"

// Sender dispatches the templated welcome email to a subscriber address and
// returns the provider's message id.
type Sender interface {
	SendWelcome(ctx context.Context, email string) (id string, err error)
}
