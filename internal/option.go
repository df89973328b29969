package internal

import "github.com/skovand/travelease/internal/mailer"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	mailer mailer.Sender
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithMailer overrides the welcome email sender. Used by tests to avoid
// real provider calls.
func WithMailer(m mailer.Sender) Option {
	return func(a *application) {
		a.mailer = m
	}
}
