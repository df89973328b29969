package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Mailer   MailerConfig      `yaml:"mailer"`
	Sessions SessionConfig     `yaml:"sessions"`
	CORS     CORSConfig        `yaml:"cors"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Mailer.Validate(); err != nil {
		return err
	}
	return c.Sessions.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// MailerConfig holds the welcome email provider settings. APIKey is
// typically supplied via environment expansion, e.g. "${RESEND_API_KEY}".
// An empty APIKey disables outbound mail; subscriptions then fail with a
// send error, which is the honest answer when the provider is not set up.
type MailerConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	AppURL  string `yaml:"app_url"`
}

// Validate validates the mailer configuration.
func (c *MailerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.AppURL, validation.Required),
	)
}

// SessionConfig holds planning session lifecycle settings.
type SessionConfig struct {
	MaxIdle       time.Duration `yaml:"max_idle"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// Validate validates the session configuration.
func (c *SessionConfig) Validate() error {
	if c.MaxIdle <= 0 {
		return fmt.Errorf("sessions: max_idle must be positive, got %s", c.MaxIdle)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sessions: sweep_interval must be positive, got %s", c.SweepInterval)
	}
	return nil
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Mailer: MailerConfig{
			AppURL: "http://localhost:8080",
		},
		Sessions: SessionConfig{
			MaxIdle:       2 * time.Hour,
			SweepInterval: 10 * time.Minute,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}
