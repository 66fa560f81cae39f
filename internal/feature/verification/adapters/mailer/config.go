// Package mailer provides the mail transport implementations behind the
// verification usecase's Mailer interface.
package mailer

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds mail transport configuration. A Resend API key selects the
// Resend HTTP transport; otherwise an SMTP host selects the SMTP transport.
type Config struct {
	From    string `envconfig:"MAIL_FROM" default:"Dream Journal <noreply@dreamjournal.example.com>"`
	Subject string `envconfig:"MAIL_SUBJECT" default:"Verify your Dream Journal account"`

	ResendAPIKey  string `envconfig:"RESEND_API_KEY"`
	ResendBaseURL string `envconfig:"RESEND_BASE_URL" default:"https://api.resend.com"`

	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`

	Timeout time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
}

// LoadConfig loads mail configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
