package di

import (
	"log/slog"
	"time"

	"dreamjournal/internal/feature/verification/adapters/mailer"
	"dreamjournal/internal/feature/verification/usecase"
	infrahttp "dreamjournal/internal/platform/http"
	"dreamjournal/internal/shared/ratelimiter"
)

// NewMailer selects the verification mail transport from the environment:
// Resend when an API key is set, SMTP when a host is set, and otherwise a
// log-only mailer for development.
func NewMailer() (usecase.Mailer, error) {
	cfg, err := mailer.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Resend allows 2 requests per second on the send endpoint.
	limiter := ratelimiter.New(2, time.Second)

	switch {
	case cfg.ResendAPIKey != "":
		httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
		return mailer.NewResendMailer(cfg, httpClient, limiter), nil
	case cfg.SMTPHost != "":
		return mailer.NewSMTPMailer(cfg, limiter), nil
	default:
		slog.Warn("no mail transport configured, verification codes will only be logged")
		return mailer.LogMailer{}, nil
	}
}
