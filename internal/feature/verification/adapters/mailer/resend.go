package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"dreamjournal/internal/feature/verification/usecase"
	"dreamjournal/internal/shared/ratelimiter"
)

// ResendMailer delivers verification mail through the Resend HTTP API.
type ResendMailer struct {
	cfg     Config
	client  *http.Client
	limiter *ratelimiter.Limiter
}

// Compile-time check that ResendMailer implements Mailer.
var _ usecase.Mailer = (*ResendMailer)(nil)

// NewResendMailer creates a new ResendMailer with the given configuration,
// HTTP client and optional send limiter.
func NewResendMailer(cfg Config, client *http.Client, limiter *ratelimiter.Limiter) *ResendMailer {
	return &ResendMailer{cfg: cfg, client: client, limiter: limiter}
}

// sendRequest is the Resend /emails request body.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// errorResponse is the Resend error body.
type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// SendVerificationCode dispatches a verification code to the address.
func (m *ResendMailer) SendVerificationCode(ctx context.Context, to, code string) error {
	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	payload, err := json.Marshal(sendRequest{
		From:    m.cfg.From,
		To:      []string{to},
		Subject: m.cfg.Subject,
		HTML:    verificationBody(code),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.cfg.ResendBaseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.ResendAPIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		var body errorResponse
		if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Message != "" {
			return fmt.Errorf("resend http %d: %s", res.StatusCode, body.Message)
		}
		return fmt.Errorf("resend http %d", res.StatusCode)
	}
	return nil
}
