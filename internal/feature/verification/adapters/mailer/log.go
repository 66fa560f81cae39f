package mailer

import (
	"context"
	"log/slog"

	"dreamjournal/internal/feature/verification/usecase"
)

// LogMailer writes codes to the log instead of sending mail. Development
// fallback when neither Resend nor SMTP is configured; never use it in
// production.
type LogMailer struct{}

// Compile-time check that LogMailer implements Mailer.
var _ usecase.Mailer = (*LogMailer)(nil)

// SendVerificationCode logs the code.
func (LogMailer) SendVerificationCode(_ context.Context, to, code string) error {
	slog.Info("verification code issued (log mailer)", "to", to, "code", code)
	return nil
}
