package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"dreamjournal/internal/feature/verification/usecase"
	"dreamjournal/internal/shared/ratelimiter"
)

// SMTPMailer delivers verification mail through a plain SMTP relay. It is
// the transport used when no Resend API key is configured.
type SMTPMailer struct {
	cfg     Config
	limiter *ratelimiter.Limiter
}

// Compile-time check that SMTPMailer implements Mailer.
var _ usecase.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a new SMTPMailer with the given configuration and
// optional send limiter.
func NewSMTPMailer(cfg Config, limiter *ratelimiter.Limiter) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, limiter: limiter}
}

// SendVerificationCode dispatches a verification code to the address.
func (m *SMTPMailer) SendVerificationCode(ctx context.Context, to, code string) error {
	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(m.cfg.Subject)
	msg.SetBodyString(mail.TypeTextHTML, verificationBody(code))

	opts := []mail.Option{
		mail.WithPort(m.cfg.SMTPPort),
		mail.WithTimeout(m.cfg.Timeout),
	}
	if m.cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.SMTPUsername),
			mail.WithPassword(m.cfg.SMTPPassword),
		)
	}
	client, err := mail.NewClient(m.cfg.SMTPHost, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
