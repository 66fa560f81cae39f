package mailer

import (
	"fmt"

	"dreamjournal/internal/feature/verification/usecase"
)

const bodyTemplate = `
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <h1 style="color: #3b82f6;">Verify Your Email</h1>
        <p>Welcome to Dream Journal! Please verify your email address by entering this code:</p>
        <div style="background: #f3f4f6; padding: 20px; border-radius: 8px; text-align: center; margin: 20px 0;">
          <h2 style="color: #1f2937; font-size: 32px; letter-spacing: 4px; margin: 0;">%s</h2>
        </div>
        <p>This code will expire in %d minutes.</p>
        <p>If you didn't request this verification, you can safely ignore this email.</p>
      </div>
    `

// verificationBody renders the HTML body carrying a verification code.
func verificationBody(code string) string {
	return fmt.Sprintf(bodyTemplate, code, int(usecase.CodeTTL.Minutes()))
}
