// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Account providers.
const (
	ProviderPassword  = "password"
	ProviderOAuth     = "oauth"
	ProviderAnonymous = "anonymous"
)

// User represents an account in the journal.
//
// Email may be empty for anonymous accounts. Email is deliberately not
// unique: the same address can exist once per provider, and account linking
// merges such accounts after verification.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the address used for login and verification.
	// Empty for anonymous accounts.
	Email string `gorm:"index;size:255"`

	// Password is the bcrypt hash for password accounts.
	// Empty for accounts created by external providers.
	Password string `gorm:"size:255"`

	// Provider records how the account was created.
	Provider string `gorm:"size:32;not null;default:password"`

	// EmailVerificationTime is set when a verification code is redeemed.
	// Nil means the address is unverified.
	EmailVerificationTime *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// Verified reports whether the account passes the verified-caller gate.
// Accounts without an email address are always treated as verified.
func (u *User) Verified() bool {
	return u.Email == "" || u.EmailVerificationTime != nil
}
