// Package entity defines the domain entities for the verification feature.
package entity

import "time"

// EmailVerification is one issued verification code.
//
// At most one record per address is live at a time: issuing a new code
// deletes every prior record for the address before inserting. Expired
// records are not swept; they linger until superseded.
type EmailVerification struct {
	// ID is the unique identifier for the record.
	ID uint `gorm:"primaryKey"`

	// Email is the address the code was issued for.
	Email string `gorm:"index;size:255;not null"`

	// Code is the 6-digit numeral, stored as a string.
	Code string `gorm:"size:6;not null"`

	// ExpiresAt is the instant after which the code no longer redeems.
	ExpiresAt time.Time `gorm:"not null"`

	// Verified is set when the code is consumed.
	Verified bool `gorm:"not null"`

	// CreatedAt is the timestamp when the code was issued.
	CreatedAt time.Time
}

// Expired reports whether the code is past its expiry at the given instant.
// A code presented exactly at ExpiresAt still redeems.
func (v *EmailVerification) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
