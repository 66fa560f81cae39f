package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	authentity "dreamjournal/internal/feature/auth/domain/entity"
	"dreamjournal/internal/feature/verification/usecase"
)

// userDirectoryGorm is the GORM implementation of the UserDirectory
// interface. It reads the auth feature's users table directly, exposing only
// the slice the verification flow needs.
type userDirectoryGorm struct {
	db *gorm.DB
}

// Compile-time check that userDirectoryGorm implements UserDirectory.
var _ usecase.UserDirectory = (*userDirectoryGorm)(nil)

// NewUserDirectoryGorm creates a new userDirectoryGorm instance with the
// given gorm.DB handle.
func NewUserDirectoryGorm(db *gorm.DB) *userDirectoryGorm {
	return &userDirectoryGorm{db: db}
}

// EmailVerifiedAt returns the account ID for the address and its email
// verification time, nil when unverified.
// Returns usecase.ErrUserNotFound when no account exists.
func (r *userDirectoryGorm) EmailVerifiedAt(ctx context.Context, email string) (uint, *time.Time, error) {
	var u authentity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("id").First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, usecase.ErrUserNotFound
		}
		return 0, nil, err
	}
	return u.ID, u.EmailVerificationTime, nil
}

// SetEmailVerified stamps the account's email verification time.
func (r *userDirectoryGorm) SetEmailVerified(ctx context.Context, userID uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&authentity.User{}).
		Where("id = ?", userID).
		Update("email_verification_time", at).Error
}
