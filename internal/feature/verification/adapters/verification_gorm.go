// Package adapters provides the repository implementations for the
// verification feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dreamjournal/internal/feature/verification/domain/entity"
	"dreamjournal/internal/feature/verification/usecase"
)

// verificationGorm is the GORM implementation of the VerificationRepository
// interface.
type verificationGorm struct {
	db *gorm.DB
}

// Compile-time check that verificationGorm implements VerificationRepository.
var _ usecase.VerificationRepository = (*verificationGorm)(nil)

// NewVerificationGorm creates a new verificationGorm instance with the given
// gorm.DB handle.
func NewVerificationGorm(db *gorm.DB) *verificationGorm {
	return &verificationGorm{db: db}
}

// DeleteByEmail removes every record for the address.
func (r *verificationGorm) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&entity.EmailVerification{}).Error
}

// Create persists a new record.
func (r *verificationGorm) Create(ctx context.Context, v *entity.EmailVerification) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// FindByEmailAndCode retrieves the record exactly matching the pair.
// Returns usecase.ErrCodeNotFound when none exists.
func (r *verificationGorm) FindByEmailAndCode(ctx context.Context, email, code string) (*entity.EmailVerification, error) {
	var v entity.EmailVerification
	if err := r.db.WithContext(ctx).
		Where("email = ? AND code = ?", email, code).
		First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCodeNotFound
		}
		return nil, err
	}
	return &v, nil
}

// MarkVerified flips the record's verified flag.
func (r *verificationGorm) MarkVerified(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.EmailVerification{}).
		Where("id = ?", id).
		Update("verified", true).Error
}
