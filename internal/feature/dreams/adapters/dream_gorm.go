// Package adapters provides the repository implementations for the dreams feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authusecase "dreamjournal/internal/feature/auth/usecase"
	"dreamjournal/internal/feature/dreams/domain/entity"
	"dreamjournal/internal/feature/dreams/usecase"
)

// dreamGorm is the GORM implementation of the DreamRepository interface.
// It also implements the EntryTransfer interface used by account linking.
type dreamGorm struct {
	db *gorm.DB
}

// Compile-time checks for the interfaces dreamGorm provides.
var (
	_ usecase.DreamRepository   = (*dreamGorm)(nil)
	_ authusecase.EntryTransfer = (*dreamGorm)(nil)
)

// NewDreamGorm creates a new dreamGorm instance with the given gorm.DB handle.
func NewDreamGorm(db *gorm.DB) *dreamGorm {
	return &dreamGorm{db: db}
}

// Create persists a new entry.
func (r *dreamGorm) Create(ctx context.Context, e *entity.DreamEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindByID retrieves an entry by ID.
// Returns usecase.ErrEntryNotFound when no entry exists.
func (r *dreamGorm) FindByID(ctx context.Context, id string) (*entity.DreamEntry, error) {
	var e entity.DreamEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindByUser retrieves every entry owned by the user.
func (r *dreamGorm) FindByUser(ctx context.Context, userID uint) ([]entity.DreamEntry, error) {
	var entries []entity.DreamEntry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Update persists every field of an existing entry, including fields reset
// to nil (Save writes all columns).
func (r *dreamGorm) Update(ctx context.Context, e *entity.DreamEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Delete removes an entry.
func (r *dreamGorm) Delete(ctx context.Context, e *entity.DreamEntry) error {
	return r.db.WithContext(ctx).Delete(&entity.DreamEntry{}, "id = ?", e.ID).Error
}

// TransferOwnership reassigns every entry owned by fromUserID to toUserID
// and returns the number of entries moved.
func (r *dreamGorm) TransferOwnership(ctx context.Context, fromUserID, toUserID uint) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&entity.DreamEntry{}).
		Where("user_id = ?", fromUserID).
		Update("user_id", toUserID)
	return tx.RowsAffected, tx.Error
}
