package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"dreamjournal/internal/feature/dreams/domain/entity"
)

// DreamRepository abstracts the persistence layer for dream entries.
// Following Go convention the interface is defined by the consumer (usecase),
// not the provider (adapters).
type DreamRepository interface {
	// Create persists a new entry.
	Create(ctx context.Context, entry *entity.DreamEntry) error

	// FindByID retrieves an entry by ID.
	// Returns ErrEntryNotFound when no entry exists.
	FindByID(ctx context.Context, id string) (*entity.DreamEntry, error)

	// FindByUser retrieves every entry owned by the user.
	FindByUser(ctx context.Context, userID uint) ([]entity.DreamEntry, error)

	// Update persists every field of an existing entry.
	Update(ctx context.Context, entry *entity.DreamEntry) error

	// Delete removes an entry.
	Delete(ctx context.Context, entry *entity.DreamEntry) error
}

// CallerGate is the verified-caller check consumed on the create path.
// Implemented by the auth usecase.
type CallerGate interface {
	// RequireVerified fails for callers whose email address is unverified.
	RequireVerified(ctx context.Context, userID uint) error
}

// CreateInput carries the client-supplied fields for a new entry.
// DreamTime may be empty (defaults to 00:00); DreamTimeTimezone is required
// and must be a well-formed ±HH:MM offset.
type CreateInput struct {
	Description          string
	Mood                 string
	SleepQuality         int
	PriorNightActivities string
	DreamDate            string
	DreamTime            string
	DreamTimeTimezone    string
}

// UpdateInput carries the client-supplied fields for an entry update.
// Nil DreamTime keeps the stored time; nil or empty DreamTimeTimezone falls
// back to the stored offset, then to +00:00.
type UpdateInput struct {
	Description          string
	Mood                 string
	SleepQuality         int
	PriorNightActivities string
	DreamDate            string
	DreamTime            *string
	DreamTimeTimezone    *string
}

// dreamsUsecase implements the dream-entry operations.
type dreamsUsecase struct {
	entries DreamRepository
	gate    CallerGate
	now     func() time.Time
}

// NewDreamsUsecase creates a new dreamsUsecase instance.
func NewDreamsUsecase(entries DreamRepository, gate CallerGate) *dreamsUsecase {
	return &dreamsUsecase{
		entries: entries,
		gate:    gate,
		now:     time.Now,
	}
}

// Create validates and persists a new entry for userID and returns its ID.
// The caller must pass the verified-caller gate. All validation happens
// before the write.
func (u *dreamsUsecase) Create(ctx context.Context, userID uint, in CreateInput) (string, error) {
	if err := u.gate.RequireVerified(ctx, userID); err != nil {
		return "", err
	}
	if err := validateEntryFields(in.Description, in.Mood, in.SleepQuality); err != nil {
		return "", err
	}

	offset, err := ParseOffset(in.DreamTimeTimezone)
	if err != nil {
		return "", err
	}
	instant, err := NormalizeDreamTime(in.DreamDate, in.DreamTime, offset, u.now())
	if err != nil {
		return "", err
	}

	entry := &entity.DreamEntry{
		ID:                   uuid.NewString(),
		UserID:               userID,
		Description:          in.Description,
		Mood:                 in.Mood,
		SleepQuality:         in.SleepQuality,
		PriorNightActivities: in.PriorNightActivities,
		DreamDate:            in.DreamDate,
		DreamTime:            optionalString(in.DreamTime),
		DreamTimeTimezone:    &offset,
		DreamDateTime:        &instant,
	}
	if err := u.entries.Create(ctx, entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}

// Update re-validates and persists changes to an entry owned by userID and
// returns its ID. The offset falls back to the value stored on the entry
// being edited before the +00:00 default applies.
func (u *dreamsUsecase) Update(ctx context.Context, userID uint, id string, in UpdateInput) (string, error) {
	existing, err := u.ownedEntry(ctx, userID, id)
	if err != nil {
		return "", err
	}
	if err := validateEntryFields(in.Description, in.Mood, in.SleepQuality); err != nil {
		return "", err
	}

	clock := ""
	switch {
	case in.DreamTime != nil:
		clock = *in.DreamTime
	case existing.DreamTime != nil:
		clock = *existing.DreamTime
	}

	// Offset priority: new value, stored value, default.
	offset := DefaultTimezone
	switch {
	case in.DreamTimeTimezone != nil && *in.DreamTimeTimezone != "":
		offset, err = ParseOffset(*in.DreamTimeTimezone)
		if err != nil {
			return "", err
		}
	case existing.DreamTimeTimezone != nil:
		offset = *existing.DreamTimeTimezone
	}

	instant, err := NormalizeDreamTime(in.DreamDate, clock, offset, u.now())
	if err != nil {
		return "", err
	}

	existing.Description = in.Description
	existing.Mood = in.Mood
	existing.SleepQuality = in.SleepQuality
	existing.PriorNightActivities = in.PriorNightActivities
	existing.DreamDate = in.DreamDate
	if in.DreamTime != nil {
		existing.DreamTime = optionalString(*in.DreamTime)
	}
	existing.DreamTimeTimezone = &offset
	existing.DreamDateTime = &instant

	if err := u.entries.Update(ctx, existing); err != nil {
		return "", err
	}
	return existing.ID, nil
}

// Delete removes an entry owned by userID and returns its ID.
func (u *dreamsUsecase) Delete(ctx context.Context, userID uint, id string) (string, error) {
	existing, err := u.ownedEntry(ctx, userID, id)
	if err != nil {
		return "", err
	}
	if err := u.entries.Delete(ctx, existing); err != nil {
		return "", err
	}
	return existing.ID, nil
}

// List returns the user's entries ordered by the derived dream instant,
// falling back to creation time, newest first.
func (u *dreamsUsecase) List(ctx context.Context, userID uint) ([]entity.DreamEntry, error) {
	entries, err := u.entries.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortKey() > entries[j].SortKey()
	})
	return entries, nil
}

// ownedEntry loads an entry and confirms ownership. Missing entries and
// entries owned by someone else both report ErrEntryNotFound.
func (u *dreamsUsecase) ownedEntry(ctx context.Context, userID uint, id string) (*entity.DreamEntry, error) {
	existing, err := u.entries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrEntryNotFound
	}
	return existing, nil
}

// optionalString returns nil for the empty string.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
