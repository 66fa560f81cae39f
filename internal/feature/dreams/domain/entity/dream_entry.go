// Package entity defines the domain entities for the dreams feature.
package entity

import "time"

// DreamEntry is one journaled dream.
//
// DreamTime, DreamTimeTimezone and DreamDateTime are optional: entries can
// carry a date without a clock time, and DreamDateTime is derived whenever a
// full instant can be composed. When DreamDateTime is set it equals the
// instant composed from DreamDate, DreamTime (00:00 when absent) and
// DreamTimeTimezone (+00:00 when absent).
type DreamEntry struct {
	// ID is the entry's UUID.
	ID string `gorm:"primaryKey;size:36"`

	// UserID is the owning user. Immutable after creation except through
	// account linking.
	UserID uint `gorm:"index;not null"`

	// Description is the free-text dream description. Never blank.
	Description string `gorm:"type:text;not null"`

	// Mood is a short free-form label for the mood on waking. Never blank.
	Mood string `gorm:"size:100;not null"`

	// SleepQuality is an integer rating on the configured scale.
	SleepQuality int `gorm:"not null"`

	// PriorNightActivities describes the evening before. May be empty.
	PriorNightActivities string `gorm:"type:text"`

	// DreamDate is the calendar date in YYYY-MM-DD form.
	DreamDate string `gorm:"size:10;not null"`

	// DreamTime is the 24-hour clock time in HH:MM form, when recorded.
	DreamTime *string `gorm:"size:5"`

	// DreamTimeTimezone is the UTC offset in ±HH:MM form, when recorded.
	DreamTimeTimezone *string `gorm:"size:6"`

	// DreamDateTime is the derived absolute instant in epoch milliseconds.
	DreamDateTime *int64 `gorm:"index"`

	// CreatedAt is the timestamp when the entry was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the entry was last updated.
	UpdatedAt time.Time
}

// SortKey returns the instant used for chronological ordering: the derived
// dream instant when present, otherwise the creation time.
func (e *DreamEntry) SortKey() int64 {
	if e.DreamDateTime != nil {
		return *e.DreamDateTime
	}
	return e.CreatedAt.UnixMilli()
}
