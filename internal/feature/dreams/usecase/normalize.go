package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dreamjournal/internal/shared/apperr"
)

const (
	// SleepQualityMin is the lower inclusive bound of the sleep-quality scale.
	SleepQualityMin = 1

	// SleepQualityMax is the upper inclusive bound of the sleep-quality scale.
	// The product has shipped both a 1-5 picker and a 1-10 scale at different
	// times; persisted data follows whichever value is set here, so change it
	// in this one place only. Fixed to 5, the bound the entry mutations have
	// always enforced.
	SleepQualityMax = 5

	// DefaultDreamTime is substituted when an entry carries no clock time.
	DefaultDreamTime = "00:00"

	// DefaultTimezone is the offset fallback on the update path when neither
	// the request nor the stored entry carries one.
	DefaultTimezone = "+00:00"

	// futureSkewBufferMs tolerates client/server clock skew and round-trip
	// latency when rejecting future instants.
	futureSkewBufferMs = 60_000

	// instantLayout parses the composed "<date>T<time>:00<offset>" string.
	instantLayout = "2006-01-02T15:04:05-07:00"
)

var (
	offsetPattern = regexp.MustCompile(`^[+-]\d{2}:\d{2}$`)

	// time.Parse would tolerate single-digit fields like "2024-3-1" or
	// "7:00"; the stored strings must be zero-padded, so the shapes are
	// checked before composition.
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// OffsetError reports a UTC offset that is not of the ±HH:MM form. It is
// raised before instant composition so that a malformed offset is never
// misreported as a malformed date or time.
type OffsetError struct {
	Offset string
}

// Error returns the display message.
func (e *OffsetError) Error() string {
	return fmt.Sprintf("invalid timezone offset %q: expected ±HH:MM", e.Offset)
}

// ParseOffset validates that offset has the ±HH:MM shape with in-range
// minutes and returns it unchanged.
func ParseOffset(offset string) (string, error) {
	if !offsetPattern.MatchString(offset) {
		return "", &OffsetError{Offset: offset}
	}
	hh, _ := strconv.Atoi(offset[1:3])
	mm, _ := strconv.Atoi(offset[4:6])
	if hh > 23 || mm > 59 {
		return "", &OffsetError{Offset: offset}
	}
	return offset, nil
}

// NormalizeDreamTime composes a calendar date, an optional clock time and a
// UTC offset into one absolute instant in epoch milliseconds. An empty clock
// time defaults to 00:00. The instant may not exceed now by more than the
// skew buffer. The computation is pure given now and is executed identically
// by the create and update paths.
func NormalizeDreamTime(date, clock, offset string, now time.Time) (int64, error) {
	if clock == "" {
		clock = DefaultDreamTime
	}
	if !datePattern.MatchString(date) || !clockPattern.MatchString(clock) {
		return 0, apperr.NewValidation("Invalid date, time, or timezone format")
	}

	// Seconds are pinned to :00; the offset is appended with no separator.
	composed := date + "T" + clock + ":00" + offset
	t, err := time.Parse(instantLayout, composed)
	if err != nil {
		return 0, apperr.NewValidation("Invalid date, time, or timezone format")
	}

	instant := t.UnixMilli()
	if instant > now.UnixMilli()+futureSkewBufferMs {
		return 0, apperr.NewValidation("Dream date and time cannot be in the future")
	}
	return instant, nil
}

// validateEntryFields checks the field-level policies shared by create and
// update: sleep quality bounds and non-blank description and mood.
func validateEntryFields(description, mood string, sleepQuality int) error {
	if sleepQuality < SleepQualityMin || sleepQuality > SleepQualityMax {
		return apperr.NewValidation(fmt.Sprintf(
			"Sleep quality must be between %d and %d", SleepQualityMin, SleepQualityMax))
	}
	if strings.TrimSpace(description) == "" {
		return apperr.NewValidation("Dream description is required")
	}
	if strings.TrimSpace(mood) == "" {
		return apperr.NewValidation("Mood is required")
	}
	return nil
}
