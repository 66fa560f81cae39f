// Package usecase implements dream interpretation on top of an LLM backend.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"dreamjournal/internal/feature/dreams/domain/entity"
	dreamsusecase "dreamjournal/internal/feature/dreams/usecase"
)

// maxDescriptionChars bounds the prompt size for very long entries.
const maxDescriptionChars = 4000

// EntryReader is the slice of the dream store the interpreter needs.
type EntryReader interface {
	// FindByID retrieves an entry by ID.
	// Returns dreams usecase ErrEntryNotFound when no entry exists.
	FindByID(ctx context.Context, id string) (*entity.DreamEntry, error)
}

// DreamInterpreter produces an interpretation text for a prompt.
// Implemented by the gemini adapter.
type DreamInterpreter interface {
	Interpret(ctx context.Context, prompt string) (string, error)
}

// Interpretation is the result of interpreting one entry.
type Interpretation struct {
	EntryID string
	Summary string
}

// insightsUsecase implements dream interpretation.
type insightsUsecase struct {
	entries     EntryReader
	interpreter DreamInterpreter
}

// NewInsightsUsecase creates a new insightsUsecase instance. A nil
// interpreter is allowed; requests then fail with ErrInterpreterUnavailable.
func NewInsightsUsecase(entries EntryReader, interpreter DreamInterpreter) *insightsUsecase {
	return &insightsUsecase{entries: entries, interpreter: interpreter}
}

// Interpret loads an entry owned by userID and asks the backend for an
// interpretation. Missing entries and entries owned by someone else both
// report ErrEntryNotFound.
func (u *insightsUsecase) Interpret(ctx context.Context, userID uint, entryID string) (*Interpretation, error) {
	entry, err := u.entries.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, dreamsusecase.ErrEntryNotFound
	}
	if u.interpreter == nil {
		return nil, ErrInterpreterUnavailable
	}

	summary, err := u.interpreter.Interpret(ctx, buildPrompt(entry))
	if err != nil {
		return nil, fmt.Errorf("failed to interpret dream: %w", err)
	}
	return &Interpretation{EntryID: entry.ID, Summary: summary}, nil
}

// buildPrompt renders the entry into the interpretation prompt.
func buildPrompt(entry *entity.DreamEntry) string {
	description := entry.Description
	if len(description) > maxDescriptionChars {
		description = description[:maxDescriptionChars]
	}

	var b strings.Builder
	b.WriteString("You are a thoughtful dream analyst. Interpret the following dream ")
	b.WriteString("in two or three short paragraphs. Mention recurring symbols and the ")
	b.WriteString("dreamer's possible emotional state, and avoid medical claims.\n\n")
	fmt.Fprintf(&b, "Dream (recorded for %s):\n%s\n", entry.DreamDate, description)
	if entry.Mood != "" {
		fmt.Fprintf(&b, "\nMood on waking: %s\n", entry.Mood)
	}
	if entry.SleepQuality != 0 {
		fmt.Fprintf(&b, "Sleep quality: %d out of 5\n", entry.SleepQuality)
	}
	if entry.PriorNightActivities != "" {
		fmt.Fprintf(&b, "Activities before sleep: %s\n", entry.PriorNightActivities)
	}
	return b.String()
}
