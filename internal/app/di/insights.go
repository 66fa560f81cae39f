package di

import (
	"context"
	"log/slog"

	"dreamjournal/internal/feature/insights/adapters/gemini"
	"dreamjournal/internal/feature/insights/usecase"
)

// NewInterpreter creates the Gemini dream interpreter. Returns nil when the
// client cannot be built; the insights usecase then reports interpretation
// as unavailable instead of failing requests at startup.
func NewInterpreter(ctx context.Context) usecase.DreamInterpreter {
	g, err := gemini.NewGeminiInterpreter(ctx)
	if err != nil {
		slog.Warn("dream interpreter unavailable", "error", err)
		return nil
	}
	return g
}
