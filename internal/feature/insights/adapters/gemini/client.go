// Package gemini implements the DreamInterpreter interface using the Google
// Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"dreamjournal/internal/feature/insights/usecase"
)

// DefaultModel is the Gemini model used for interpretation.
const DefaultModel = "gemini-2.5-flash"

// GeminiInterpreter generates dream interpretations through the Gemini API.
type GeminiInterpreter struct {
	client *genai.Client
	model  string
}

// Compile-time check that GeminiInterpreter implements DreamInterpreter.
var _ usecase.DreamInterpreter = (*GeminiInterpreter)(nil)

// NewGeminiInterpreter creates a new GeminiInterpreter using application
// default credentials. Requires GOOGLE_GENAI_USE_VERTEXAI,
// GOOGLE_CLOUD_PROJECT and GOOGLE_CLOUD_LOCATION, or GEMINI_API_KEY.
func NewGeminiInterpreter(ctx context.Context) (*GeminiInterpreter, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiInterpreter{client: client, model: DefaultModel}, nil
}

// Interpret generates an interpretation for the prompt.
func (g *GeminiInterpreter) Interpret(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
