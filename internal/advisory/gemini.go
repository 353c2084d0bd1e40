package advisory

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// GeminiGenerator implements Generator on the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed Generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// GenerateContent sends prompt as a single text turn.
func (g *GeminiGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractText(result), nil
}

// extractText concatenates the text parts of the first candidate.
// An empty result is not an error here; the Advisor maps it to a fallback.
func extractText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	return text
}

// NewFromKey returns an Advisor backed by Gemini, or one that always answers
// FallbackNoCredential when apiKey is empty or the client cannot be built.
func NewFromKey(ctx context.Context, apiKey, model string, opts ...Option) *Advisor {
	if apiKey == "" {
		return NewAdvisor(nil, opts...)
	}
	gen, err := NewGeminiGenerator(ctx, apiKey, model)
	if err != nil {
		a := NewAdvisor(nil, opts...)
		a.logger.Warnw("advisory disabled", "error", err)
		return a
	}
	return NewAdvisor(gen, opts...)
}
