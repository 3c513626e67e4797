// Package advice produces free-form financial insight text from the recent
// transaction history. The external model is an unreliable collaborator:
// every failure path degrades to a user-facing fallback string.
package advice

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator turns a prompt into a block of formatted text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const systemInstruction = "You are a helpful, concise financial expert."

// GeminiGenerator calls the Gemini API through the genai SDK. The API key is
// taken from the environment by the SDK itself.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates the client. Model may be empty to use the
// default.
func NewGeminiGenerator(ctx context.Context, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate sends the prompt and returns the model's text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
