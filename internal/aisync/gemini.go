package aisync

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

// GeminiGenerator produces candidate batches with a Gemini model, using a
// response schema so the model is constrained to the exact candidate shape.
type GeminiGenerator struct {
	apiKey  string
	model   string
	breaker *gobreaker.CircuitBreaker
}

// NewGeminiGenerator creates a generator for the given API key and model.
func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	return &GeminiGenerator{
		apiKey: apiKey,
		model:  model,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "gemini-sync",
			Timeout: 30 * time.Second,
		}),
	}
}

// Generate requests a flashcard batch and validates it against the
// candidate contract.
func (g *GeminiGenerator) Generate(ctx context.Context) ([]Candidate, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not found")
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}

		config := &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(syncSystemInstruction, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema: &genai.Schema{
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"category":     {Type: genai.TypeString},
						"question":     {Type: genai.TypeString},
						"short_answer": {Type: genai.TypeString},
					},
					Required: []string{"category", "question", "short_answer"},
				},
			},
		}

		resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(syncUserPrompt), config)
		if err != nil {
			return nil, fmt.Errorf("Gemini API error: %w", err)
		}
		return resp.Text(), nil
	})
	if err != nil {
		return nil, err
	}

	candidates, err := ParseCandidates([]byte(result.(string)))
	if err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	return candidates, nil
}
