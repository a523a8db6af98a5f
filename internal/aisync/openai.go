package aisync

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAIGenerator produces candidate batches with an OpenAI chat model in
// JSON mode. Calls go through a circuit breaker so a flapping API does not
// get hammered on every sync click.
type OpenAIGenerator struct {
	apiKey  string
	model   string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAIGenerator creates a generator for the given API key and model.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai-sync",
			Timeout: 30 * time.Second,
		}),
	}
}

// Generate requests a flashcard batch and validates it against the
// candidate contract.
func (g *OpenAIGenerator) Generate(ctx context.Context) ([]Candidate, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found")
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		req := openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: syncSystemInstruction + "\nReturn a JSON object of the form {\"cards\": [...]}.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: syncUserPrompt,
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			Temperature: 0.7,
		}

		resp, err := g.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no completion returned")
		}
		return resp.Choices[0].Message.Content, nil
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
