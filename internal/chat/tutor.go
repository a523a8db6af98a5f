// Package chat implements the streaming DSA tutor. It shares the
// generative-service credential with the sync importer but is otherwise a
// plain back-and-forth conversation.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sashabaranov/go-openai"
)

const tutorSystemPrompt = `You are a DSA tutor.
1. Format complexity as **O(N)**.
2. Use ` + "`code blocks`" + ` for logic.
3. Be concise and professional.
4. NEVER use LaTeX symbols like $.`

// Message is one exchange turn, kept for the session only.
type Message struct {
	Role      string `json:"role"` // "user" or "model"
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Tutor holds a conversation with the model. Not safe for concurrent use;
// a session belongs to one caller.
type Tutor struct {
	apiKey  string
	model   string
	client  *openai.Client
	history []Message
}

// NewTutor creates a tutor session.
func NewTutor(apiKey, model string) *Tutor {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Tutor{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// History returns the messages exchanged so far.
func (t *Tutor) History() []Message {
	out := make([]Message, len(t.history))
	copy(out, t.history)
	return out
}

// Send streams the model's answer to query, invoking onDelta for every
// received chunk, and returns the full reply. Both the question and the
// reply are appended to the session history.
func (t *Tutor) Send(ctx context.Context, query string, onDelta func(string)) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}
	if query == "" {
		return "", fmt.Errorf("empty question")
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: tutorSystemPrompt},
	}
	for _, m := range t.history {
		role := openai.ChatMessageRoleUser
		if m.Role == "model" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: query,
	})

	stream, err := t.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    t.model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	defer stream.Close()

	full := ""
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("stream error: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		delta := resp.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		full += delta
		if onDelta != nil {
			onDelta(delta)
		}
	}

	now := time.Now().UnixMilli()
	t.history = append(t.history,
		Message{Role: "user", Text: query, Timestamp: now},
		Message{Role: "model", Text: full, Timestamp: now},
	)
	return full, nil
}
