// Package aisync merges externally generated candidate flashcards into the
// repository: categories are matched by name, duplicate questions are
// skipped, and the whole batch commits atomically or not at all.
package aisync

import (
	"context"
	"encoding/json"
	"fmt"
)

// Candidate is one externally generated flashcard proposal. The producer
// never sees internal ids; categories are referenced by display name only.
type Candidate struct {
	Category    string `json:"category"`
	Question    string `json:"question"`
	ShortAnswer string `json:"short_answer"`
}

// Generator produces a candidate batch. Implementations call out to a
// generative service (or read a prepared file) and must return candidates
// matching the Candidate shape exactly.
type Generator interface {
	Generate(ctx context.Context) ([]Candidate, error)
}

// Prompts shared by the generative providers.
const (
	syncSystemInstruction = `You are the TUF AI Assistant. Your goal is to help students learn the A2Z roadmap.
Identify key problems and concepts from the Striver's A2Z sheet.
Provide a JSON array where each object has:
- 'category': The module name (e.g., 'Basics', 'Arrays', 'Binary Search', 'Linked List').
- 'question': A concept-based question or 'How do you solve [Problem Name] optimally?'.
- 'short_answer': A concise explanation of the logic or time complexity.
Avoid duplicates and focus on high-yield interview concepts.`

	syncUserPrompt = "Generate a new batch of 6 high-quality DSA flashcards based specifically on the content of Striver's A2Z DSA Sheet (https://takeuforward.org/dsa/strivers-a2z-sheet-learn-dsa-a-to-z)."
)

// ParseCandidates validates a raw provider response against the strict
// output contract: a JSON array of objects carrying exactly the three
// string fields category, question and short_answer. Providers that can
// only emit a top-level object may wrap the array in a "cards" field.
func ParseCandidates(raw []byte) ([]Candidate, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		// JSON-object mode responses arrive as {"cards": [...]}.
		var wrapper struct {
			Cards []json.RawMessage `json:"cards"`
		}
		if err2 := json.Unmarshal(raw, &wrapper); err2 != nil || wrapper.Cards == nil {
			return nil, fmt.Errorf("response is not a candidate array: %w", err)
		}
		items = wrapper.Cards
	}

	out := make([]Candidate, 0, len(items))
	for i, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, fmt.Errorf("candidate %d is not an object: %w", i, err)
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("candidate %d has %d fields, want exactly 3", i, len(fields))
		}

		var c Candidate
		for _, f := range []struct {
			key string
			dst *string
		}{
			{"category", &c.Category},
			{"question", &c.Question},
			{"short_answer", &c.ShortAnswer},
		} {
			raw, ok := fields[f.key]
			if !ok {
				return nil, fmt.Errorf("candidate %d is missing field %q", i, f.key)
			}
			if err := json.Unmarshal(raw, f.dst); err != nil {
				return nil, fmt.Errorf("candidate %d: field %q is not a string", i, f.key)
			}
		}
		out = append(out, c)
	}
	return out, nil
}
