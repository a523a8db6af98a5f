// Package batch reads candidate flashcards from a local file, so a batch
// can be merged without calling a generative service.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/aisync"
)

// ReadBatchFile reads candidates from a file. Two formats are supported:
//   - JSON: the same candidate array the generative service returns
//   - plain text: one candidate per line, "Category | Question | Answer"
//
// Blank lines and lines starting with '#' are ignored in text files.
func ReadBatchFile(filename string) ([]aisync.Candidate, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	trimmed := strings.TrimSpace(string(content))
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		candidates, err := aisync.ParseCandidates([]byte(trimmed))
		if err != nil {
			return nil, fmt.Errorf("invalid JSON batch file: %w", err)
		}
		return candidates, nil
	}

	var candidates []aisync.Candidate
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("line %d: expected 'Category | Question | Answer'", i+1)
		}
		candidates = append(candidates, aisync.Candidate{
			Category:    strings.TrimSpace(parts[0]),
			Question:    strings.TrimSpace(parts[1]),
			ShortAnswer: strings.TrimSpace(parts[2]),
		})
	}
	return candidates, nil
}

// FileGenerator adapts a batch file to the aisync.Generator interface.
type FileGenerator struct {
	path string
}

// NewFileGenerator returns a generator reading from the given file.
func NewFileGenerator(path string) *FileGenerator {
	return &FileGenerator{path: path}
}

func (g *FileGenerator) Generate(ctx context.Context) ([]aisync.Candidate, error) {
	return ReadBatchFile(g.path)
}

// WriteBatchFile writes candidates as a JSON batch file, the format
// ReadBatchFile accepts back. Useful for exporting a reviewable batch.
func WriteBatchFile(filename string, candidates []aisync.Candidate) error {
	raw, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode batch: %w", err)
	}
	if err := os.WriteFile(filename, raw, 0644); err != nil {
		return fmt.Errorf("failed to write batch file: %w", err)
	}
	return nil
}
