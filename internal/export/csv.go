// Package export writes the flashcard collections to Anki-compatible CSV
// import files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/card"
)

// Options configures the CSV export.
type Options struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
	WithAttachment bool   // Add a column marking cards that carry attachments
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		OutputPath:     "flashcards.csv",
		IncludeHeaders: true,
	}
}

// Generator turns categories and flashcards into one CSV file. Category
// names become Anki tags so decks keep their module structure.
type Generator struct {
	options *Options
}

// NewGenerator creates a CSV generator.
func NewGenerator(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}
	return &Generator{options: options}
}

// GenerateCSV writes all flashcards, resolving each card's category name.
// Cards whose category no longer exists are written with an empty tag
// rather than dropped.
func (g *Generator) GenerateCSV(cats []card.Category, cards []card.Flashcard) error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if g.options.IncludeHeaders {
		headers := []string{"Question", "Answer", "Category"}
		if g.options.WithAttachment {
			headers = append(headers, "Attachment")
		}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}

	for _, f := range cards {
		record := []string{f.Question, f.Answer, names[f.CategoryID]}
		if g.options.WithAttachment {
			mark := ""
			if f.HasAttachment() {
				mark = "yes"
			}
			record = append(record, mark)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}
