package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/card"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return records
}

func TestGenerateCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cards.csv")
	gen := NewGenerator(&Options{OutputPath: out, IncludeHeaders: true})

	cats := []card.Category{{ID: "1", Name: "Arrays"}}
	cards := []card.Flashcard{
		{ID: "f1", CategoryID: "1", Question: "Q1", Answer: "A1"},
		{ID: "f2", CategoryID: "ghost", Question: "Q2", Answer: "A2"},
	}

	if err := gen.GenerateCSV(cats, cards); err != nil {
		t.Fatalf("GenerateCSV failed: %v", err)
	}

	records := readCSV(t, out)
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "Question" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][2] != "Arrays" {
		t.Errorf("category name should be resolved, got %q", records[1][2])
	}
	// Orphaned card keeps its row, just with an empty tag.
	if records[2][2] != "" {
		t.Errorf("expected empty tag for orphan, got %q", records[2][2])
	}
}

func TestGenerateCSVAttachmentColumn(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cards.csv")
	gen := NewGenerator(&Options{OutputPath: out, WithAttachment: true})

	cards := []card.Flashcard{
		{ID: "f1", CategoryID: "1", Question: "Q1", AnswerImage: "data:image/png;base64,AAAA"},
		{ID: "f2", CategoryID: "1", Question: "Q2", Answer: "A2"},
	}

	if err := gen.GenerateCSV([]card.Category{{ID: "1", Name: "Arrays"}}, cards); err != nil {
		t.Fatal(err)
	}

	records := readCSV(t, out)
	if records[0][3] != "yes" {
		t.Errorf("expected attachment marker, got %q", records[0][3])
	}
	if records[1][3] != "" {
		t.Errorf("expected empty marker, got %q", records[1][3])
	}
}

func TestNewGeneratorDefaults(t *testing.T) {
	gen := NewGenerator(nil)
	if gen.options.OutputPath != "flashcards.csv" {
		t.Errorf("unexpected default output path %q", gen.options.OutputPath)
	}
	if !gen.options.IncludeHeaders {
		t.Error("headers should default to on")
	}
}
