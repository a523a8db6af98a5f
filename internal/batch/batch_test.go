package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/aisync"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadBatchFileText(t *testing.T) {
	path := writeFile(t, "cards.txt", `
# interview prep
Arrays | What is two-pointer technique? | Walk two indexes toward each other.

Binary Search | When does binary search apply? | Sorted or monotonic search space.
`)

	got, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	want := aisync.Candidate{
		Category:    "Arrays",
		Question:    "What is two-pointer technique?",
		ShortAnswer: "Walk two indexes toward each other.",
	}
	if got[0] != want {
		t.Errorf("expected %+v, got %+v", want, got[0])
	}
}

func TestReadBatchFileJSON(t *testing.T) {
	path := writeFile(t, "cards.json",
		`[{"category": "Trees", "question": "What is a BST?", "short_answer": "Ordered binary tree."}]`)

	got, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}
	if len(got) != 1 || got[0].Category != "Trees" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestReadBatchFileMalformedLine(t *testing.T) {
	path := writeFile(t, "bad.txt", "Arrays | missing answer field")

	if _, err := ReadBatchFile(path); err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestReadBatchFileMissing(t *testing.T) {
	if _, err := ReadBatchFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBatchFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	candidates := []aisync.Candidate{
		{Category: "Graphs", Question: "What is BFS?", ShortAnswer: "Level-order traversal."},
	}

	if err := WriteBatchFile(path, candidates); err != nil {
		t.Fatalf("WriteBatchFile failed: %v", err)
	}

	gen := NewFileGenerator(path)
	got, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(got) != 1 || got[0] != candidates[0] {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
