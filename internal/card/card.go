// Package card defines the flashcard domain model: categories, flashcards
// and their validation rules.
package card

import (
	"strings"

	"github.com/google/uuid"
)

// Category is a named grouping of flashcards (a study module).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Flashcard is a single question/answer unit belonging to exactly one
// category. AnswerImage and AnswerPDF hold base64 data URLs so a card is
// fully self-contained.
type Flashcard struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	AnswerImage string `json:"answerImage,omitempty"`
	AnswerPDF   string `json:"answerPdf,omitempty"`
}

// HasAttachment reports whether the card carries an embedded image or PDF.
func (f Flashcard) HasAttachment() bool {
	return f.AnswerImage != "" || f.AnswerPDF != ""
}

// NewID generates a random 128-bit identifier. IDs only need to be unique,
// never ordered, so a plain UUIDv4 is enough.
func NewID() string {
	return uuid.NewString()
}

// ValidName reports whether a category name is usable (non-empty after
// trimming).
func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// ValidQuestion reports whether a flashcard question is usable.
func ValidQuestion(question string) bool {
	return strings.TrimSpace(question) != ""
}

// SameName compares category names the way the merge importer does:
// case-insensitively.
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}
