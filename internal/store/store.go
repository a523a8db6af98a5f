// Package store persists the category and flashcard collections across
// restarts. Collections live in named slots holding opaque serialized text;
// two backends are available, a JSON file per slot and a single SQLite
// database.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/card"
)

// Fixed slot keys. The names are inherited from the original web frontend
// and must not change, or existing data becomes invisible.
const (
	KeyCategories = "fl_categories"
	KeyCards      = "fl_cards"
	KeyUser       = "fl_user"
)

// ErrNotFound is returned by Load when a slot has never been written.
var ErrNotFound = errors.New("store: slot not found")

// Store round-trips opaque values keyed by fixed slot names.
type Store interface {
	// Load returns the raw value of a slot, or ErrNotFound.
	Load(key string) ([]byte, error)

	// Save writes a slot synchronously.
	Save(key string, value []byte) error

	Close() error
}

// Open creates a store of the given backend ("file" or "sqlite") rooted at
// path. For the file backend path is a directory, for sqlite a database
// file.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "file":
		return OpenFile(path)
	case "sqlite":
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}
}

// LoadCategories returns the persisted category collection, falling back to
// the seed collection when the slot is missing or unparseable (first run).
func LoadCategories(s Store) []card.Category {
	raw, err := s.Load(KeyCategories)
	if err != nil {
		return card.SeedCategories()
	}
	var cats []card.Category
	if err := json.Unmarshal(raw, &cats); err != nil {
		return card.SeedCategories()
	}
	return cats
}

// LoadFlashcards returns the persisted flashcard collection, falling back to
// the seed collection when the slot is missing or unparseable.
func LoadFlashcards(s Store) []card.Flashcard {
	raw, err := s.Load(KeyCards)
	if err != nil {
		return card.SeedFlashcards()
	}
	var cards []card.Flashcard
	if err := json.Unmarshal(raw, &cards); err != nil {
		return card.SeedFlashcards()
	}
	return cards
}

// SaveCategories serializes and writes the category collection.
func SaveCategories(s Store, cats []card.Category) error {
	raw, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	if err := s.Save(KeyCategories, raw); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}

// SaveFlashcards serializes and writes the flashcard collection.
func SaveFlashcards(s Store, cards []card.Flashcard) error {
	raw, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("failed to encode flashcards: %w", err)
	}
	if err := s.Save(KeyCards, raw); err != nil {
		return fmt.Errorf("failed to save flashcards: %w", err)
	}
	return nil
}
