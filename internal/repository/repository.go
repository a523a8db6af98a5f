// Package repository holds the canonical in-memory category and flashcard
// collections. Every committed mutation is written through to the injected
// store exactly once per affected collection.
package repository

import (
	"context"
	"sync"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/card"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/logging"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/store"
)

// Repository owns the collections. All methods are safe for concurrent use;
// mutations are serialized by a single mutex.
type Repository struct {
	mu    sync.Mutex
	store store.Store
	log   logging.Logger

	categories []card.Category
	flashcards []card.Flashcard

	// active is the id of the category currently selected for study, or ""
	// when no categories exist.
	active string

	// revealed tracks which cards have been flipped to their answer side.
	// Transient: never persisted.
	revealed map[string]bool
}

// New loads both collections from the store (seeding on first run) and
// selects the first category.
func New(s store.Store, log logging.Logger) *Repository {
	if log == nil {
		log = logging.Nop()
	}
	r := &Repository{
		store:      s,
		log:        log.With("component", "repository"),
		categories: store.LoadCategories(s),
		flashcards: store.LoadFlashcards(s),
		revealed:   make(map[string]bool),
	}
	if len(r.categories) > 0 {
		r.active = r.categories[0].ID
	}
	return r
}

// Categories returns a copy of the category collection in insertion order.
func (r *Repository) Categories() []card.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]card.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Flashcards returns a copy of the flashcard collection in insertion order.
func (r *Repository) Flashcards() []card.Flashcard {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]card.Flashcard, len(r.flashcards))
	copy(out, r.flashcards)
	return out
}

// ActiveCategory returns the id of the currently selected category, or ""
// when none is selected.
func (r *Repository) ActiveCategory() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// SetActiveCategory selects a category for study.
func (r *Repository) SetActiveCategory(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.ID == id {
			r.active = id
			return nil
		}
	}
	return ErrNotFound
}

// AddCategory appends a new category and makes it the active selection.
func (r *Repository) AddCategory(name string) (card.Category, error) {
	if !card.ValidName(name) {
		return card.Category{}, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := card.Category{ID: card.NewID(), Name: name}
	r.categories = append(r.categories, c)
	r.active = c.ID

	if err := r.saveCategories(); err != nil {
		return card.Category{}, err
	}
	return c, nil
}

// RenameCategory updates the matching category in place.
func (r *Repository) RenameCategory(id, newName string) error {
	if !card.ValidName(newName) {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories[i].Name = newName
			return r.saveCategories()
		}
	}
	return ErrNotFound
}

// DeleteCategory removes a category and cascades to every flashcard bound
// to it. Confirmation is the caller's responsibility. If the deleted
// category was active, the selection falls back to the first remaining
// category or to none.
func (r *Repository) DeleteCategory(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, c := range r.categories {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	r.categories = append(r.categories[:idx], r.categories[idx+1:]...)

	kept := r.flashcards[:0]
	for _, f := range r.flashcards {
		if f.CategoryID == id {
			delete(r.revealed, f.ID)
			continue
		}
		kept = append(kept, f)
	}
	r.flashcards = kept

	if r.active == id {
		r.active = ""
		if len(r.categories) > 0 {
			r.active = r.categories[0].ID
		}
	}

	if err := r.saveCategories(); err != nil {
		return err
	}
	return r.saveFlashcards()
}

// NewCard carries the fields for AddFlashcard. Image and PDF are base64
// data URLs produced by the attachment package.
type NewCard struct {
	CategoryID string
	Question   string
	Answer     string
	Image      string
	PDF        string
}

// AddFlashcard creates a flashcard with a fresh id. The answer may be empty
// only when an attachment is supplied.
func (r *Repository) AddFlashcard(nc NewCard) (card.Flashcard, error) {
	if nc.CategoryID == "" {
		return card.Flashcard{}, ErrNoCategory
	}
	if !card.ValidQuestion(nc.Question) {
		return card.Flashcard{}, ErrEmptyQuestion
	}
	if nc.Answer == "" && nc.Image == "" && nc.PDF == "" {
		return card.Flashcard{}, ErrEmptyAnswer
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.categoryExists(nc.CategoryID) {
		return card.Flashcard{}, ErrNotFound
	}

	f := card.Flashcard{
		ID:          card.NewID(),
		CategoryID:  nc.CategoryID,
		Question:    nc.Question,
		Answer:      nc.Answer,
		AnswerImage: nc.Image,
		AnswerPDF:   nc.PDF,
	}
	r.flashcards = append(r.flashcards, f)

	if err := r.saveFlashcards(); err != nil {
		return card.Flashcard{}, err
	}
	return f, nil
}

// UpdateFlashcard replaces the fields of the card matching id, keeping its
// id and position.
func (r *Repository) UpdateFlashcard(id string, nc NewCard) error {
	if nc.CategoryID == "" {
		return ErrNoCategory
	}
	if !card.ValidQuestion(nc.Question) {
		return ErrEmptyQuestion
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.flashcards {
		if r.flashcards[i].ID == id {
			r.flashcards[i].CategoryID = nc.CategoryID
			r.flashcards[i].Question = nc.Question
			r.flashcards[i].Answer = nc.Answer
			r.flashcards[i].AnswerImage = nc.Image
			r.flashcards[i].AnswerPDF = nc.PDF
			return r.saveFlashcards()
		}
	}
	return ErrNotFound
}

// DeleteFlashcard removes the card and clears its reveal marker.
// Confirmation is the caller's responsibility.
func (r *Repository) DeleteFlashcard(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.flashcards {
		if f.ID == id {
			r.flashcards = append(r.flashcards[:i], r.flashcards[i+1:]...)
			delete(r.revealed, id)
			return r.saveFlashcards()
		}
	}
	return ErrNotFound
}

// ListByCategory returns the flashcards of one category in insertion order.
// Pure projection, no side effects.
func (r *Repository) ListByCategory(categoryID string) []card.Flashcard {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []card.Flashcard
	for _, f := range r.flashcards {
		if f.CategoryID == categoryID {
			out = append(out, f)
		}
	}
	return out
}

// ToggleReveal flips a card between question and answer side, returning the
// new revealed state.
func (r *Repository) ToggleReveal(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.revealed[id] {
		delete(r.revealed, id)
		return false
	}
	r.revealed[id] = true
	return true
}

// Revealed reports whether a card currently shows its answer side.
func (r *Repository) Revealed(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealed[id]
}

// ReplaceAll swaps in new collections in a single step and persists both.
// Used by the import commit so partial results are never visible. The new
// state becomes visible in memory only after both slots were written.
func (r *Repository) ReplaceAll(cats []card.Category, cards []card.Flashcard, activeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := store.SaveCategories(r.store, cats); err != nil {
		r.log.Error(context.Background(), "failed to persist categories", "error", err)
		return err
	}
	if err := store.SaveFlashcards(r.store, cards); err != nil {
		r.log.Error(context.Background(), "failed to persist flashcards", "error", err)
		return err
	}

	r.categories = cats
	r.flashcards = cards
	if activeID != "" {
		r.active = activeID
	}
	return nil
}

// Snapshot returns copies of both collections, for merge working sets.
func (r *Repository) Snapshot() ([]card.Category, []card.Flashcard) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cats := make([]card.Category, len(r.categories))
	copy(cats, r.categories)
	cards := make([]card.Flashcard, len(r.flashcards))
	copy(cards, r.flashcards)
	return cats, cards
}

func (r *Repository) categoryExists(id string) bool {
	for _, c := range r.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (r *Repository) saveCategories() error {
	if err := store.SaveCategories(r.store, r.categories); err != nil {
		r.log.Error(context.Background(), "failed to persist categories", "error", err)
		return err
	}
	return nil
}

func (r *Repository) saveFlashcards() error {
	if err := store.SaveFlashcards(r.store, r.flashcards); err != nil {
		r.log.Error(context.Background(), "failed to persist flashcards", "error", err)
		return err
	}
	return nil
}
