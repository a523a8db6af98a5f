package aisync

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/card"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/logging"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/repository"
)

// ErrSyncInProgress is returned when Import is called while another import
// is still running. Requests are rejected, never queued.
var ErrSyncInProgress = errors.New("a sync is already in progress")

// State of the importer. Failed is transient: a failed import reports its
// error and the importer returns to Idle, keeping the error in LastError.
type State int

const (
	StateIdle State = iota
	StateImporting
)

// Report summarizes a committed import.
type Report struct {
	Imported      int // flashcards added
	Skipped       int // candidates dropped as exact-question duplicates
	NewCategories int // categories synthesized during the merge
}

// Importer runs the merge against a repository using a pluggable Generator.
type Importer struct {
	repo *repository.Repository
	gen  Generator
	log  logging.Logger

	mu      sync.Mutex
	state   State
	lastErr error
}

// NewImporter wires a generator to a repository.
func NewImporter(repo *repository.Repository, gen Generator, log logging.Logger) *Importer {
	if log == nil {
		log = logging.Nop()
	}
	return &Importer{repo: repo, gen: gen, log: log.With("component", "aisync")}
}

// State returns the current importer state.
func (im *Importer) State() State {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.state
}

// LastError returns the error of the most recent failed import, or nil.
func (im *Importer) LastError() error {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.lastErr
}

// Import fetches a candidate batch and merges it into the repository.
// The merge resolves category names against the collections as they are at
// commit time, after the network round trip, so a category deleted while
// the call was in flight is simply re-created like any unknown name.
// On any generator or commit failure nothing is changed.
func (im *Importer) Import(ctx context.Context) (Report, error) {
	im.mu.Lock()
	if im.state == StateImporting {
		im.mu.Unlock()
		return Report{}, ErrSyncInProgress
	}
	im.state = StateImporting
	im.lastErr = nil
	im.mu.Unlock()

	report, err := im.run(ctx)

	im.mu.Lock()
	im.state = StateIdle
	im.lastErr = err
	im.mu.Unlock()

	return report, err
}

func (im *Importer) run(ctx context.Context) (Report, error) {
	batch, err := im.gen.Generate(ctx)
	if err != nil {
		im.log.Error(ctx, "sync failed", "error", err)
		return Report{}, fmt.Errorf("sync failed: %w", err)
	}
	if len(batch) == 0 {
		im.log.Info(ctx, "sync returned an empty batch")
		return Report{}, nil
	}

	cats, cards := im.repo.Snapshot()
	merged := merge(cats, cards, batch)

	if merged.report.Imported == 0 && merged.report.NewCategories == 0 {
		// Nothing changed; skip the commit entirely.
		im.log.Info(ctx, "sync produced no new flashcards", "skipped", merged.report.Skipped)
		return merged.report, nil
	}

	if err := im.repo.ReplaceAll(merged.categories, merged.flashcards, merged.activeID); err != nil {
		return Report{}, fmt.Errorf("sync failed: %w", err)
	}

	im.log.Info(ctx, "sync finished",
		"imported", merged.report.Imported,
		"skipped", merged.report.Skipped,
		"new_categories", merged.report.NewCategories)
	return merged.report, nil
}

type mergeResult struct {
	categories []card.Category
	flashcards []card.Flashcard
	activeID   string
	report     Report
}

// merge applies the candidate batch to copies of the collections.
// Categories synthesized for earlier candidates are visible to later ones;
// duplicate detection is by exact, case-sensitive question match, including
// cards added earlier in the same batch. The first imported candidate's
// category becomes the new active selection.
func merge(cats []card.Category, cards []card.Flashcard, batch []Candidate) mergeResult {
	res := mergeResult{
		categories: append([]card.Category(nil), cats...),
		flashcards: append([]card.Flashcard(nil), cards...),
	}

	for _, cand := range batch {
		catID := ""
		for _, c := range res.categories {
			if card.SameName(c.Name, cand.Category) {
				catID = c.ID
				break
			}
		}
		if catID == "" {
			catID = card.NewID()
			res.categories = append(res.categories, card.Category{ID: catID, Name: cand.Category})
			res.report.NewCategories++
		}

		dup := false
		for _, f := range res.flashcards {
			if f.Question == cand.Question {
				dup = true
				break
			}
		}
		if dup {
			res.report.Skipped++
			continue
		}

		res.flashcards = append(res.flashcards, card.Flashcard{
			ID:         card.NewID(),
			CategoryID: catID,
			Question:   cand.Question,
			Answer:     cand.ShortAnswer,
		})
		if res.report.Imported == 0 {
			res.activeID = catID
		}
		res.report.Imported++
	}
	return res
}
