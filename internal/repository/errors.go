package repository

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every input-validation failure. The
// original frontend dropped invalid mutations silently; here callers get a
// distinguishable outcome and decide what to surface.
var ErrValidation = errors.New("validation failed")

var (
	ErrEmptyName     = fmt.Errorf("%w: category name is empty", ErrValidation)
	ErrEmptyQuestion = fmt.Errorf("%w: question is empty", ErrValidation)
	ErrEmptyAnswer   = fmt.Errorf("%w: answer is empty and no attachment is present", ErrValidation)
	ErrNoCategory    = fmt.Errorf("%w: no category selected", ErrValidation)
)

// ErrNotFound is returned when a mutation references an id that does not
// exist in the collections.
var ErrNotFound = errors.New("not found")
