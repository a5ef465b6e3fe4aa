package reelsense

import (
	"errors"
	"fmt"
)

var (
	// ErrNoReviews is reported when no review matches a requested movie.
	ErrNoReviews = errors.New("no reviews found")

	// ErrInvalidRow marks a review without a title or text. Such rows are
	// skipped and counted, never returned from a batch.
	ErrInvalidRow = errors.New("invalid review row")

	// ErrLengthMismatch is returned when window inputs are not parallel.
	ErrLengthMismatch = errors.New("scores, texts and labels differ in length")
)

// FormatError describes a malformed lexicon line.
type FormatError struct {
	Path   string // Source of the lexicon; empty for in-memory readers.
	Line   int    // 1-based line number.
	Text   string // The offending line.
	Reason string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("lexicon line %d: %s: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Text)
}

// LoadError wraps a failure to read a lexicon or dataset resource.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
