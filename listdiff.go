// Package listdiff computes the difference between two ordered lists and
// turns it into the insert, remove, move and change notifications a list
// view needs to update itself incrementally.
//
// The edit script is found with the Myers O((N+M)D) algorithm using a
// bidirectional middle-snake search. Instead of recursing into the two
// halves around each middle snake, the search keeps an explicit stack of
// ranges, so very long lists cannot exhaust the goroutine stack.
//
// On top of the Myers diagonals, listdiff:
//   - Matches removed and inserted items that are the same item (moves)
//   - Tells apart unchanged items from items whose contents changed
//   - Replays the result as batched list update callbacks
package listdiff

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Callback is used by CalculateDiff to inspect the two lists.
//
// Implementations must be free of side effects. Methods are called many times
// and in no particular order.
type Callback interface {
	// OldSize returns the size of the old list.
	OldSize() int
	// NewSize returns the size of the new list.
	NewSize() int
	// AreItemsTheSame reports whether the two positions hold the same item,
	// typically by comparing ids.
	AreItemsTheSame(oldIndex, newIndex int) bool
	// AreContentsTheSame reports whether two items that are the same item
	// also have the same contents. It is only called for pairs for which
	// AreItemsTheSame returned true.
	AreContentsTheSame(oldIndex, newIndex int) bool
}

// options holds configuration for CalculateDiff.
type options struct {
	detectMoves bool
	logger      zerolog.Logger
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	return &options{
		detectMoves: true,
		logger:      zerolog.Nop(),
	}
}

// Option configures diff behavior.
type Option func(*options)

// WithDetectMoves enables or disables matching of removed and inserted
// items into moves. Move detection costs O(R*A) extra comparisons where R
// and A are the number of removed and added items.
// Default: true.
func WithDetectMoves(enabled bool) Option {
	return func(o *options) {
		o.detectMoves = enabled
	}
}

// WithLogger sets the logger used for debug tracing of the computation.
// Default: a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// CalculateDiff computes the list of update operations that convert the old
// list described by cb into the new one.
func CalculateDiff(cb Callback, opts ...Option) (*DiffResult, error) {
	if cb == nil {
		return nil, ErrNilCallback
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	oldSize := cb.OldSize()
	newSize := cb.NewSize()
	if oldSize < 0 || newSize < 0 {
		return nil, fmt.Errorf("calculate diff: %w", &SizeError{Old: oldSize, New: newSize})
	}

	ctx := newDiffContext(cb, oldSize, newSize, o.logger)
	diagonals := ctx.computeDiagonals()

	result := newDiffResult(cb, diagonals, oldSize, newSize, o.detectMoves, o.logger)
	o.logger.Debug().
		Int("old_size", oldSize).
		Int("new_size", newSize).
		Int("diagonals", len(diagonals)).
		Bool("detect_moves", o.detectMoves).
		Int("moves", result.moveCount()).
		Msg("diff calculated")
	return result, nil
}
