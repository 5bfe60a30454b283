// Package search defines types and options for the minimum-energy searches over
// burrow boards: the memoized depth-first engine (Solve, MinCost) and the
// priority-frontier engine (Dijkstra).
package search

import (
	"context"
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/burrow/burrow"
)

// Unreachable is the cost of a board from which no sorted board can be reached.
// It never wins a minimum comparison.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the search engines.
var (
	// ErrInvalidBoard indicates the starting board violates a burrow invariant.
	ErrInvalidBoard = errors.New("search: invalid board")

	// ErrSearchExhausted indicates no sorted board is reachable from the start.
	ErrSearchExhausted = errors.New("search: no sorted board is reachable")

	// ErrDeadEnd indicates a board with no legal moves that is not sorted.
	// Returned only in strict mode; otherwise such boards cost Unreachable.
	ErrDeadEnd = errors.New("search: board has no legal moves and is not sorted")

	// ErrCycleDetected indicates the memoized engine re-entered a board that is
	// still being evaluated. Possible only when Policy.KeepFinished is disabled.
	ErrCycleDetected = errors.New("search: move graph contains a cycle")

	// ErrBadMaxCost indicates WithMaxCost was given a negative value.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")
)

// Options configures both search engines.
//
// Ctx        – cancellation; checked once per expanded board. Default Background.
// Policy     – move generator policy. Default burrow.DefaultPolicy().
// ReturnPath – if true, Result.Path holds one optimal move sequence.
// Strict     – if true, the first dead end aborts the search with ErrDeadEnd.
// MaxCost    – Dijkstra only: boards costlier than this are not expanded.
// Logger     – receives start/finish entries. Default discards everything.
type Options struct {
	Ctx        context.Context
	Policy     burrow.Policy
	ReturnPath bool
	Strict     bool
	MaxCost    int64
	Logger     logrus.FieldLogger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPolicy sets the move generator policy. Disabling KeepFinished makes the
// move graph cyclic; only Dijkstra can search such a graph.
func WithPolicy(p burrow.Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithReturnPath enables reconstruction of an optimal move sequence.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithStrictDeadEnds turns every dead end into an ErrDeadEnd failure instead of
// an Unreachable branch.
func WithStrictDeadEnds() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithMaxCost caps the cost Dijkstra explores. Panics on a negative value.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithLogger sets the logger receiving search progress. Passing nil has no effect.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the options used when none are given:
// background context, burrow.DefaultPolicy(), no path, lenient dead ends,
// no cost cap and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Policy:     burrow.DefaultPolicy(),
		ReturnPath: false,
		Strict:     false,
		MaxCost:    Unreachable,
		Logger:     discardLogger(),
	}
}

// Result is the outcome of a search.
type Result struct {
	// Cost is the minimum energy needed to sort the board.
	Cost int64

	// Path is one optimal move sequence; nil unless WithReturnPath was given.
	Path []burrow.Move

	// States counts distinct boards expanded (moves generated).
	States int

	// CacheHits counts memo lookups answered without recomputation.
	// Always zero for Dijkstra.
	CacheHits int

	// DeadEnds counts unsorted boards without legal moves.
	DeadEnds int
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}
