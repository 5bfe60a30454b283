package search

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/burrow/burrow"
)

// memo is the cache of one Solve call. It is never shared between calls.
type memo struct {
	cost    map[burrow.Key]int64       // settled minimum per board (Unreachable for dead ends)
	best    map[burrow.Key]burrow.Move // first move of an optimal continuation
	onStack map[burrow.Key]bool        // boards still being evaluated
}

func newMemo() memo {
	return memo{
		cost:    make(map[burrow.Key]int64),
		best:    make(map[burrow.Key]burrow.Move),
		onStack: make(map[burrow.Key]bool),
	}
}

// walker holds the state of a single memoized search.
type walker struct {
	opts Options
	memo memo
	res  *Result
}

// Solve computes the minimum energy needed to sort b with the memoized
// depth-first engine.
//
// Every board is expanded at most once: the minimum over its legal moves of
// (move cost + cost of the resulting board) is cached under its Key before the
// call returns. With the default policy each unit moves at most twice, so the
// recursion depth is bounded by twice the unit count.
//
// Errors:
//
//   - ErrInvalidBoard     if b violates a burrow invariant.
//   - ErrSearchExhausted  if no sorted board is reachable.
//   - ErrDeadEnd          on the first dead end, with WithStrictDeadEnds.
//   - ErrCycleDetected    if the policy makes the move graph cyclic.
//   - ctx.Err()           if the context is cancelled.
func Solve(b burrow.Board, opts ...Option) (*Result, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	cfg := buildOptions(opts)

	w := &walker{
		opts: cfg,
		memo: newMemo(),
		res:  &Result{},
	}

	started := time.Now()
	log := cfg.Logger.WithFields(logrus.Fields{
		"engine": "memo",
		"depth":  b.Depth(),
		"board":  b.Key().String(),
	})
	log.Debug("search started")

	cost, err := w.minCost(b)
	if err != nil {
		log.WithError(err).Warn("search aborted")
		return nil, err
	}
	fields := logrus.Fields{
		"states":     w.res.States,
		"cache_hits": w.res.CacheHits,
		"dead_ends":  w.res.DeadEnds,
		"elapsed":    time.Since(started),
	}
	if cost == Unreachable {
		log.WithFields(fields).Warn("no sorted board reachable")
		return nil, fmt.Errorf("%w: %d dead ends", ErrSearchExhausted, w.res.DeadEnds)
	}

	w.res.Cost = cost
	if cfg.ReturnPath {
		w.res.Path = w.path(b)
	}
	fields["cost"] = cost
	log.WithFields(fields).Info("search finished")

	return w.res, nil
}

// MinCost is Solve reduced to the minimum energy.
func MinCost(b burrow.Board, opts ...Option) (int64, error) {
	res, err := Solve(b, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// minCost returns the cheapest cost of sorting b, or Unreachable.
func (w *walker) minCost(b burrow.Board) (int64, error) {
	// 1) Honor cancellation once per step.
	select {
	case <-w.opts.Ctx.Done():
		return 0, w.opts.Ctx.Err()
	default:
	}

	// 2) A sorted board costs nothing more.
	if b.Sorted() {
		return 0, nil
	}

	// 3) Answer from the cache, or fail if the board is still in progress.
	key := b.Key()
	if c, ok := w.memo.cost[key]; ok {
		w.res.CacheHits++
		return c, nil
	}
	if w.memo.onStack[key] {
		return 0, fmt.Errorf("%w: re-entered %s", ErrCycleDetected, key)
	}
	w.memo.onStack[key] = true
	defer delete(w.memo.onStack, key)

	// 4) Expand the board; without moves it is a dead end.
	w.res.States++
	moves := b.Moves(w.opts.Policy)
	if len(moves) == 0 {
		w.res.DeadEnds++
		if w.opts.Strict {
			return 0, fmt.Errorf("%w: %s", ErrDeadEnd, key)
		}
		w.opts.Logger.WithField("board", key.String()).Debug("dead end")
		w.memo.cost[key] = Unreachable

		return Unreachable, nil
	}

	// 5) Take the cheapest move whose continuation reaches a sorted board.
	best := Unreachable
	var bestMove burrow.Move
	for _, m := range moves {
		rest, err := w.minCost(b.Next(m))
		if err != nil {
			return 0, err
		}
		if rest == Unreachable {
			continue
		}
		if total := m.Cost() + rest; total < best {
			best = total
			bestMove = m
		}
	}

	// 6) Cache the minimum, Unreachable included.
	w.memo.cost[key] = best
	if w.opts.ReturnPath && best != Unreachable {
		w.memo.best[key] = bestMove
	}

	return best, nil
}

// path follows the cached optimal moves from b to a sorted board.
func (w *walker) path(b burrow.Board) []burrow.Move {
	var path []burrow.Move
	for !b.Sorted() {
		m, ok := w.memo.best[b.Key()]
		if !ok {
			break
		}
		path = append(path, m)
		b = b.Next(m)
	}

	return path
}
