package search

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/burrow/burrow"
)

// Dijkstra computes the minimum energy needed to sort b by running Dijkstra's
// algorithm over the implicit move graph: boards are vertices, legal moves under
// Options.Policy are edges weighted by their cost.
//
// Unlike Solve it handles cyclic move graphs, so it can search with
// Policy.KeepFinished disabled. It stops as soon as a sorted board is popped from
// the frontier; boards whose distance exceeds Options.MaxCost are not expanded.
//
// Errors:
//
//   - ErrInvalidBoard     if b violates a burrow invariant.
//   - ErrSearchExhausted  if no sorted board is reachable within MaxCost.
//   - ErrDeadEnd          on the first dead end, with WithStrictDeadEnds.
//   - ctx.Err()           if the context is cancelled.
//
// Complexity: O((V + E) log V) over the boards reachable below the answer.
func Dijkstra(b burrow.Board, opts ...Option) (*Result, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	cfg := buildOptions(opts)

	r := &runner{
		opts:    cfg,
		dist:    make(map[burrow.Key]int64),
		visited: make(map[burrow.Key]bool),
		pq:      make(nodePQ, 0, 64),
		res:     &Result{},
	}
	if cfg.ReturnPath {
		r.prev = make(map[burrow.Key]step)
	}

	started := time.Now()
	log := cfg.Logger.WithFields(logrus.Fields{
		"engine": "dijkstra",
		"depth":  b.Depth(),
		"board":  b.Key().String(),
	})
	log.Debug("search started")

	r.init(b)
	goal, cost, found, err := r.process()
	if err != nil {
		log.WithError(err).Warn("search aborted")
		return nil, err
	}
	fields := logrus.Fields{
		"states":    r.res.States,
		"dead_ends": r.res.DeadEnds,
		"elapsed":   time.Since(started),
	}
	if !found {
		log.WithFields(fields).Warn("no sorted board reachable")
		return nil, fmt.Errorf("%w: %d boards expanded", ErrSearchExhausted, r.res.States)
	}

	r.res.Cost = cost
	if r.prev != nil {
		r.res.Path = r.path(b.Key(), goal)
	}
	fields["cost"] = cost
	log.WithFields(fields).Info("search finished")

	return r.res, nil
}

// step records how a board was first reached on its shortest path.
type step struct {
	from burrow.Key
	move burrow.Move
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	opts    Options
	dist    map[burrow.Key]int64 // best known distance; absent means unreached
	prev    map[burrow.Key]step  // predecessor links, nil unless ReturnPath
	visited map[burrow.Key]bool  // finalized boards
	pq      nodePQ
	res     *Result
}

// init pushes the start board with distance 0.
func (r *runner) init(start burrow.Board) {
	r.dist[start.Key()] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{board: start, dist: 0})
}

// process pops boards in order of distance until a sorted one is finalized.
func (r *runner) process() (burrow.Key, int64, bool, error) {
	for r.pq.Len() > 0 {
		// 1) Honor cancellation once per pop.
		select {
		case <-r.opts.Ctx.Done():
			return burrow.Key{}, 0, false, r.opts.Ctx.Err()
		default:
		}

		// 2) Pop the cheapest board; skip stale entries left by lazy decrease-key.
		item := heap.Pop(&r.pq).(*nodeItem)
		key := item.board.Key()
		if r.visited[key] {
			continue
		}

		// 3) Everything left on the frontier is beyond MaxCost.
		if item.dist > r.opts.MaxCost {
			break
		}

		// 4) Finalize the board. The first sorted board popped is the answer.
		r.visited[key] = true
		if item.board.Sorted() {
			return key, item.dist, true, nil
		}

		// 5) Relax every move out of it.
		if err := r.relax(item); err != nil {
			return burrow.Key{}, 0, false, err
		}
	}

	return burrow.Key{}, 0, false, nil
}

// relax pushes every improved successor of item onto the frontier.
func (r *runner) relax(item *nodeItem) error {
	// 1) Generate moves; an unsorted board without any is a dead end.
	r.res.States++
	moves := item.board.Moves(r.opts.Policy)
	from := item.board.Key()
	if len(moves) == 0 {
		r.res.DeadEnds++
		if r.opts.Strict {
			return fmt.Errorf("%w: %s", ErrDeadEnd, from)
		}
		r.opts.Logger.WithField("board", from.String()).Debug("dead end")

		return nil
	}

	// 2) Push each successor whose tentative distance improves and stays within MaxCost.
	for _, m := range moves {
		next := item.board.Next(m)
		nk := next.Key()
		if r.visited[nk] {
			continue
		}
		nd := item.dist + m.Cost()
		if nd > r.opts.MaxCost {
			continue
		}
		if d, ok := r.dist[nk]; ok && nd >= d {
			continue
		}
		r.dist[nk] = nd
		if r.prev != nil {
			r.prev[nk] = step{from: from, move: m}
		}
		heap.Push(&r.pq, &nodeItem{board: next, dist: nd})
	}

	return nil
}

// path walks the predecessor links back from goal to start.
func (r *runner) path(start, goal burrow.Key) []burrow.Move {
	var rev []burrow.Move
	for k := goal; k != start; {
		s, ok := r.prev[k]
		if !ok {
			break
		}
		rev = append(rev, s.move)
		k = s.from
	}
	path := make([]burrow.Move, len(rev))
	for i, m := range rev {
		path[len(rev)-1-i] = m
	}

	return path
}

// nodeItem is a board on the frontier with its tentative distance.
type nodeItem struct {
	board burrow.Board
	dist  int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
