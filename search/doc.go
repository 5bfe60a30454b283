// Package search finds the minimum energy needed to sort an amphipod burrow.
//
// Overview:
//
//   - Solve / MinCost run a memoized depth-first search. minCost(board) is 0 for a
//     sorted board, the cached value for a board seen before, Unreachable for a
//     dead end, and otherwise the minimum over legal moves of
//     (move cost + minCost(next board)). The cache belongs to one call.
//   - Dijkstra explores the same implicit move graph with a priority frontier.
//     It is slower but correct on cyclic move graphs, which makes it the
//     reference for validating the pruning rules of burrow.Policy.
//   - Replay re-applies a move sequence with full legality checks.
//
// Why memoization is exact here:
//
//	All move costs are positive and, under burrow.DefaultPolicy, every unit
//	leaves its starting room at most once and settles at most once. The move
//	graph is therefore a finite DAG and each board has a single true minimum,
//	so caching it never changes an answer.
//
// Options:
//
//   - WithPolicy(p)        move generator policy (default burrow.DefaultPolicy()).
//   - WithReturnPath()     fill Result.Path with one optimal move sequence.
//   - WithStrictDeadEnds() fail with ErrDeadEnd instead of pruning dead ends.
//   - WithContext(ctx)     cancellation, checked once per expanded board.
//   - WithLogger(l)        logrus logger for start/finish entries.
//   - WithMaxCost(c)       Dijkstra only: do not expand boards costlier than c.
//
// Errors (sentinel):
//
//   - ErrInvalidBoard     the start board breaks a burrow invariant.
//   - ErrSearchExhausted  no sorted board is reachable.
//   - ErrDeadEnd          strict mode met an unsorted board without moves.
//   - ErrCycleDetected    the memoized engine re-entered a board in progress.
//   - ErrBadMaxCost       WithMaxCost was given a negative value (panic).
//
// Thread safety:
//
//	Each call owns its cache and result. Independent calls may run concurrently.
package search
