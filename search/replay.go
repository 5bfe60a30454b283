package search

import (
	"fmt"

	"github.com/katalvlaran/burrow/burrow"
)

// Replay applies moves to b in order, checking each with burrow.Board.Apply,
// and returns the final board together with the energy spent.
// On an illegal move it returns the board reached so far, the energy spent up
// to that point and an error wrapping burrow.ErrIllegalMove.
func Replay(b burrow.Board, moves []burrow.Move) (burrow.Board, int64, error) {
	var total int64
	for i, m := range moves {
		next, err := b.Apply(m)
		if err != nil {
			return b, total, fmt.Errorf("search: replaying move %d: %w", i, err)
		}
		total += m.Cost()
		b = next
	}

	return b, total, nil
}
