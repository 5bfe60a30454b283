package search_test

import "github.com/katalvlaran/burrow/burrow"

// Boards shared by the search tests.
var (
	// example is the standard depth-2 puzzle.
	example = burrow.MustParse(`
#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`)

	// oneToSettle needs a single 3-energy move.
	oneToSettle = burrow.MustParse(`
#############
#A..........#
###.#B#C#D###
  #A#B#C#D#
  #########
`)

	// swapAD must exchange the Desert on top of room A with the Amber on top of
	// room D. Some parking choices deadlock; the optimum is 8010.
	swapAD = burrow.MustParse(`
#############
#...........#
###D#B#C#A###
  #A#B#C#D#
  #########
`)

	// deadlock has Desert at h2 and Amber at h3, each blocking the other's way home.
	deadlock = burrow.MustParse(`
#############
#...D.A.....#
###.#B#C#.###
  #A#B#C#D#
  #########
`)
)

const (
	exampleCost         = 12521
	exampleExtendedCost = 44169
	swapADCost          = 8010
)

func extended(b burrow.Board) burrow.Board {
	ext, err := burrow.Extend(b)
	if err != nil {
		panic(err)
	}

	return ext
}
