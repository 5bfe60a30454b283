package burrow_test

// Diagrams shared by the burrow tests.
const (
	// example is the standard depth-2 puzzle; its minimum cost is 12521.
	example = `
#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

	// exampleExtended is example after Extend.
	exampleExtended = `
#############
#...........#
###B#C#B#D###
  #D#C#B#A#
  #D#B#A#C#
  #A#D#C#A#
  #########
`

	// oneToSettle has a single Amber waiting at h0 above an empty top cell.
	oneToSettle = `
#############
#A..........#
###.#B#C#D###
  #A#B#C#D#
  #########
`

	// deadlock has Desert at h2 and Amber at h3, each blocking the other's way home.
	deadlock = `
#############
#...D.A.....#
###.#B#C#.###
  #A#B#C#D#
  #########
`
)
