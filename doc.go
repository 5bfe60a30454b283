// Package burrow is the root of a small solver for the amphipod burrow puzzle:
// four kinds of units must be moved from a shared hallway and four side rooms
// into their own rooms, spending as little energy as possible.
//
// 🚀 What is inside?
//
//	• Board model: parse and render diagrams, fold and extend rooms
//	• Move rules: settling and withdrawal moves with exact energy costs
//	• Search: memoized depth-first engine plus a Dijkstra reference engine
//	• Replay: re-check any move sequence and total its energy
//
// Subpackages:
//
//	burrow/      Board, Kind, Location, Move; parsing, move generation, cost model
//	search/      Solve, MinCost, Dijkstra, Replay; options and results
//	cmd/burrow/  command line front end solving both puzzle sizes concurrently
//
// Quick ASCII example:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// sorts for 12521 energy; with the two extra rows inserted it needs 44169.
//
//	go install github.com/katalvlaran/burrow/cmd/burrow@latest
package burrow
