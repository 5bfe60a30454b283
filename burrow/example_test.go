// Package burrow_test provides runnable examples for the burrow package.
package burrow_test

import (
	"fmt"

	"github.com/katalvlaran/burrow/burrow"
)

// ExampleParse shows parsing a diagram and reading its canonical key.
func ExampleParse() {
	b, err := burrow.ParseString(`
#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(b.Key())
	fmt.Println(b.Sorted())
	// Output:
	// 2|.......|BA|CD|BC|DA
	// false
}

// ExampleExtend shows the depth-4 variant of a depth-2 board.
func ExampleExtend() {
	b := burrow.MustParse(`
#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`)
	ext, err := burrow.Extend(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(ext)
	// Output:
	// #############
	// #...........#
	// ###B#C#B#D###
	//   #D#C#B#A#
	//   #D#B#A#C#
	//   #A#D#C#A#
	//   #########
}

// ExampleBoard_Moves lists the settling moves available to a nearly sorted board.
// With the default policy, settling moves suppress every withdrawal.
func ExampleBoard_Moves() {
	b := burrow.MustParse(`
#############
#.A...B.....#
###.#.#C#D###
  #A#B#C#D#
  #########
`)
	for _, m := range b.Moves(burrow.DefaultPolicy()) {
		fmt.Println(m, m.Cost())
	}
	// Output:
	// A h1->A0 2
	// B h3->B0 20
}
