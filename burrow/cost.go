package burrow

import "golang.org/x/exp/constraints"

// Distance returns the number of steps a unit walks between a and b, moving only
// along the hallway and straight up or down inside rooms.
// Distance is symmetric: Distance(a, b) == Distance(b, a).
//
// Complexity: O(1).
func Distance(a, b Location) int {
	horizontal := absDiff(a.axis(), b.axis())
	if !a.InHallway() && !b.InHallway() && a.Room != b.Room {
		// climb out of one room and down into the other
		return horizontal + a.steps() + b.steps()
	}

	return horizontal + absDiff(a.steps(), b.steps())
}

// Cost returns the energy a unit of kind k spends walking from a to b.
func Cost(k Kind, a, b Location) int64 {
	return int64(Distance(a, b)) * k.Energy()
}

func absDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}

	return v
}
