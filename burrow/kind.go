package burrow

import "fmt"

// Kind is the content of a cell: Empty or one of the four amphipod kinds.
type Kind uint8

// Cell contents. The order of the four kinds matches their target rooms.
const (
	Empty Kind = iota
	Amber
	Bronze
	Copper
	Desert
)

// energy per step, indexed by Kind.
var kindEnergy = [...]int64{0, 1, 10, 100, 1000}

// cell glyphs, indexed by Kind.
const kindGlyphs = ".ABCD"

// Kinds lists the four amphipod kinds in room order.
func Kinds() [RoomCount]Kind {
	return [RoomCount]Kind{Amber, Bronze, Copper, Desert}
}

// KindOf returns the kind whose target is room.
// Panics if room is outside [0, RoomCount).
func KindOf(room int) Kind {
	if room < 0 || room >= RoomCount {
		panic(fmt.Sprintf("burrow: room %d out of range", room))
	}

	return Kind(room + 1)
}

// ParseKind converts a diagram glyph into a Kind. '.' and ' ' are Empty.
func ParseKind(c byte) (Kind, error) {
	switch c {
	case '.', ' ':
		return Empty, nil
	case 'A', 'B', 'C', 'D':
		return Kind(c-'A') + Amber, nil
	}

	return Empty, fmt.Errorf("%w: %q", ErrUnknownCell, c)
}

// Room returns the index of the kind's target room, or -1 for Empty.
func (k Kind) Room() int {
	return int(k) - 1
}

// Energy returns the energy spent per step by a unit of this kind (0 for Empty).
func (k Kind) Energy() int64 {
	if int(k) >= len(kindEnergy) {
		return 0
	}

	return kindEnergy[k]
}

// Valid reports whether k is Empty or one of the four kinds.
func (k Kind) Valid() bool {
	return k <= Desert
}

// Glyph returns the diagram character of k.
func (k Kind) Glyph() byte {
	if !k.Valid() {
		return '?'
	}

	return kindGlyphs[k]
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k.Glyph())
}
