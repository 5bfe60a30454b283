package burrow

import "fmt"

// Hallway is the Room value of a Location in the hallway.
const Hallway = -1

// hallwayAxis maps a hallway resting position onto the physical hallway axis.
var hallwayAxis = [HallwaySize]int{0, 1, 3, 5, 7, 9, 10}

// Location addresses a single cell of the burrow.
// In the hallway Room is Hallway and Slot is the resting position [0, HallwaySize).
// In a room Room is the room index and Slot is the row, 0 being the top.
type Location struct {
	Room int
	Slot int
}

// HallwayAt returns the Location of hallway resting position pos.
func HallwayAt(pos int) Location {
	return Location{Room: Hallway, Slot: pos}
}

// RoomAt returns the Location of row in room.
func RoomAt(room, row int) Location {
	return Location{Room: room, Slot: row}
}

// InHallway reports whether l is a hallway cell.
func (l Location) InHallway() bool {
	return l.Room == Hallway
}

// axis projects l onto the physical hallway axis. A room cell projects onto
// its room opening.
func (l Location) axis() int {
	if l.InHallway() {
		return hallwayAxis[l.Slot]
	}

	return openingAxis(l.Room)
}

// steps returns the number of vertical steps between l and the hallway.
func (l Location) steps() int {
	if l.InHallway() {
		return 0
	}

	return l.Slot + 1
}

// String renders a hallway cell as "h<pos>" and a room cell as "<kind><row>",
// e.g. "h3" or "C1".
func (l Location) String() string {
	if l.InHallway() {
		return fmt.Sprintf("h%d", l.Slot)
	}
	if l.Room < 0 || l.Room >= RoomCount {
		return fmt.Sprintf("r%d:%d", l.Room, l.Slot)
	}

	return fmt.Sprintf("%s%d", KindOf(l.Room), l.Slot)
}

// openingAxis returns the hallway axis coordinate of the cell in front of room.
func openingAxis(room int) int {
	return 2 + 2*room
}
