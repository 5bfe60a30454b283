package burrow

import "fmt"

// Move relocates a single unit of kind Kind from From to To.
// Exactly one of From and To is a hallway cell.
type Move struct {
	From Location
	To   Location
	Kind Kind
}

// Settling reports whether m moves a unit from the hallway into a room.
func (m Move) Settling() bool {
	return m.From.InHallway()
}

// Distance returns the number of steps walked by m.
func (m Move) Distance() int {
	return Distance(m.From, m.To)
}

// Cost returns the energy spent by m.
func (m Move) Cost() int64 {
	return Cost(m.Kind, m.From, m.To)
}

// String renders m as "<kind> <from>-><to>", e.g. "B C0->h2".
func (m Move) String() string {
	return fmt.Sprintf("%s %s->%s", m.Kind, m.From, m.To)
}

// Moves enumerates the legal moves of b under p.
//
// Settling moves come first, ordered by hallway position. When p.SettleFirst is
// set and at least one settling move exists, only settling moves are returned.
// Withdrawals are ordered by destination position, then room.
//
// A sorted board may still have moves; callers check Sorted first.
func (b Board) Moves(p Policy) []Move {
	// 1) Settling moves always come first.
	moves := b.SettlingMoves()
	if p.SettleFirst && len(moves) > 0 {
		return moves
	}

	// 2) Withdrawals, optionally keeping finished units in place.
	return append(moves, b.WithdrawalMoves(p.KeepFinished)...)
}

// SettlingMoves returns every legal hallway → room move of b.
// The landing row is always the deepest empty row, so each hallway unit has at
// most one settling move.
func (b Board) SettlingMoves() []Move {
	var moves []Move
	for pos, k := range b.hall {
		if k == Empty {
			continue
		}
		room := k.Room()
		row, ok := b.LandingRow(room)
		if !ok || !b.CanSettle(pos, room, row) {
			continue
		}
		moves = append(moves, Move{From: HallwayAt(pos), To: RoomAt(room, row), Kind: k})
	}

	return moves
}

// WithdrawalMoves returns every legal room → hallway move of b. When keepFinished
// is false, units already finished in their own room may be withdrawn too.
func (b Board) WithdrawalMoves(keepFinished bool) []Move {
	var moves []Move
	for pos := 0; pos < HallwaySize; pos++ {
		if b.hall[pos] != Empty {
			continue
		}
		for room := 0; room < RoomCount; room++ {
			row, ok := b.topRow(room)
			if !ok || !b.canLeave(room, row, pos) {
				continue
			}
			if keepFinished && b.RoomFinishedFrom(room, row) {
				continue
			}
			moves = append(moves, Move{From: RoomAt(room, row), To: HallwayAt(pos), Kind: b.rooms[room][row]})
		}
	}

	return moves
}

// CanWithdraw reports whether the unit in room at row may walk to hallway
// position pos. All of the following must hold:
//
//  1. the cell is occupied and every row above it is empty;
//  2. every hallway cell from the room opening to pos, pos included, is empty;
//  3. the room is not finished from row down (see RoomFinishedFrom).
func (b Board) CanWithdraw(room, row, pos int) bool {
	return b.canLeave(room, row, pos) && !b.RoomFinishedFrom(room, row)
}

// RoomFinishedFrom reports whether every row of room from row to the bottom holds
// the room's own kind. Withdrawing such a unit never helps.
func (b Board) RoomFinishedFrom(room, row int) bool {
	if !b.inRoom(room, row) {
		return false
	}
	own := KindOf(room)
	for r := row; r < int(b.depth); r++ {
		if b.rooms[room][r] != own {
			return false
		}
	}

	return true
}

// CanSettle reports whether the unit at hallway position pos may walk into room
// at row. All of the following must hold:
//
//  1. the unit targets room;
//  2. room holds no unit of another kind;
//  3. row is the deepest empty row of room and every row above it is empty;
//  4. every hallway cell between pos and the room opening is empty.
func (b Board) CanSettle(pos, room, row int) bool {
	if pos < 0 || pos >= HallwaySize || !b.inRoom(room, row) {
		return false
	}
	// 1) The unit must target this room.
	k := b.hall[pos]
	if k == Empty || k.Room() != room {
		return false
	}

	// 2) The room accepts it exactly at row.
	landing, ok := b.LandingRow(room)
	if !ok || landing != row {
		return false
	}

	// 3) Nothing stands between pos and the opening.
	return b.hallwayClear(room, pos, false)
}

// LandingRow returns the row a unit entering room would settle on: the deepest
// empty row. It reports false when the room is full or holds a foreign unit.
func (b Board) LandingRow(room int) (int, bool) {
	own := KindOf(room)
	landing := -1
	for row := 0; row < int(b.depth); row++ {
		switch k := b.rooms[room][row]; {
		case k == Empty:
			if landing != row-1 {
				// empty cell under an occupied one
				return -1, false
			}
			landing = row
		case k != own:
			return -1, false
		}
	}

	return landing, landing >= 0
}

// Apply returns the board after m. The move must be physically legal: a
// withdrawal must satisfy rules 1 and 2 of CanWithdraw, a settling move must
// satisfy CanSettle, and m.Kind must match the moving unit. Rule 3 of
// CanWithdraw is a pruning rule and is not enforced.
//
// Returns ErrIllegalMove (wrapped) otherwise; b itself is never modified.
func (b Board) Apply(m Move) (Board, error) {
	if !b.legal(m) {
		return Board{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	return b.apply(m), nil
}

// Next returns the board after m without checking legality. Intended for moves
// produced by Moves on the same board.
func (b Board) Next(m Move) Board {
	return b.apply(m)
}

func (b Board) legal(m Move) bool {
	switch {
	case m.From.InHallway() && !m.To.InHallway():
		return b.CanSettle(m.From.Slot, m.To.Room, m.To.Slot) && b.hall[m.From.Slot] == m.Kind
	case !m.From.InHallway() && m.To.InHallway():
		return b.canLeave(m.From.Room, m.From.Slot, m.To.Slot) && b.rooms[m.From.Room][m.From.Slot] == m.Kind
	}

	return false
}

// apply moves the unit and returns the new board. b is a copy, so the
// receiver's caller never observes the change.
func (b Board) apply(m Move) Board {
	k := b.At(m.From)
	b.set(m.From, Empty)
	b.set(m.To, k)

	return b
}

func (b *Board) set(l Location, k Kind) {
	if l.InHallway() {
		b.hall[l.Slot] = k
		return
	}
	b.rooms[l.Room][l.Slot] = k
}

// canLeave checks withdrawal rules 1 and 2: occupied source, empty rows above,
// and a clear hallway path up to and including pos.
func (b Board) canLeave(room, row, pos int) bool {
	if pos < 0 || pos >= HallwaySize || !b.inRoom(room, row) {
		return false
	}
	if b.rooms[room][row] == Empty {
		return false
	}
	for r := 0; r < row; r++ {
		if b.rooms[room][r] != Empty {
			return false
		}
	}

	return b.hallwayClear(room, pos, true)
}

// topRow returns the highest occupied row of room.
func (b Board) topRow(room int) (int, bool) {
	for row := 0; row < int(b.depth); row++ {
		if b.rooms[room][row] != Empty {
			return row, true
		}
	}

	return -1, false
}

// hallwayClear reports whether every hallway resting cell between the opening of
// room and pos is empty. pos itself is checked only when includePos is set.
// Room r opens between positions r+1 and r+2.
func (b Board) hallwayClear(room, pos int, includePos bool) bool {
	lo, hi := pos, room+1
	if pos >= room+2 {
		lo, hi = room+2, pos
	}
	for p := lo; p <= hi; p++ {
		if p == pos && !includePos {
			continue
		}
		if b.hall[p] != Empty {
			return false
		}
	}

	return true
}

func (b Board) inRoom(room, row int) bool {
	return room >= 0 && room < RoomCount && row >= 0 && row < int(b.depth)
}
