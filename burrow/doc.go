// Package burrow models the amphipod burrow: a hallway of seven resting cells and
// four narrow rooms, each a stack of two (base) or four (extended) cells.
//
// Overview:
//
//   - Kind enumerates the four amphipod kinds. Each kind carries two fixed constants:
//     the index of its target room and the energy spent per step (1, 10, 100, 1000).
//   - Board is an immutable value. Every transition (Apply, Extend, Fold) returns a
//     new Board; nothing reachable from another reference is ever mutated.
//   - Key is a fixed-width, order-preserving encoding of a Board, injective by
//     construction, suitable as a memoization key.
//   - Moves enumerates the legal single-unit moves of a Board under a Policy.
//   - Distance and Move.Cost implement the energy model.
//
// Geometry:
//
//	axis:     0 1 2 3 4 5 6 7 8 9 10
//	hallway:  0 1 . 2 . 3 . 4 . 5 6     (resting positions)
//	rooms:        A   B   C   D         (openings at axis 2, 4, 6, 8)
//
// Units never stop on a room opening. Room r opens between hallway positions r+1
// and r+2. Row 0 is the top of a room, one step below the hallway.
//
// Move classes:
//
//   - Withdrawal: room → hallway. Legal when the rows above the unit are empty, the
//     hallway path from the opening to the destination (inclusive) is empty, and the
//     room is not already finished from the unit's row down (CanWithdraw).
//   - Settling: hallway → room. Legal when the unit targets that room, the room holds
//     no foreign unit, the landing row is the deepest empty row, and the hallway path
//     to the opening is empty (CanSettle).
//
// Under DefaultPolicy, if any settling move exists only settling moves are returned.
//
// Errors (sentinel):
//
//   - ErrMalformedDiagram  if the text diagram is not shaped like a burrow, or a
//     room holds a unit above an empty cell.
//   - ErrUnknownCell       if a cell holds something other than A, B, C, D or '.'.
//   - ErrBlockedOpening    if a unit is parked in front of a room opening.
//   - ErrBadDepth          if the rooms are not 2 or 4 rows deep.
//   - ErrUnitCount         if a kind does not occur exactly depth times.
//   - ErrAlreadyExtended   if Extend is applied to a depth-4 board.
//   - ErrNotExtended       if Fold is applied to a board Extend did not produce.
//   - ErrIllegalMove       if Apply is given a move the board does not allow.
package burrow
