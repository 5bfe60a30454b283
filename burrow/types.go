package burrow

import "errors"

// Burrow dimensions.
const (
	HallwaySize   = 7 // resting positions in the hallway
	RoomCount     = 4 // one room per kind
	MaxDepth      = 4 // deepest supported room
	BaseDepth     = 2
	ExtendedDepth = 4

	// hallwayWidth is the number of physical hallway cells, openings included.
	hallwayWidth = 11
)

// Sentinel errors returned by the burrow package.
var (
	// ErrMalformedDiagram indicates the input text is not shaped like a burrow diagram,
	// or a room holds a unit resting above an empty cell.
	ErrMalformedDiagram = errors.New("burrow: malformed diagram")

	// ErrUnknownCell indicates a cell holds a character other than A, B, C, D or '.'.
	ErrUnknownCell = errors.New("burrow: unknown cell")

	// ErrBlockedOpening indicates a unit occupies the hallway cell in front of a room.
	ErrBlockedOpening = errors.New("burrow: unit parked on a room opening")

	// ErrBadDepth indicates the rooms are neither BaseDepth nor ExtendedDepth rows deep.
	ErrBadDepth = errors.New("burrow: room depth must be 2 or 4")

	// ErrUnitCount indicates some kind does not occur exactly depth times.
	ErrUnitCount = errors.New("burrow: unit count does not match room depth")

	// ErrAlreadyExtended indicates Extend was applied to a depth-4 board.
	ErrAlreadyExtended = errors.New("burrow: board is already extended")

	// ErrNotExtended indicates Fold was applied to a board Extend did not produce.
	ErrNotExtended = errors.New("burrow: board does not carry the extension rows")

	// ErrIllegalMove indicates Apply was given a move the board does not allow.
	ErrIllegalMove = errors.New("burrow: illegal move")
)

// Policy selects which legal moves Moves returns.
//
// SettleFirst  – when any settling move exists, return only settling moves.
// KeepFinished – never withdraw a unit whose room is finished from its row down.
//
// Both rules prune the move graph without changing its minimum cost. With
// KeepFinished disabled the move graph may contain cycles.
type Policy struct {
	SettleFirst  bool
	KeepFinished bool
}

// DefaultPolicy returns the pruning policy used by the search engines:
// SettleFirst and KeepFinished both enabled.
func DefaultPolicy() Policy {
	return Policy{
		SettleFirst:  true,
		KeepFinished: true,
	}
}
