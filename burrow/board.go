package burrow

import (
	"fmt"
	"strings"
)

// extensionRows are the rows Extend inserts between the first and last room rows.
var extensionRows = [2][RoomCount]Kind{
	{Desert, Copper, Bronze, Amber},
	{Desert, Bronze, Amber, Copper},
}

// Board is an immutable snapshot of the burrow. It is a plain value: copying a
// Board copies every cell, so transitions never alias the source board.
//
// The zero Board is not valid; build boards with New, Parse or Goal.
type Board struct {
	hall  [HallwaySize]Kind
	rooms [RoomCount][MaxDepth]Kind
	depth uint8
}

// Key is the canonical encoding of a Board: the depth, the hallway cells in
// position order, then each room's rows top to bottom, one byte per cell.
// Equal boards have equal keys and distinct boards have distinct keys.
type Key [1 + HallwaySize + RoomCount*MaxDepth]byte

// New builds a Board from hallway contents and room rows. rows[0] is the top row
// and rows[i][r] is the cell of room r in row i, the way a diagram reads.
//
// Returns ErrBadDepth, ErrUnknownCell, ErrMalformedDiagram or ErrUnitCount
// (wrapped) when the cells do not describe a valid burrow.
func New(hall [HallwaySize]Kind, rows [][RoomCount]Kind) (Board, error) {
	var b Board
	if len(rows) != BaseDepth && len(rows) != ExtendedDepth {
		return b, fmt.Errorf("%w: got %d rows", ErrBadDepth, len(rows))
	}
	b.hall = hall
	b.depth = uint8(len(rows))
	for i, row := range rows {
		for r, k := range row {
			b.rooms[r][i] = k
		}
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}

	return b, nil
}

// Goal returns the sorted board of the given depth with an empty hallway.
// Panics if depth is neither BaseDepth nor ExtendedDepth.
func Goal(depth int) Board {
	if depth != BaseDepth && depth != ExtendedDepth {
		panic(ErrBadDepth.Error())
	}
	b := Board{depth: uint8(depth)}
	for r := 0; r < RoomCount; r++ {
		for row := 0; row < depth; row++ {
			b.rooms[r][row] = KindOf(r)
		}
	}

	return b
}

// Validate checks the board invariants: a supported depth, known cell contents,
// no unit below the room floor, no unit resting above an empty room cell, and
// exactly Depth units of every kind.
func (b Board) Validate() error {
	depth := int(b.depth)
	if depth != BaseDepth && depth != ExtendedDepth {
		return fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}

	var count [RoomCount + 1]int
	for pos, k := range b.hall {
		if !k.Valid() {
			return fmt.Errorf("%w: hallway position %d holds %d", ErrUnknownCell, pos, k)
		}
		count[k]++
	}
	for r := 0; r < RoomCount; r++ {
		occupied := false
		for row := 0; row < MaxDepth; row++ {
			k := b.rooms[r][row]
			if !k.Valid() {
				return fmt.Errorf("%w: room %d row %d holds %d", ErrUnknownCell, r, row, k)
			}
			if row >= depth && k != Empty {
				return fmt.Errorf("%w: room %d has a unit below row %d", ErrBadDepth, r, depth-1)
			}
			// units stack from the bottom of a room
			if row < depth && k == Empty && occupied {
				return fmt.Errorf("%w: room %s row %d is empty under a unit", ErrMalformedDiagram, KindOf(r), row)
			}
			occupied = occupied || k != Empty
			count[k]++
		}
	}
	for _, k := range Kinds() {
		if count[k] != depth {
			return fmt.Errorf("%w: %d units of %s, want %d", ErrUnitCount, count[k], k, depth)
		}
	}

	return nil
}

// Depth returns the number of rows in every room.
func (b Board) Depth() int {
	return int(b.depth)
}

// Hallway returns the content of hallway resting position pos.
func (b Board) Hallway(pos int) Kind {
	return b.hall[pos]
}

// Room returns the content of row in room.
func (b Board) Room(room, row int) Kind {
	return b.rooms[room][row]
}

// At returns the content of the cell at l.
func (b Board) At(l Location) Kind {
	if l.InHallway() {
		return b.hall[l.Slot]
	}

	return b.rooms[l.Room][l.Slot]
}

// Sorted reports whether every row of every room holds the room's own kind.
// The hallway is not inspected; with a valid board full rooms imply an empty hallway.
func (b Board) Sorted() bool {
	for r := 0; r < RoomCount; r++ {
		own := KindOf(r)
		for row := 0; row < int(b.depth); row++ {
			if b.rooms[r][row] != own {
				return false
			}
		}
	}

	return true
}

// Key returns the canonical encoding of b.
func (b Board) Key() Key {
	var k Key
	k[0] = b.depth
	i := 1
	for _, c := range b.hall {
		k[i] = byte(c)
		i++
	}
	for r := 0; r < RoomCount; r++ {
		for row := 0; row < MaxDepth; row++ {
			k[i] = byte(b.rooms[r][row])
			i++
		}
	}

	return k
}

// String renders k as "<depth>|<hallway>|<room A>|<room B>|<room C>|<room D>",
// e.g. "2|.......|BA|CD|BC|DA".
func (k Key) String() string {
	depth := int(k[0])
	if depth > MaxDepth {
		depth = MaxDepth
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d|", depth)
	for _, c := range k[1 : 1+HallwaySize] {
		sb.WriteByte(Kind(c).Glyph())
	}
	for r := 0; r < RoomCount; r++ {
		sb.WriteByte('|')
		base := 1 + HallwaySize + r*MaxDepth
		for _, c := range k[base : base+depth] {
			sb.WriteByte(Kind(c).Glyph())
		}
	}

	return sb.String()
}

// String renders b as a burrow diagram that Parse accepts.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	line := []byte(strings.Repeat(".", hallwayWidth))
	for pos, k := range b.hall {
		line[hallwayAxis[pos]] = k.Glyph()
	}
	sb.Write(line)
	sb.WriteString("#\n")
	for row := 0; row < int(b.depth); row++ {
		if row == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for r := 0; r < RoomCount; r++ {
			sb.WriteByte(b.rooms[r][row].Glyph())
			sb.WriteByte('#')
		}
		if row == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########\n")

	return sb.String()
}

// Extend inserts the two fixed extension rows (D C B A and D B A C) between the
// first and last room rows, turning a depth-2 board into a depth-4 board.
// Returns ErrAlreadyExtended if b is not a depth-2 board.
func Extend(b Board) (Board, error) {
	if b.depth != BaseDepth {
		return Board{}, fmt.Errorf("%w: depth %d", ErrAlreadyExtended, b.depth)
	}
	out := b
	out.depth = ExtendedDepth
	for r := 0; r < RoomCount; r++ {
		out.rooms[r][3] = b.rooms[r][1]
		out.rooms[r][1] = extensionRows[0][r]
		out.rooms[r][2] = extensionRows[1][r]
	}

	return out, nil
}

// Fold removes the two extension rows from a depth-4 board, the inverse of Extend.
// Returns ErrNotExtended unless rows 1 and 2 are exactly the extension rows.
func Fold(b Board) (Board, error) {
	if b.depth != ExtendedDepth {
		return Board{}, fmt.Errorf("%w: depth %d", ErrNotExtended, b.depth)
	}
	for r := 0; r < RoomCount; r++ {
		if b.rooms[r][1] != extensionRows[0][r] || b.rooms[r][2] != extensionRows[1][r] {
			return Board{}, fmt.Errorf("%w: room %s", ErrNotExtended, KindOf(r))
		}
	}
	out := b
	out.depth = BaseDepth
	for r := 0; r < RoomCount; r++ {
		out.rooms[r][1] = b.rooms[r][3]
		out.rooms[r][2] = Empty
		out.rooms[r][3] = Empty
	}

	return out, nil
}
