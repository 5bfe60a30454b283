package burrow

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// roomColumns are the diagram columns holding the four room cells.
var roomColumns = [RoomCount]int{3, 5, 7, 9}

// Fixed diagram lines. In the room row templates '.' marks a room cell.
const (
	topWall       = "#############"
	bottomWall    = "  #########"
	firstRoomRow  = "###.#.#.#.###"
	deeperRoomRow = "  #.#.#.#.#"
)

// Parse reads a burrow diagram:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The hallway line holds 11 cells ('.' or ' ' for empty, A–D for a unit); the
// cells in front of the rooms must be empty. It is followed by 2 or 4 room lines
// shaped exactly like the ones above, and the closing wall line. Blank lines
// around the diagram and trailing whitespace are ignored. Input is read as UTF-8;
// a leading byte order mark is dropped and UTF-16 input with a BOM is decoded.
//
// Errors: ErrMalformedDiagram, ErrUnknownCell, ErrBlockedOpening, ErrBadDepth
// and ErrUnitCount, wrapped with the offending line and column.
func Parse(r io.Reader) (Board, error) {
	var lines []string
	sc := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return Board{}, fmt.Errorf("burrow: reading diagram: %w", err)
	}

	// drop blank lines around the diagram
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 4 {
		return Board{}, fmt.Errorf("%w: %d lines", ErrMalformedDiagram, len(lines))
	}
	if lines[0] != topWall {
		return Board{}, fmt.Errorf("%w: line 1 must be %q", ErrMalformedDiagram, topWall)
	}
	if lines[len(lines)-1] != bottomWall {
		return Board{}, fmt.Errorf("%w: line %d must be %q", ErrMalformedDiagram, len(lines), bottomWall)
	}

	hall, err := parseHallway(lines[1])
	if err != nil {
		return Board{}, fmt.Errorf("line 2: %w", err)
	}

	roomLines := lines[2 : len(lines)-1]
	rows := make([][RoomCount]Kind, 0, len(roomLines))
	for i, line := range roomLines {
		template := deeperRoomRow
		if i == 0 {
			template = firstRoomRow
		}
		row, err := parseRoomRow(line, template)
		if err != nil {
			return Board{}, fmt.Errorf("line %d: %w", i+3, err)
		}
		rows = append(rows, row)
	}

	return New(hall, rows)
}

// ParseString parses a diagram held in a string. See Parse.
func ParseString(s string) (Board, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is like ParseString but panics on error. Intended for fixtures.
func MustParse(s string) Board {
	b, err := ParseString(s)
	if err != nil {
		panic(err)
	}

	return b
}

func parseHallway(line string) ([HallwaySize]Kind, error) {
	var hall [HallwaySize]Kind
	if len(line) != hallwayWidth+2 || line[0] != '#' || line[len(line)-1] != '#' {
		return hall, fmt.Errorf("%w: hallway must be %d cells between walls", ErrMalformedDiagram, hallwayWidth)
	}
	cells := line[1 : len(line)-1]

	for room := 0; room < RoomCount; room++ {
		x := openingAxis(room)
		k, err := ParseKind(cells[x])
		if err != nil {
			return hall, fmt.Errorf("column %d: %w", x+2, err)
		}
		if k != Empty {
			return hall, fmt.Errorf("%w: %s in front of room %s", ErrBlockedOpening, k, KindOf(room))
		}
	}
	for pos, x := range hallwayAxis {
		k, err := ParseKind(cells[x])
		if err != nil {
			return hall, fmt.Errorf("column %d: %w", x+2, err)
		}
		hall[pos] = k
	}

	return hall, nil
}

// parseRoomRow reads the four cells of a room row that must match template
// everywhere except at roomColumns.
func parseRoomRow(line, template string) ([RoomCount]Kind, error) {
	var row [RoomCount]Kind
	if len(line) != len(template) {
		return row, fmt.Errorf("%w: room row must be %d columns, got %d", ErrMalformedDiagram, len(template), len(line))
	}
	for i, x := range roomColumns {
		if line[x] == ' ' {
			return row, fmt.Errorf("%w: blank room cell at column %d", ErrMalformedDiagram, x+1)
		}
		k, err := ParseKind(line[x])
		if err != nil {
			return row, fmt.Errorf("column %d: %w", x+1, err)
		}
		row[i] = k
	}
	for x := 0; x < len(line); x++ {
		if template[x] != '.' && line[x] != template[x] {
			return row, fmt.Errorf("%w: want %q at column %d, got %q", ErrMalformedDiagram, template[x], x+1, line[x])
		}
	}

	return row, nil
}
