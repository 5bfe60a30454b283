package burrow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/burrow"
)

func TestNew_Validation(t *testing.T) {
	var hall [burrow.HallwaySize]burrow.Kind
	sorted := [burrow.RoomCount]burrow.Kind{burrow.Amber, burrow.Bronze, burrow.Copper, burrow.Desert}

	b, err := burrow.New(hall, [][burrow.RoomCount]burrow.Kind{sorted, sorted})
	require.NoError(t, err)
	assert.Equal(t, burrow.Goal(burrow.BaseDepth), b)

	_, err = burrow.New(hall, [][burrow.RoomCount]burrow.Kind{sorted, sorted, sorted})
	assert.ErrorIs(t, err, burrow.ErrBadDepth)

	_, err = burrow.New(hall, [][burrow.RoomCount]burrow.Kind{sorted, {burrow.Amber, burrow.Amber, burrow.Copper, burrow.Desert}})
	assert.ErrorIs(t, err, burrow.ErrUnitCount)

	// Amber at the top of room A with nothing under it
	floating := hall
	floating[0] = burrow.Amber
	_, err = burrow.New(floating, [][burrow.RoomCount]burrow.Kind{sorted, {burrow.Empty, burrow.Bronze, burrow.Copper, burrow.Desert}})
	assert.ErrorIs(t, err, burrow.ErrMalformedDiagram)

	hall[0] = burrow.Kind(9)
	_, err = burrow.New(hall, [][burrow.RoomCount]burrow.Kind{sorted, sorted})
	assert.ErrorIs(t, err, burrow.ErrUnknownCell)
}

func TestBoard_ZeroValueInvalid(t *testing.T) {
	var b burrow.Board
	assert.ErrorIs(t, b.Validate(), burrow.ErrBadDepth)
}

func TestGoal(t *testing.T) {
	for _, depth := range []int{burrow.BaseDepth, burrow.ExtendedDepth} {
		g := burrow.Goal(depth)
		require.NoError(t, g.Validate())
		assert.True(t, g.Sorted())
		assert.Equal(t, depth, g.Depth())
	}
	assert.Panics(t, func() { burrow.Goal(3) })
}

func TestBoard_Sorted(t *testing.T) {
	assert.False(t, burrow.MustParse(example).Sorted())
	assert.False(t, burrow.MustParse(oneToSettle).Sorted(), "an empty row is not sorted")

	b := burrow.MustParse(oneToSettle)
	next, err := b.Apply(burrow.Move{From: burrow.HallwayAt(0), To: burrow.RoomAt(0, 0), Kind: burrow.Amber})
	require.NoError(t, err)
	assert.True(t, next.Sorted())
}

func TestBoard_Key(t *testing.T) {
	b := burrow.MustParse(example)
	assert.Equal(t, "2|.......|BA|CD|BC|DA", b.Key().String())
	assert.Equal(t, b.Key(), burrow.MustParse(example).Key())

	d := burrow.MustParse(deadlock)
	assert.Equal(t, "2|..DA...|.A|BB|CC|.D", d.Key().String())
	assert.NotEqual(t, b.Key(), d.Key())

	ext, err := burrow.Extend(b)
	require.NoError(t, err)
	assert.Equal(t, "4|.......|BDDA|CCBD|BBAC|DACA", ext.Key().String())
}

func TestBoard_KeyDistinguishesSingleCell(t *testing.T) {
	b := burrow.MustParse(example)
	seen := map[burrow.Key]burrow.Board{b.Key(): b}
	for _, m := range b.Moves(burrow.DefaultPolicy()) {
		next := b.Next(m)
		_, dup := seen[next.Key()]
		assert.False(t, dup, "key collision after %s", m)
		seen[next.Key()] = next
	}
	assert.Len(t, seen, 1+4*burrow.HallwaySize)
}

func TestBoard_ImmutableTransitions(t *testing.T) {
	b := burrow.MustParse(example)
	before := b.Key()
	m := burrow.Move{From: burrow.RoomAt(0, 0), To: burrow.HallwayAt(0), Kind: burrow.Bronze}

	next, err := b.Apply(m)
	require.NoError(t, err)
	assert.Equal(t, before, b.Key(), "Apply must not modify the receiver")
	assert.Equal(t, burrow.Bronze, next.Hallway(0))
	assert.Equal(t, burrow.Empty, next.Room(0, 0))
	assert.Equal(t, burrow.Bronze, b.Room(0, 0))

	_ = b.Next(m)
	assert.Equal(t, before, b.Key(), "Next must not modify the receiver")
}

func TestExtendFold(t *testing.T) {
	b := burrow.MustParse(example)
	ext, err := burrow.Extend(b)
	require.NoError(t, err)
	require.NoError(t, ext.Validate())
	assert.Equal(t, burrow.MustParse(exampleExtended), ext)

	_, err = burrow.Extend(ext)
	assert.ErrorIs(t, err, burrow.ErrAlreadyExtended)

	folded, err := burrow.Fold(ext)
	require.NoError(t, err)
	assert.Equal(t, b, folded)

	_, err = burrow.Fold(b)
	assert.ErrorIs(t, err, burrow.ErrNotExtended)

	_, err = burrow.Fold(burrow.Goal(burrow.ExtendedDepth))
	assert.ErrorIs(t, err, burrow.ErrNotExtended)
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "h3", burrow.HallwayAt(3).String())
	assert.Equal(t, "C1", burrow.RoomAt(2, 1).String())
	assert.True(t, burrow.HallwayAt(0).InHallway())
	assert.False(t, burrow.RoomAt(0, 0).InHallway())
}
