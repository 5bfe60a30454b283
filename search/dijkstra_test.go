package search_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/search"
)

// naive generates every physically legal move, cycles included.
var naive = burrow.Policy{SettleFirst: false, KeepFinished: false}

func TestDijkstra_InvalidBoard(t *testing.T) {
	_, err := search.Dijkstra(burrow.Board{})
	assert.ErrorIs(t, err, search.ErrInvalidBoard)
}

func TestDijkstra_Sorted(t *testing.T) {
	res, err := search.Dijkstra(burrow.Goal(burrow.ExtendedDepth), search.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Cost)
	assert.Empty(t, res.Path)
}

func TestDijkstra_Example(t *testing.T) {
	res, err := search.Dijkstra(example)
	require.NoError(t, err)
	assert.Equal(t, int64(exampleCost), res.Cost)
	assert.Zero(t, res.CacheHits)
}

func TestDijkstra_AgreesWithSolve(t *testing.T) {
	for _, b := range []burrow.Board{oneToSettle, swapAD, example} {
		want, err := search.MinCost(b)
		require.NoError(t, err)
		res, err := search.Dijkstra(b)
		require.NoError(t, err)
		assert.Equal(t, want, res.Cost)
	}
}

func TestDijkstra_NaivePolicy(t *testing.T) {
	// Without any pruning the move graph is cyclic; Dijkstra must still agree.
	res, err := search.Dijkstra(swapAD, search.WithPolicy(naive))
	require.NoError(t, err)
	assert.Equal(t, int64(swapADCost), res.Cost)
}

func TestDijkstra_PruningIsSound(t *testing.T) {
	if testing.Short() {
		t.Skip("explores the unpruned move graph")
	}
	for _, p := range []burrow.Policy{
		{SettleFirst: true, KeepFinished: false},
		naive,
	} {
		res, err := search.Dijkstra(example, search.WithPolicy(p))
		require.NoError(t, err)
		assert.Equal(t, int64(exampleCost), res.Cost, "policy %+v", p)
	}
}

func TestDijkstra_Path(t *testing.T) {
	for _, b := range []burrow.Board{example, swapAD} {
		res, err := search.Dijkstra(b, search.WithReturnPath())
		require.NoError(t, err)

		final, cost, err := search.Replay(b, res.Path)
		require.NoError(t, err)
		assert.True(t, final.Sorted())
		assert.Equal(t, res.Cost, cost)
	}
}

func TestDijkstra_MaxCost(t *testing.T) {
	res, err := search.Dijkstra(swapAD, search.WithMaxCost(swapADCost))
	require.NoError(t, err)
	assert.Equal(t, int64(swapADCost), res.Cost)

	_, err = search.Dijkstra(swapAD, search.WithMaxCost(swapADCost-1))
	assert.ErrorIs(t, err, search.ErrSearchExhausted)
}

func TestDijkstra_MaxCostPanics(t *testing.T) {
	assert.PanicsWithValue(t, search.ErrBadMaxCost.Error(), func() {
		_, _ = search.Dijkstra(example, search.WithMaxCost(-1))
	})
}

func TestDijkstra_DeadEnds(t *testing.T) {
	res, err := search.Dijkstra(deadlock)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrSearchExhausted)

	_, err = search.Dijkstra(deadlock, search.WithStrictDeadEnds())
	assert.ErrorIs(t, err, search.ErrDeadEnd)
}

func TestDijkstra_LogsDeadEnds(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := search.Dijkstra(deadlock, search.WithLogger(logger))
	require.ErrorIs(t, err, search.ErrSearchExhausted)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "dead end", entries[1].Message)
	assert.Equal(t, logrus.DebugLevel, entries[1].Level)
	assert.Equal(t, deadlock.Key().String(), entries[1].Data["board"])
	assert.Equal(t, logrus.WarnLevel, entries[2].Level)
}

func TestDijkstra_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.Dijkstra(example, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
