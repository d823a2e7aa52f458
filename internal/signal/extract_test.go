package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funscript-tools/fsdiff/internal/funscript"
)

func TestExtract_Empty(t *testing.T) {
	s, err := Extract(nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, funscript.ErrNoActions)
}

func TestExtract_SingleAction(t *testing.T) {
	s, err := Extract([]funscript.Action{{At: 40, Pos: 80}})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestExtract_PrecedenceIsPreserved(t *testing.T) {
	actions := []funscript.Action{
		{At: 0, Pos: 0},
		{At: 100, Pos: 50},
		{At: 200, Pos: 0, Type: strPtr("down")},
	}

	s, err := Extract(actions)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	first, ok := s.Get(0)
	require.True(t, ok)
	assert.Equal(t, 50.0, first.Value)
	assert.Nil(t, first.Type)

	second, ok := s.Get(100)
	require.True(t, ok)
	// |0 - 50/100|
	assert.Equal(t, 0.5, second.Value)
	require.NotNil(t, second.Type)
	assert.Equal(t, "down", *second.Type, "entries carry the later action's tag")
}

func TestExtract_NotAStandardDerivative(t *testing.T) {
	actions := []funscript.Action{
		{At: 0, Pos: 10},
		{At: 10, Pos: 40},
		{At: 20, Pos: 100},
	}

	s, err := Extract(actions)
	require.NoError(t, err)

	e, _ := s.Get(10)
	// 100 - 40/10 = 96; a true derivative would give (100-40)/10 = 6
	assert.Equal(t, 96.0, e.Value)
}

func TestExtract_UniqueAscendingProducesOneLess(t *testing.T) {
	var actions []funscript.Action
	for i := 0; i < 25; i++ {
		actions = append(actions, funscript.Action{At: int64(i * 33), Pos: float64(i % 7 * 10)})
	}

	s, err := Extract(actions)
	require.NoError(t, err)
	require.Equal(t, len(actions)-1, s.Len())

	for i, e := range s.Entries() {
		assert.Equal(t, actions[i].At, e.At)
	}
	_, ok := s.Get(actions[len(actions)-1].At)
	assert.False(t, ok, "the last timestamp never gets an entry")
}

func TestExtract_LeadingDuplicatesAreSkipped(t *testing.T) {
	actions := []funscript.Action{
		{At: 10, Pos: 5},
		{At: 10, Pos: 7},
		{At: 10, Pos: 9},
		{At: 20, Pos: 30},
		{At: 40, Pos: 10},
	}

	s, err := Extract(actions)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	e, ok := s.Get(10)
	require.True(t, ok)
	assert.InDelta(t, 30-9.0/10, e.Value, 1e-12, "differential resumes from the last leading duplicate")

	e, ok = s.Get(20)
	require.True(t, ok)
	assert.InDelta(t, 8.5, e.Value, 1e-12)
}

func TestExtract_SentinelIsNeverEmitted(t *testing.T) {
	s, err := Extract([]funscript.Action{{At: 50, Pos: 20}, {At: 150, Pos: 40}})
	require.NoError(t, err)

	_, ok := s.Get(0)
	assert.False(t, ok)
	e, ok := s.Get(50)
	require.True(t, ok)
	assert.InDelta(t, 39.8, e.Value, 1e-12)
}

func TestExtract_DuplicateTimestampsCollapse(t *testing.T) {
	actions := []funscript.Action{
		{At: 0, Pos: 0},
		{At: 100, Pos: 50},
		{At: 100, Pos: 60},
		{At: 200, Pos: 10},
	}

	s, err := Extract(actions)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	e, _ := s.Get(100)
	assert.InDelta(t, 9.4, e.Value, 1e-12, "the later pair overwrites the infinite entry")
}

func TestExtract_ZeroDeltaPropagates(t *testing.T) {
	actions := []funscript.Action{
		{At: 0, Pos: 5},
		{At: 100, Pos: 0},
		{At: 100, Pos: 0},
	}

	s, err := Extract(actions)
	require.NoError(t, err)

	e, ok := s.Get(100)
	require.True(t, ok)
	assert.True(t, math.IsNaN(e.Value), "0/0 yields NaN")

	actions[2].Pos = 3
	actions[1].Pos = 1
	s, err = Extract(actions)
	require.NoError(t, err)
	e, _ = s.Get(100)
	assert.True(t, math.IsInf(e.Value, 1), "x/0 yields +Inf after abs")
}

func TestExtract_ReturnToFirstTimestampIsSkipped(t *testing.T) {
	actions := []funscript.Action{
		{At: 0, Pos: 0},
		{At: 100, Pos: 50},
		{At: 0, Pos: 20},
		{At: 200, Pos: 10},
	}

	s, err := Extract(actions)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	e, _ := s.Get(0)
	assert.InDelta(t, 9.9, e.Value, 1e-12)
}
