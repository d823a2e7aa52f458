package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialize(t *testing.T) {
	s := New()
	s.Set(300, 2.5, nil)
	s.Set(100, 0.49, strPtr("low"))
	s.Set(200, -2.5, nil)
	s.Set(400, 99.5, nil)

	actions := Materialize(s)

	require.Len(t, actions, 4)
	assert.Equal(t, int64(100), actions[0].At)
	assert.Equal(t, 0.0, actions[0].Pos)
	assert.Equal(t, "low", *actions[0].Type)
	assert.Equal(t, -3.0, actions[1].Pos, "halves round away from zero")
	assert.Equal(t, 3.0, actions[2].Pos)
	assert.Equal(t, 100.0, actions[3].Pos)

	assert.Equal(t, 0, s.Len(), "materializing drains the signal")
}

func TestMaterialize_NonFinite(t *testing.T) {
	s := New()
	s.Set(0, math.NaN(), nil)
	s.Set(1, math.Inf(1), nil)

	actions := Materialize(s)

	require.Len(t, actions, 2)
	assert.True(t, math.IsNaN(actions[0].Pos))
	assert.True(t, math.IsInf(actions[1].Pos, 1))
}

func TestMaterialize_Empty(t *testing.T) {
	actions := Materialize(New())
	assert.NotNil(t, actions)
	assert.Empty(t, actions)
}
