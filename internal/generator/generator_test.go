package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funscript-tools/fsdiff/internal/signal"
)

func TestGenerate(t *testing.T) {
	opts := DefaultOptions()
	opts.Count = 50
	opts.Seed = 42

	s, err := Generate(opts)
	require.NoError(t, err)
	require.Len(t, s.Actions, 50)

	for i, a := range s.Actions {
		assert.GreaterOrEqual(t, a.Pos, 0.0)
		assert.LessOrEqual(t, a.Pos, 100.0)
		assert.Nil(t, a.Type)
		if i > 0 {
			assert.Greater(t, a.At, s.Actions[i-1].At, "timestamps must strictly increase")
		}
		if i%2 == 0 {
			assert.LessOrEqual(t, a.Pos, 30.0)
		} else {
			assert.GreaterOrEqual(t, a.Pos, 70.0)
		}
	}

	require.NotNil(t, s.Metadata)
	assert.NotEmpty(t, *s.Metadata.Creator)
	assert.NotEmpty(t, *s.Metadata.Title)
	assert.Len(t, s.Metadata.Tags, 2)
	assert.InDelta(t, float64(s.Actions[49].At)/1000, *s.Metadata.Duration, 1e-9)
	assert.Equal(t, "1.0", *s.Version)

	sig, err := signal.Extract(s.Actions)
	require.NoError(t, err)
	assert.Equal(t, len(s.Actions)-1, sig.Len())
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7
	opts.Typed = true

	a, err := Generate(opts)
	require.NoError(t, err)
	b, err := Generate(opts)
	require.NoError(t, err)

	assert.Equal(t, a.Actions, b.Actions)
	assert.Equal(t, *a.Metadata.Creator, *b.Metadata.Creator)
	for _, act := range a.Actions {
		require.NotNil(t, act.Type)
		assert.Contains(t, actionTypes, *act.Type)
	}
}

func TestGenerate_NoJitter(t *testing.T) {
	s, err := Generate(Options{Count: 4, Interval: 100, Seed: 1})
	require.NoError(t, err)

	var ats []int64
	for _, a := range s.Actions {
		ats = append(ats, a.At)
	}
	assert.Equal(t, []int64{0, 100, 200, 300}, ats)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{name: "valid", opts: DefaultOptions()},
		{name: "zero count", opts: Options{Count: 0, Interval: 10}, wantErr: "count"},
		{name: "zero interval", opts: Options{Count: 1, Interval: 0}, wantErr: "interval"},
		{name: "jitter too large", opts: Options{Count: 1, Interval: 10, Jitter: 1}, wantErr: "jitter"},
		{name: "negative jitter", opts: Options{Count: 1, Interval: 10, Jitter: -0.1}, wantErr: "jitter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
