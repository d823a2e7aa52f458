package signal

import (
	"math"

	"github.com/funscript-tools/fsdiff/internal/funscript"
)

// Materialize converts the signal into an action list in ascending timestamp
// order, rounding values half away from zero. The signal is drained and must
// not be used afterwards.
func Materialize(s *Signal) []funscript.Action {
	out := make([]funscript.Action, 0, s.Len())
	s.Ascend(func(e Entry) bool {
		out = append(out, funscript.Action{
			At:   e.At,
			Pos:  math.Round(e.Value),
			Type: e.Type,
		})
		return true
	})
	s.tree.Clear(false)
	return out
}
