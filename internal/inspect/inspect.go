// Package inspect summarizes a script and the rate signal derived from it.
package inspect

import (
	"math"
	"strconv"

	"github.com/funscript-tools/fsdiff/internal/funscript"
	"github.com/funscript-tools/fsdiff/internal/signal"
	"github.com/funscript-tools/fsdiff/pkg/output"
)

// Summary describes a script.
type Summary struct {
	Title              string      `json:"title,omitempty" yaml:"title,omitempty"`
	Actions            int         `json:"actions" yaml:"actions"`
	TypedActions       int         `json:"typed_actions" yaml:"typed_actions"`
	DistinctTimestamps int         `json:"distinct_timestamps" yaml:"distinct_timestamps"`
	FirstAt            int64       `json:"first_at" yaml:"first_at"`
	LastAt             int64       `json:"last_at" yaml:"last_at"`
	SpanMS             int64       `json:"span_ms" yaml:"span_ms"`
	MinPos             float64     `json:"min_pos" yaml:"min_pos"`
	MaxPos             float64     `json:"max_pos" yaml:"max_pos"`
	Signal             SignalStats `json:"signal" yaml:"signal"`
}

// SignalStats describes the derived signal. Min, Max and Mean cover finite
// values only; NaN and infinite points are counted in NonFinite.
type SignalStats struct {
	Points    int     `json:"points" yaml:"points"`
	NonFinite int     `json:"non_finite" yaml:"non_finite"`
	Min       float64 `json:"min" yaml:"min"`
	Max       float64 `json:"max" yaml:"max"`
	Mean      float64 `json:"mean" yaml:"mean"`
}

// Summarize computes the summary of s.
func Summarize(s *funscript.Script) (*Summary, error) {
	sig, err := signal.Extract(s.Actions)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		Actions: len(s.Actions),
		FirstAt: s.Actions[0].At,
		LastAt:  s.Actions[len(s.Actions)-1].At,
		MinPos:  math.Inf(1),
		MaxPos:  math.Inf(-1),
	}
	if s.Metadata != nil && s.Metadata.Title != nil {
		sum.Title = *s.Metadata.Title
	}
	sum.SpanMS = sum.LastAt - sum.FirstAt

	seen := make(map[int64]struct{}, len(s.Actions))
	for _, a := range s.Actions {
		seen[a.At] = struct{}{}
		if a.Type != nil {
			sum.TypedActions++
		}
		if finite(a.Pos) {
			sum.MinPos = math.Min(sum.MinPos, a.Pos)
			sum.MaxPos = math.Max(sum.MaxPos, a.Pos)
		}
	}
	sum.DistinctTimestamps = len(seen)
	if math.IsInf(sum.MinPos, 1) {
		sum.MinPos, sum.MaxPos = 0, 0
	}

	sum.Signal = signalStats(sig)
	return sum, nil
}

func signalStats(s *signal.Signal) SignalStats {
	stats := SignalStats{Points: s.Len()}

	var (
		total float64
		n     int
	)
	s.Ascend(func(e signal.Entry) bool {
		if !finite(e.Value) {
			stats.NonFinite++
			return true
		}
		if n == 0 || e.Value < stats.Min {
			stats.Min = e.Value
		}
		if n == 0 || e.Value > stats.Max {
			stats.Max = e.Value
		}
		total += e.Value
		n++
		return true
	})
	if n > 0 {
		stats.Mean = total / float64(n)
	}
	return stats
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Table lays the summary out for terminal output.
func (s *Summary) Table() *output.Table {
	t := output.NewTable([]string{"METRIC", "VALUE"})
	if s.Title != "" {
		t.AddRow([]string{"title", s.Title})
	}
	t.AddRow([]string{"actions", strconv.Itoa(s.Actions)})
	t.AddRow([]string{"typed actions", strconv.Itoa(s.TypedActions)})
	t.AddRow([]string{"distinct timestamps", strconv.Itoa(s.DistinctTimestamps)})
	t.AddRow([]string{"first at", strconv.FormatInt(s.FirstAt, 10)})
	t.AddRow([]string{"last at", strconv.FormatInt(s.LastAt, 10)})
	t.AddRow([]string{"span (ms)", strconv.FormatInt(s.SpanMS, 10)})
	t.AddRow([]string{"position range", formatFloat(s.MinPos) + " - " + formatFloat(s.MaxPos)})
	t.AddRow([]string{"signal points", strconv.Itoa(s.Signal.Points)})
	t.AddRow([]string{"signal non-finite", strconv.Itoa(s.Signal.NonFinite)})
	t.AddRow([]string{"signal range", formatFloat(s.Signal.Min) + " - " + formatFloat(s.Signal.Max)})
	t.AddRow([]string{"signal mean", formatFloat(s.Signal.Mean)})
	return t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
