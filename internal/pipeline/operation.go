// Package pipeline implements the operation chain applied to a rate signal:
// the individual reshaping operations, the token grammar that selects them and
// the runner that applies them in order.
package pipeline

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/funscript-tools/fsdiff/internal/logging"
	"github.com/funscript-tools/fsdiff/internal/signal"
)

// Operation names as they appear in the token grammar.
const (
	OpNormalize   = "normalize"
	OpScaleLinear = "scale-linear"
	OpScaleSqrt   = "scale-sqrt"
	OpShorten     = "shorten"
)

// Operation reshapes a signal in place. Operations only look at the signal
// they are given; the logger is an observability side channel.
type Operation interface {
	Name() string
	Apply(s *signal.Signal, log *slog.Logger)
	fmt.Stringer
}

// Normalize rescales values so that the current maximum maps to Max. A zero
// maximum leaves the signal untouched.
type Normalize struct {
	Min float64
	Max float64
}

// NewNormalize returns the 0-100 normalization used by the token grammar.
func NewNormalize() Normalize {
	return Normalize{Min: 0, Max: 100}
}

func (n Normalize) Name() string { return OpNormalize }

func (n Normalize) String() string { return OpNormalize }

func (n Normalize) Apply(s *signal.Signal, log *slog.Logger) {
	peak := s.Max()
	log.Info("normalizing", append(logging.Range(n.Min, n.Max), logging.Max(peak))...)
	if peak == 0 {
		return
	}
	s.Map(func(v float64) float64 {
		return (n.Max*v)/peak + n.Min
	})
}

// ScaleLinear multiplies every value by Scale.
type ScaleLinear struct {
	Scale float64
}

func (o ScaleLinear) Name() string { return OpScaleLinear }

func (o ScaleLinear) String() string { return fmt.Sprintf("%s %g", OpScaleLinear, o.Scale) }

func (o ScaleLinear) Apply(s *signal.Signal, log *slog.Logger) {
	log.Info("scaling linearly", logging.Scale(o.Scale))
	s.Map(func(v float64) float64 {
		return v * o.Scale
	})
}

// ScaleSqrt replaces every value with its square root. Negative values become
// NaN.
type ScaleSqrt struct{}

func (ScaleSqrt) Name() string { return OpScaleSqrt }

func (ScaleSqrt) String() string { return OpScaleSqrt }

func (ScaleSqrt) Apply(s *signal.Signal, log *slog.Logger) {
	log.Info("scaling with square root")
	s.Map(math.Sqrt)
}

// Shorten drops entries that differ from the previously visited value by
// less than Diff. The reference moves to every visited value, kept or not,
// and starts at 0.
type Shorten struct {
	Diff float64
}

func (o Shorten) Name() string { return OpShorten }

func (o Shorten) String() string { return fmt.Sprintf("%s %g", OpShorten, o.Diff) }

func (o Shorten) Apply(s *signal.Signal, log *slog.Logger) {
	before := s.Len()
	log.Info("shortening", logging.SizeBefore(before), logging.Diff(o.Diff))

	ref := 0.0
	s.Retain(func(e signal.Entry) bool {
		keep := math.Abs(ref-e.Value) >= o.Diff
		ref = e.Value
		return keep
	})

	log.Info("shortened", logging.SizeBefore(before), logging.SizeAfter(s.Len()))
}
