// Package generator produces synthetic funscripts for fixtures and demos.
package generator

import (
	"errors"
	"math"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/funscript-tools/fsdiff/internal/funscript"
)

var (
	actionTypes = []string{"stroke", "hold", "vibrate"}
	licenses    = []string{"CC-BY-4.0", "CC-BY-NC-4.0", "CC0-1.0", "All rights reserved"}
)

// Options controls script generation.
type Options struct {
	// Count is the number of actions to emit.
	Count int
	// Interval is the mean spacing between actions in milliseconds.
	Interval int64
	// Jitter is the fraction of Interval each timestamp may deviate by.
	Jitter float64
	// Typed attaches a type tag to every action.
	Typed bool
	// Seed makes the output reproducible. Zero picks a random seed.
	Seed int64
}

// DefaultOptions returns the settings used by the generate command.
func DefaultOptions() Options {
	return Options{
		Count:    200,
		Interval: 250,
		Jitter:   0.4,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.Count < 1 {
		return errors.New("count must be at least 1")
	}
	if o.Interval < 1 {
		return errors.New("interval must be at least 1ms")
	}
	if o.Jitter < 0 || o.Jitter >= 1 {
		return errors.New("jitter must be in [0, 1)")
	}
	return nil
}

// Generate builds a script of alternating strokes. Timestamps strictly
// increase; positions alternate between the low and high thirds of 0-100.
func Generate(opts Options) (*funscript.Script, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	faker := gofakeit.New(opts.Seed)

	actions := make([]funscript.Action, 0, opts.Count)
	prevAt := int64(-1)
	for i := 0; i < opts.Count; i++ {
		base := float64(int64(i) * opts.Interval)
		jitterRange := float64(opts.Interval) * opts.Jitter
		at := int64(math.Round(base + faker.Float64Range(-jitterRange, jitterRange)))
		if at <= prevAt {
			at = prevAt + 1
		}
		if at < 0 {
			at = 0
		}
		prevAt = at

		var pos float64
		if i%2 == 0 {
			pos = math.Round(faker.Float64Range(0, 30))
		} else {
			pos = math.Round(faker.Float64Range(70, 100))
		}

		a := funscript.Action{At: at, Pos: pos}
		if opts.Typed {
			a.Type = funscript.StringPtr(faker.RandomString(actionTypes))
		}
		actions = append(actions, a)
	}

	duration := float64(prevAt) / 1000
	return &funscript.Script{
		Actions: actions,
		Metadata: &funscript.Metadata{
			Duration:   &duration,
			Creator:    funscript.StringPtr(faker.Username()),
			Title:      funscript.StringPtr(faker.Sentence(3)),
			License:    funscript.StringPtr(faker.RandomString(licenses)),
			Performers: []string{faker.Name()},
			Tags:       []string{faker.Word(), faker.Word()},
			ScriptURL:  funscript.StringPtr(faker.URL()),
			VideoURL:   funscript.StringPtr(faker.URL()),
		},
		Range:   funscript.Float64Ptr(100),
		Version: funscript.StringPtr("1.0"),
	}, nil
}
