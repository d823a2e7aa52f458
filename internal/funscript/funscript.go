// Package funscript models the funscript JSON document: the action list and the
// optional metadata envelope that travels with it.
package funscript

import (
	"encoding/json"
	"errors"
	"math"
)

// ErrNoActions is returned when a script has no action points.
var ErrNoActions = errors.New("script has no actions")

// Script is a parsed funscript document.
type Script struct {
	Actions  []Action  `json:"actions"`
	Metadata *Metadata `json:"metadata"`
	Range    *float64  `json:"range"`
	Version  *string   `json:"version"`
}

// Action is a single control point.
type Action struct {
	At   int64
	Pos  float64
	Type *string
}

type actionJSON struct {
	At   int64    `json:"at"`
	Pos  *float64 `json:"pos"`
	Type *string  `json:"type,omitempty"`
}

// MarshalJSON writes non-finite positions as null and omits an absent type.
func (a Action) MarshalJSON() ([]byte, error) {
	w := actionJSON{At: a.At, Type: a.Type}
	if !math.IsNaN(a.Pos) && !math.IsInf(a.Pos, 0) {
		pos := a.Pos
		w.Pos = &pos
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads a null position as NaN.
func (a *Action) UnmarshalJSON(data []byte) error {
	var w actionJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	a.At = w.At
	a.Pos = math.NaN()
	if w.Pos != nil {
		a.Pos = *w.Pos
	}
	a.Type = w.Type
	return nil
}

// Metadata is the optional descriptive envelope of a script. Empty strings in
// the free-text fields are read as absent.
type Metadata struct {
	Duration     *float64 `json:"duration"`
	AverageSpeed *float64 `json:"average_speed"`
	Creator      *string  `json:"creator"`
	Description  *string  `json:"description"`
	License      *string  `json:"license"`
	Notes        *string  `json:"notes"`
	Performers   []string `json:"performers"`
	ScriptURL    *string  `json:"script_url"`
	Tags         []string `json:"tags"`
	Title        *string  `json:"title"`
	Type         *string  `json:"type"`
	VideoURL     *string  `json:"video_url"`
}

// UnmarshalJSON decodes the metadata and drops empty free-text values.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	type plain Metadata
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = Metadata(p)
	for _, s := range []**string{&m.Creator, &m.Description, &m.License, &m.Notes, &m.ScriptURL, &m.Title, &m.VideoURL} {
		if *s != nil && **s == "" {
			*s = nil
		}
	}
	return nil
}

// Validate checks the invariants the transform pipeline relies on.
func (s *Script) Validate() error {
	if len(s.Actions) == 0 {
		return ErrNoActions
	}
	return nil
}

// StringPtr returns a pointer to v. Handy for building type tags and metadata.
func StringPtr(v string) *string {
	return &v
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 {
	return &v
}
