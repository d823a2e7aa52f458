// Package signal holds the derived rate signal a script is reshaped through:
// an ordered timestamp to value mapping, the extractor that builds it from raw
// actions and the materializer that turns it back into actions.
package signal

import "github.com/google/btree"

const treeDegree = 32

// Entry is one point of the signal.
type Entry struct {
	At    int64
	Value float64
	Type  *string
}

// Signal is an ordered mapping from timestamp to Entry. Keys are unique and
// iterate in ascending order; setting an existing key replaces its entry.
type Signal struct {
	tree *btree.BTreeG[*Entry]
}

func lessAt(a, b *Entry) bool {
	return a.At < b.At
}

// New returns an empty signal.
func New() *Signal {
	return &Signal{tree: btree.NewG(treeDegree, lessAt)}
}

// Set inserts or replaces the entry stored at at.
func (s *Signal) Set(at int64, value float64, typ *string) {
	s.tree.ReplaceOrInsert(&Entry{At: at, Value: value, Type: typ})
}

// Get returns a copy of the entry stored at at.
func (s *Signal) Get(at int64) (Entry, bool) {
	e, ok := s.tree.Get(&Entry{At: at})
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Len returns the number of entries.
func (s *Signal) Len() int {
	return s.tree.Len()
}

// Ascend calls fn for every entry in ascending timestamp order until fn
// returns false.
func (s *Signal) Ascend(fn func(Entry) bool) {
	s.tree.Ascend(func(e *Entry) bool {
		return fn(*e)
	})
}

// Entries returns a snapshot of all entries in ascending order.
func (s *Signal) Entries() []Entry {
	out := make([]Entry, 0, s.tree.Len())
	s.Ascend(func(e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Values returns the entry values in ascending timestamp order.
func (s *Signal) Values() []float64 {
	out := make([]float64, 0, s.tree.Len())
	s.Ascend(func(e Entry) bool {
		out = append(out, e.Value)
		return true
	})
	return out
}

// Map rewrites every value in place, in ascending order. Keys and type tags
// are untouched.
func (s *Signal) Map(fn func(float64) float64) {
	s.tree.Ascend(func(e *Entry) bool {
		e.Value = fn(e.Value)
		return true
	})
}

// Retain visits entries in ascending order and removes those for which keep
// returns false. keep sees every entry exactly once.
func (s *Signal) Retain(keep func(Entry) bool) {
	var drop []*Entry
	s.tree.Ascend(func(e *Entry) bool {
		if !keep(*e) {
			drop = append(drop, e)
		}
		return true
	})
	for _, e := range drop {
		s.tree.Delete(e)
	}
}

// Max reduces the values to their maximum. The running candidate is replaced
// by the next value unless it compares strictly greater, so a NaN never stops
// the reduction and the last of several incomparable values wins. An empty
// signal reduces to 0.
func (s *Signal) Max() float64 {
	var (
		best  float64
		found bool
	)
	s.Ascend(func(e Entry) bool {
		if !found || !(best > e.Value) {
			best = e.Value
			found = true
		}
		return true
	})
	return best
}
