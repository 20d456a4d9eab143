// Package labelset detects repeated axis labels by their pre-encoded JSON form.
package labelset

import (
	"bytes"

	"github.com/arloliu/framejson/internal/hash"
)

// Tracker records label fragments and reports the first repeat.
// Fragments are bucketed by xxHash64; a hash hit is confirmed with a byte
// comparison, so distinct labels sharing a hash are not reported as repeats.
type Tracker struct {
	buckets map[uint64][]int // hash -> positions in fragments
	frags   [][]byte
}

// NewTracker creates a tracker sized for n labels.
func NewTracker(n int) *Tracker {
	return &Tracker{
		buckets: make(map[uint64][]int, n),
		frags:   make([][]byte, 0, n),
	}
}

// Add records a fragment. It returns the position of an earlier identical
// fragment and true when frag was already tracked.
func (t *Tracker) Add(frag []byte) (int, bool) {
	h := hash.Fragment(frag)
	for _, pos := range t.buckets[h] {
		if bytes.Equal(t.frags[pos], frag) {
			return pos, true
		}
	}

	t.buckets[h] = append(t.buckets[h], len(t.frags))
	t.frags = append(t.frags, frag)

	return -1, false
}

// FirstDuplicate scans frags in order and returns the index of the first
// fragment that repeats an earlier one.
func FirstDuplicate(frags [][]byte) (int, bool) {
	t := NewTracker(len(frags))
	for i, f := range frags {
		if _, dup := t.Add(f); dup {
			return i, true
		}
	}

	return -1, false
}
