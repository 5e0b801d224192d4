package automaton

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// stateSet is a mutable set of state indices used while stepping the
// subset construction. Freeze produces the canonical worklist key.
type stateSet struct {
	bits *bitset.BitSet
}

func newStateSet(size int) *stateSet {
	return &stateSet{bits: bitset.New(uint(size))}
}

func (s *stateSet) add(state int) {
	s.bits.Set(uint(state))
}

func (s *stateSet) empty() bool {
	return !s.bits.Any()
}

// array returns the member indices in ascending order.
func (s *stateSet) array() []int {
	out := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// intersects reports whether the set shares any member with other.
func (s *stateSet) intersects(other *bitset.BitSet) bool {
	return s.bits.IntersectionCardinality(other) > 0
}

// freeze returns an immutable snapshot of the set together with its
// canonical key. Members are already sorted by construction, so the key
// is stable for any insertion order.
func (s *stateSet) freeze() *frozenStateSet {
	values := s.array()
	return &frozenStateSet{values: values, key: setKey(values)}
}

// frozenStateSet is an immutable state-index set. Two frozen sets with the
// same members always carry the same key, which makes the key usable as a
// map key during subset construction.
type frozenStateSet struct {
	values []int
	key    string
}

func (f *frozenStateSet) array() []int {
	return f.values
}

func setKey(sorted []int) string {
	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
