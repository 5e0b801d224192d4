// Package automaton implements a finite-automaton computation engine:
// parsing a textual automaton description, structural validation,
// DFA/NFA classification, string simulation, subset construction and
// DFA minimization. All operations are pure functions over immutable
// Automaton values; the package owns no I/O.
package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon is the reserved symbol for epsilon transitions. It is an
// ordinary transition label in the data model; detecting it is a
// reporting concern of the classifier.
const Epsilon = "ε"

// Transition is a single labeled edge between two states.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

// Automaton represents a finite automaton over string state identifiers
// and string input symbols. States and Alphabet preserve insertion order;
// that order drives deterministic iteration and output labeling, never
// language semantics. DFA and NFA are a classification of an Automaton
// value, not distinct types.
//
// An Automaton is immutable by convention: every transformation in this
// package allocates and returns a new value.
type Automaton struct {
	States      []string     `json:"states" yaml:"states"`
	Alphabet    []string     `json:"alphabet" yaml:"alphabet"`
	Transitions []Transition `json:"transitions" yaml:"transitions"`
	Start       string       `json:"start" yaml:"start"`
	Final       []string     `json:"final" yaml:"final"`
}

// HasState reports whether id is a member of States.
func (a *Automaton) HasState(id string) bool {
	return slices.Contains(a.States, id)
}

// HasSymbol reports whether symbol is a member of Alphabet.
func (a *Automaton) HasSymbol(symbol string) bool {
	return slices.Contains(a.Alphabet, symbol)
}

// IsFinal reports whether id is an accept state.
func (a *Automaton) IsFinal(id string) bool {
	return slices.Contains(a.Final, id)
}

// Targets returns every destination reachable from the given state on the
// given symbol, in transition order. Duplicate edges yield duplicate
// entries; callers that need set semantics deduplicate themselves.
func (a *Automaton) Targets(from, symbol string) []string {
	var targets []string
	for _, t := range a.Transitions {
		if t.From == from && t.Symbol == symbol {
			targets = append(targets, t.To)
		}
	}
	return targets
}

// Clone returns a deep copy.
func (a *Automaton) Clone() *Automaton {
	return &Automaton{
		States:      slices.Clone(a.States),
		Alphabet:    slices.Clone(a.Alphabet),
		Transitions: slices.Clone(a.Transitions),
		Start:       a.Start,
		Final:       slices.Clone(a.Final),
	}
}

// index maps state identifiers to dense positions so bitset machinery can
// operate over state sets. The position of a state is its position in
// States; states referenced by transitions but absent from States are not
// indexed (the validator reports those).
type index struct {
	states []string
	pos    map[string]int
}

func newIndex(a *Automaton) *index {
	ix := &index{
		states: a.States,
		pos:    make(map[string]int, len(a.States)),
	}
	for i, s := range a.States {
		ix.pos[s] = i
	}
	return ix
}

func (ix *index) of(id string) (int, bool) {
	i, ok := ix.pos[id]
	return i, ok
}

func (ix *index) name(i int) string {
	return ix.states[i]
}

func (ix *index) size() int {
	return len(ix.states)
}

// names expands a bitset over this index back to state identifiers, in
// States order.
func (ix *index) names(set *bitset.BitSet) []string {
	out := make([]string, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, ix.states[i])
	}
	return out
}

// finals returns the accept states as a bitset over this index.
func (ix *index) finals(a *Automaton) *bitset.BitSet {
	set := bitset.New(uint(ix.size()))
	for _, f := range a.Final {
		if i, ok := ix.of(f); ok {
			set.Set(uint(i))
		}
	}
	return set
}
