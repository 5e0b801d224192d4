package automaton

import (
	"fmt"
	"math"
	"slices"
)

// ConversionReport carries the derived efficiency metrics of a subset
// construction: the input and output state counts and the theoretical
// 2^n worst-case bound on the output.
type ConversionReport struct {
	NFAStates  int     `json:"nfa_states"`
	DFAStates  int     `json:"dfa_states"`
	UpperBound float64 `json:"upper_bound"`
}

// ToDFA converts a nondeterministic automaton into an equivalent
// deterministic one via subset construction. See Determinize for the
// report-carrying variant.
func ToDFA(nfa *Automaton) *Automaton {
	dfa, _ := Determinize(nfa)
	return dfa
}

// Determinize runs the worklist subset construction. Each reachable set
// of input states becomes one output state; labels Q0, Q1, ... are
// assigned in strict discovery order with Q0 always the start-derived
// set, so the output naming is reproducible for a given input. A symbol
// with no target from a set emits no transition, so the output may be a
// partial DFA; completion is not performed here. An output state is
// final iff its underlying state set intersects the input's final
// states.
//
// Calling this on an already-deterministic automaton is well-defined and
// acts as a relabeling; callers normally check Classify first.
func Determinize(nfa *Automaton) (*Automaton, ConversionReport) {
	ix := newIndex(nfa)
	finals := ix.finals(nfa)

	initial := newStateSet(ix.size())
	if start, ok := ix.of(nfa.Start); ok {
		initial.add(start)
	}

	dfa := &Automaton{
		Alphabet: slices.Clone(nfa.Alphabet),
		Start:    "Q0",
	}

	labels := make(map[string]string)
	workList := []*frozenStateSet{initial.freeze()}
	labels[workList[0].key] = "Q0"

	register := func(set *frozenStateSet, label string) {
		dfa.States = append(dfa.States, label)
		members := newStateSet(ix.size())
		for _, s := range set.array() {
			members.add(s)
		}
		if members.intersects(finals) {
			dfa.Final = append(dfa.Final, label)
		}
	}
	register(workList[0], "Q0")

	for len(workList) > 0 {
		set := workList[0]
		workList = workList[1:]
		label := labels[set.key]

		for _, symbol := range nfa.Alphabet {
			targets := newStateSet(ix.size())
			for _, s := range set.array() {
				for _, to := range nfa.Targets(ix.name(s), symbol) {
					if dest, ok := ix.of(to); ok {
						targets.add(dest)
					}
				}
			}
			if targets.empty() {
				continue
			}

			frozen := targets.freeze()
			dest, ok := labels[frozen.key]
			if !ok {
				dest = fmt.Sprintf("Q%d", len(labels))
				labels[frozen.key] = dest
				register(frozen, dest)
				workList = append(workList, frozen)
			}
			dfa.Transitions = append(dfa.Transitions, Transition{
				From:   label,
				Symbol: symbol,
				To:     dest,
			})
		}
	}

	report := ConversionReport{
		NFAStates:  len(nfa.States),
		DFAStates:  len(dfa.States),
		UpperBound: math.Pow(2, float64(len(nfa.States))),
	}
	return dfa, report
}
