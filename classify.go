package automaton

import "github.com/bits-and-blooms/bitset"

// Classification says whether an Automaton is deterministic.
type Classification string

const (
	DFA Classification = "DFA"
	NFA Classification = "NFA"
)

// StateSymbol is a (state, symbol) pair of the transition function grid.
type StateSymbol struct {
	State  string `json:"state"`
	Symbol string `json:"symbol"`
}

// Choice is a (state, symbol) pair with more than one target, i.e. a
// nondeterministic branching point.
type Choice struct {
	State   string   `json:"state"`
	Symbol  string   `json:"symbol"`
	Targets []string `json:"targets"`
}

// DeterminismReport explains a classification: every (state, symbol) pair
// with no outgoing transition, every pair with a nondeterministic choice
// together with the full target list, any epsilon transitions, and the
// completeness of the transition grid as a percentage.
type DeterminismReport struct {
	Classification   Classification `json:"classification"`
	Missing          []StateSymbol  `json:"missing"`
	Nondeterministic []Choice       `json:"nondeterministic"`
	Epsilon          []Transition   `json:"epsilon"`
	Completeness     float64        `json:"completeness"`
}

// Classify reports whether the automaton is deterministic: exactly one
// target for every state and every alphabet symbol, and no epsilon
// transitions.
func Classify(a *Automaton) Classification {
	return Report(a).Classification
}

// Report builds the full determinism report for an automaton.
func Report(a *Automaton) DeterminismReport {
	report := DeterminismReport{Classification: DFA}

	targets := make(map[StateSymbol][]string, len(a.Transitions))
	for _, t := range a.Transitions {
		if t.Symbol == Epsilon {
			report.Epsilon = append(report.Epsilon, t)
			continue
		}
		key := StateSymbol{State: t.From, Symbol: t.Symbol}
		targets[key] = append(targets[key], t.To)
	}

	present := 0
	for _, state := range a.States {
		for _, symbol := range a.Alphabet {
			key := StateSymbol{State: state, Symbol: symbol}
			switch ts := targets[key]; {
			case len(ts) == 0:
				report.Missing = append(report.Missing, key)
			case len(ts) > 1:
				present++
				report.Nondeterministic = append(report.Nondeterministic, Choice{
					State:   state,
					Symbol:  symbol,
					Targets: ts,
				})
			default:
				present++
			}
		}
	}

	if total := len(a.States) * len(a.Alphabet); total > 0 {
		report.Completeness = float64(present) / float64(total) * 100
	}

	if len(report.Missing) > 0 || len(report.Nondeterministic) > 0 || len(report.Epsilon) > 0 {
		report.Classification = NFA
	}
	return report
}

// UnreachableStates returns every state that no sequence of transitions
// can reach from the start state, in state-list order. This is the
// analysis feed for ValidationResult warnings.
func (a *Automaton) UnreachableStates() []string {
	ix := newIndex(a)
	reached := bitset.New(uint(ix.size()))

	if start, ok := ix.of(a.Start); ok {
		workList := []int{start}
		reached.Set(uint(start))
		for len(workList) > 0 {
			s := workList[0]
			workList = workList[1:]
			for _, t := range a.Transitions {
				if t.From != ix.name(s) {
					continue
				}
				if dest, ok := ix.of(t.To); ok && !reached.Test(uint(dest)) {
					reached.Set(uint(dest))
					workList = append(workList, dest)
				}
			}
		}
	}

	var unreachable []string
	for i, state := range a.States {
		if !reached.Test(uint(i)) {
			unreachable = append(unreachable, state)
		}
	}
	return unreachable
}
