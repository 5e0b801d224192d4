package automaton

import "fmt"

// SymbolError reports an input symbol that is not part of the automaton's
// alphabet. Simulation fails on it rather than silently treating the
// symbol as a dead transition, so a bad input string stays diagnosable.
type SymbolError struct {
	Symbol string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("simulate: symbol %q is not in the alphabet", e.Symbol)
}

// Verdict is the terminal outcome of a simulation.
type Verdict string

const (
	VerdictAccept Verdict = "ACCEPT"
	VerdictReject Verdict = "REJECT"
)

// TraceStep records one step of a simulation: the active state set before
// the step, the symbol consumed (empty on the initial step) and the
// active state set after.
type TraceStep struct {
	Active []string `json:"active"`
	Symbol string   `json:"symbol,omitempty"`
	Next   []string `json:"next"`
}

// SimulationResult is the outcome of executing an input string against an
// automaton, including the step-by-step execution trace consumed by
// explanation layers outside this package.
type SimulationResult struct {
	Accepted bool        `json:"accepted"`
	Verdict  Verdict     `json:"verdict"`
	Final    []string    `json:"final"`
	Trace    []TraceStep `json:"trace"`
}

// Simulate executes input against the automaton, treating every rune of
// the string as one alphabet symbol. The empty string is legal and
// denotes the empty input.
func Simulate(a *Automaton, input string) (*SimulationResult, error) {
	symbols := make([]string, 0, len(input))
	for _, r := range input {
		symbols = append(symbols, string(r))
	}
	return SimulateSymbols(a, symbols)
}

// SimulateSymbols executes a symbol sequence against the automaton. The
// algorithm is uniform for deterministic and nondeterministic automata:
// a set of active states starts as {Start} and each symbol replaces it
// with the union of all matching transition targets. The input is
// accepted iff the final active set intersects the accept states.
//
// A symbol outside the alphabet fails with *SymbolError before any step
// is taken.
func SimulateSymbols(a *Automaton, symbols []string) (*SimulationResult, error) {
	for _, symbol := range symbols {
		if !a.HasSymbol(symbol) {
			return nil, &SymbolError{Symbol: symbol}
		}
	}

	ix := newIndex(a)
	active := newStateSet(ix.size())
	if start, ok := ix.of(a.Start); ok {
		active.add(start)
	}

	result := &SimulationResult{
		Trace: []TraceStep{{
			Active: ix.names(active.bits),
			Next:   ix.names(active.bits),
		}},
	}

	for _, symbol := range symbols {
		before := ix.names(active.bits)

		next := newStateSet(ix.size())
		for _, s := range active.array() {
			for _, target := range a.Targets(ix.name(s), symbol) {
				if dest, ok := ix.of(target); ok {
					next.add(dest)
				}
			}
		}
		active = next

		result.Trace = append(result.Trace, TraceStep{
			Active: before,
			Symbol: symbol,
			Next:   ix.names(active.bits),
		})

		// No target state can ever become active again.
		if active.empty() {
			break
		}
	}

	result.Final = ix.names(active.bits)
	result.Accepted = active.intersects(ix.finals(a))
	result.Verdict = VerdictReject
	if result.Accepted {
		result.Verdict = VerdictAccept
	}
	return result, nil
}
