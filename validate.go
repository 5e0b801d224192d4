package automaton

import "fmt"

// ValidationResult is a structural consistency report. Validate never
// fails; every independent problem is collected so callers see all of
// them at once. Warnings are reserved for non-fatal oddities and are
// populated by analysis layers on top of this package (for example
// unreachable states, see UnreachableStates), not by Validate itself.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks the structural consistency of an Automaton: non-empty
// states and alphabet, no duplicates, and that the start state, final
// states and every transition endpoint and symbol cross-reference the
// declared states and alphabet.
func Validate(a *Automaton) ValidationResult {
	var errs []string

	if len(a.States) == 0 {
		errs = append(errs, "automaton has no states")
	}
	if len(a.Alphabet) == 0 {
		errs = append(errs, "automaton has no alphabet symbols")
	}

	errs = append(errs, duplicates("state", a.States)...)
	errs = append(errs, duplicates("alphabet symbol", a.Alphabet)...)

	switch {
	case a.Start == "":
		errs = append(errs, "no start state declared")
	case !a.HasState(a.Start):
		errs = append(errs, fmt.Sprintf("start state %q is not in the state list", a.Start))
	}

	for _, f := range a.Final {
		if !a.HasState(f) {
			errs = append(errs, fmt.Sprintf("final state %q is not in the state list", f))
		}
	}

	for _, t := range a.Transitions {
		if !a.HasState(t.From) {
			errs = append(errs, fmt.Sprintf("transition %s,%s,%s: source state %q is not in the state list", t.From, t.Symbol, t.To, t.From))
		}
		if !a.HasState(t.To) {
			errs = append(errs, fmt.Sprintf("transition %s,%s,%s: target state %q is not in the state list", t.From, t.Symbol, t.To, t.To))
		}
		if !a.HasSymbol(t.Symbol) {
			errs = append(errs, fmt.Sprintf("transition %s,%s,%s: symbol %q is not in the alphabet", t.From, t.Symbol, t.To, t.Symbol))
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

func duplicates(kind string, values []string) []string {
	var errs []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			errs = append(errs, fmt.Sprintf("duplicate %s %q", kind, v))
			continue
		}
		seen[v] = true
	}
	return errs
}
