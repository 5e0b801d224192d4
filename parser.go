package automaton

import (
	"errors"
	"fmt"
	"strings"
)

// MissingSectionError reports an absent section in a textual automaton
// description.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("parse: missing %q section", e.Section+":")
}

// MalformedTransitionError reports a transition line that did not split
// into exactly three non-empty comma-separated tokens.
type MalformedTransitionError struct {
	Line int
	Text string
}

func (e *MalformedTransitionError) Error() string {
	return fmt.Sprintf("parse: malformed transition on line %d: %q (want from,symbol,to)", e.Line, e.Text)
}

type parseConfig struct {
	lenientTransitions bool
	optionalSections   bool
}

// ParseOption customizes Parse.
type ParseOption func(*parseConfig)

// WithLenientTransitions makes Parse skip malformed transition lines
// instead of failing. This matches the permissive behavior of legacy
// inputs that rely on invalid lines being dropped.
func WithLenientTransitions() ParseOption {
	return func(c *parseConfig) { c.lenientTransitions = true }
}

// WithOptionalSections makes Parse tolerate absent sections, leaving the
// corresponding Automaton fields empty instead of failing. Validate will
// still report the resulting structural gaps.
func WithOptionalSections() ParseOption {
	return func(c *parseConfig) { c.optionalSections = true }
}

// Parse turns a line-oriented textual description into an Automaton.
// The grammar is five line-prefixed sections in any order:
//
//	States: q0, q1
//	Alphabet: 0, 1
//	Transitions:
//	q0,0,q1
//	q1,1,q0
//	Start: q0
//	Final: q0
//
// The Transitions section consumes every following line until a line
// begins with "Start:" or "Final:". Whitespace around every token is
// trimmed. Parse performs no semantic validation; use Validate for
// structural consistency checks.
func Parse(text string, opts ...ParseOption) (*Automaton, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Automaton{}
	seen := make(map[string]bool, 5)
	inTransitions := false

	var errs []error
	for n, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "States:"):
			inTransitions = false
			seen["States"] = true
			a.States = splitList(strings.TrimPrefix(line, "States:"))
		case strings.HasPrefix(line, "Alphabet:"):
			inTransitions = false
			seen["Alphabet"] = true
			a.Alphabet = splitList(strings.TrimPrefix(line, "Alphabet:"))
		case strings.HasPrefix(line, "Transitions:"):
			inTransitions = true
			seen["Transitions"] = true
		case strings.HasPrefix(line, "Start:"):
			inTransitions = false
			seen["Start"] = true
			a.Start = strings.TrimSpace(strings.TrimPrefix(line, "Start:"))
		case strings.HasPrefix(line, "Final:"):
			inTransitions = false
			seen["Final"] = true
			a.Final = splitList(strings.TrimPrefix(line, "Final:"))
		case inTransitions && line != "":
			tr, ok := splitTransition(line)
			if !ok {
				if !cfg.lenientTransitions {
					errs = append(errs, &MalformedTransitionError{Line: n + 1, Text: line})
				}
				continue
			}
			a.Transitions = append(a.Transitions, tr)
		}
	}

	if !cfg.optionalSections {
		for _, section := range []string{"States", "Alphabet", "Transitions", "Start", "Final"} {
			if !seen[section] {
				errs = append(errs, &MissingSectionError{Section: section})
			}
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return a, nil
}

// splitList splits a comma-separated list into trimmed non-empty tokens.
func splitList(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// splitTransition splits a transition line into exactly three trimmed
// non-empty tokens.
func splitTransition(line string) (Transition, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return Transition{}, false
	}
	from := strings.TrimSpace(parts[0])
	symbol := strings.TrimSpace(parts[1])
	to := strings.TrimSpace(parts[2])
	if from == "" || symbol == "" || to == "" {
		return Transition{}, false
	}
	return Transition{From: from, Symbol: symbol, To: to}, true
}
