package automaton

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format renders an Automaton in the textual grammar accepted by Parse,
// so conversion and minimization results round-trip through the parser.
func Format(a *Automaton) string {
	var b strings.Builder
	fmt.Fprintf(&b, "States: %s\n", strings.Join(a.States, ","))
	fmt.Fprintf(&b, "Alphabet: %s\n", strings.Join(a.Alphabet, ","))
	b.WriteString("Transitions:\n")
	for _, t := range a.Transitions {
		fmt.Fprintf(&b, "%s,%s,%s\n", t.From, t.Symbol, t.To)
	}
	fmt.Fprintf(&b, "Start: %s\n", a.Start)
	fmt.Fprintf(&b, "Final: %s\n", strings.Join(a.Final, ","))
	return b.String()
}

// DecodeJSON decodes an Automaton definition from JSON.
func DecodeJSON(data []byte) (*Automaton, error) {
	var a Automaton
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode json automaton: %w", err)
	}
	return &a, nil
}

// DecodeYAML decodes an Automaton definition from YAML.
func DecodeYAML(data []byte) (*Automaton, error) {
	var a Automaton
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode yaml automaton: %w", err)
	}
	return &a, nil
}
