package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fsmkit/automaton"
)

// loadAutomaton reads an automaton definition from disk, dispatching on
// the file extension: .json and .yaml/.yml are structured definitions,
// anything else is the line-oriented text grammar.
func loadAutomaton(cmd *cobra.Command, path string) (*automaton.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read automaton file: %w", err)
	}

	switch filepath.Ext(path) {
	case ".json":
		return automaton.DecodeJSON(data)
	case ".yaml", ".yml":
		return automaton.DecodeYAML(data)
	default:
		var opts []automaton.ParseOption
		if lenient, _ := cmd.Flags().GetBool("lenient"); lenient {
			opts = append(opts, automaton.WithLenientTransitions(), automaton.WithOptionalSections())
		}
		a, err := automaton.Parse(string(data), opts...)
		if err != nil {
			return nil, err
		}
		logger.Debug("parsed automaton",
			"states", len(a.States),
			"alphabet", len(a.Alphabet),
			"transitions", len(a.Transitions))
		return a, nil
	}
}
