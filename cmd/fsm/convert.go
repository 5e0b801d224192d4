package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsmkit/automaton"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert an NFA to an equivalent DFA",
	Long:  `Runs the subset construction and prints the resulting DFA in the text grammar, together with the state-count statistics.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(cmd, args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, path string) error {
	a, err := loadAutomaton(cmd, path)
	if err != nil {
		return err
	}

	if automaton.Classify(a) == automaton.DFA {
		logger.Debug("input is already deterministic; conversion is a relabeling")
	}

	dfa, report := automaton.Determinize(a)
	fmt.Printf("# %d NFA states -> %d DFA states (worst case %.0f)\n",
		report.NFAStates, report.DFAStates, report.UpperBound)
	fmt.Print(automaton.Format(dfa))
	return nil
}
