package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsmkit/automaton"
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize <file>",
	Short: "Minimize a DFA",
	Long:  `Reduces a deterministic automaton to its minimal equivalent form. A nondeterministic input is converted via subset construction first.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMinimize(cmd, args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(minimizeCmd)
}

func runMinimize(cmd *cobra.Command, path string) error {
	a, err := loadAutomaton(cmd, path)
	if err != nil {
		return err
	}

	if automaton.Classify(a) == automaton.NFA {
		logger.Debug("input is nondeterministic; converting before minimization")
		a = automaton.ToDFA(a)
	}

	min, err := automaton.Minimize(a)
	if err != nil {
		return err
	}

	fmt.Printf("# %d states -> %d states\n", len(a.States), len(min.States))
	fmt.Print(automaton.Format(min))
	return nil
}
