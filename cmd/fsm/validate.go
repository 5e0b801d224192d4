package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsmkit/automaton"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check an automaton description for structural consistency",
	Long:  `Checks state/alphabet/transition cross-references and reports every problem at once, plus unreachable states as warnings.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, path string) error {
	a, err := loadAutomaton(cmd, path)
	if err != nil {
		return err
	}

	result := automaton.Validate(a)
	for _, state := range a.UnreachableStates() {
		result.Warnings = append(result.Warnings, fmt.Sprintf("state %q is unreachable from the start state", state))
	}

	for _, w := range result.Warnings {
		fmt.Println("warning:", w)
	}
	if !result.IsValid {
		for _, e := range result.Errors {
			fmt.Println("error:", e)
		}
		return fmt.Errorf("automaton is invalid: %d errors", len(result.Errors))
	}

	fmt.Println("Automaton is valid.")
	return nil
}
