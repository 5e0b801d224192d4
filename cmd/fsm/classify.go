package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fsmkit/automaton"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Decide whether an automaton is a DFA or an NFA",
	Long:  `Prints the classification together with the determinism report: missing (state, symbol) pairs, nondeterministic choices with their targets, epsilon transitions and the completeness of the transition grid.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runClassify(cmd, args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, path string) error {
	a, err := loadAutomaton(cmd, path)
	if err != nil {
		return err
	}

	report := automaton.Report(a)
	fmt.Printf("Classification: %s\n", report.Classification)
	fmt.Printf("Transition grid completeness: %.1f%%\n\n", report.Completeness)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"From", "Symbol", "To"})
	for _, t := range a.Transitions {
		table.Append([]string{t.From, t.Symbol, t.To})
	}
	table.Render()

	if len(report.Missing) > 0 {
		fmt.Println("\nMissing transitions:")
		for _, m := range report.Missing {
			fmt.Printf("  (%s, %s)\n", m.State, m.Symbol)
		}
	}
	if len(report.Nondeterministic) > 0 {
		fmt.Println("\nNondeterministic choices:")
		for _, c := range report.Nondeterministic {
			fmt.Printf("  (%s, %s) -> {%s}\n", c.State, c.Symbol, strings.Join(c.Targets, ", "))
		}
	}
	if len(report.Epsilon) > 0 {
		fmt.Println("\nEpsilon transitions:")
		for _, t := range report.Epsilon {
			fmt.Printf("  %s -> %s\n", t.From, t.To)
		}
	}
	return nil
}
