package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/fsmkit/automaton"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <file> [input]",
	Short: "Run an input string against an automaton",
	Long:  `Simulates the input string and prints the verdict plus the step-by-step trace of active states. With --interactive, prompts for strings in a loop.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSimulate(cmd, args); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	simulateCmd.Flags().Bool("interactive", false, "Prompt for input strings in a loop")
	simulateCmd.Flags().Bool("trace", true, "Print the execution trace")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	a, err := loadAutomaton(cmd, args[0])
	if err != nil {
		return err
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	withTrace, _ := cmd.Flags().GetBool("trace")

	if !interactive {
		if len(args) < 2 {
			return fmt.Errorf("simulate: an input string is required unless --interactive is set")
		}
		return simulateOnce(a, args[1], withTrace)
	}

	for {
		prompt := promptui.Prompt{
			Label: "Input string (or 'exit')",
		}
		input, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
		if input == "exit" {
			return nil
		}
		if err := simulateOnce(a, input, withTrace); err != nil {
			fmt.Println(err)
		}
	}
}

func simulateOnce(a *automaton.Automaton, input string, withTrace bool) error {
	result, err := automaton.Simulate(a, input)
	if err != nil {
		return err
	}

	if withTrace {
		for _, step := range result.Trace {
			if step.Symbol == "" {
				fmt.Printf("start       {%s}\n", strings.Join(step.Next, ", "))
				continue
			}
			fmt.Printf("read %-6q {%s} -> {%s}\n", step.Symbol, strings.Join(step.Active, ", "), strings.Join(step.Next, ", "))
		}
	}
	fmt.Printf("%s %q\n", result.Verdict, input)
	return nil
}
