package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsmkit/automaton/internal/logging"
)

var logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "fsm",
	Short: "fsm inspects, simulates and transforms finite automata",
	Long: `fsm loads a finite automaton from a text, JSON or YAML description and
runs the computation engine on it: structural validation, DFA/NFA
classification, string simulation, NFA-to-DFA conversion and DFA
minimization.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger = logging.New(level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("lenient", false, "Tolerate malformed transition lines and absent sections in text input")
}
