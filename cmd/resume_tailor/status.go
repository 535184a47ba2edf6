package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KeithKrenek/resume-optimization/internal/observability"
	"github.com/KeithKrenek/resume-optimization/internal/state"
)

var statusOutputRoot string

var statusCommand = &cobra.Command{
	Use:   "status <run-key>",
	Short: "Show a run's stage progress, errors, and artifacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store := state.NewFileStore(statusOutputRoot)
		st, err := store.Load(args[0])
		if err != nil {
			return err
		}

		observability.NewPrinter(os.Stdout).PrintStateSummary(st)
		return nil
	},
}

func init() {
	statusCommand.Flags().StringVarP(&statusOutputRoot, "out", "o", defaultOutputRoot, "Applications folder holding per-run job folders")
	rootCmd.AddCommand(statusCommand)
}
