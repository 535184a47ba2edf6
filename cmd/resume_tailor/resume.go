package main

import (
	"context"

	"github.com/spf13/cobra"
)

var resumeFlags = &runFlags{}

var resumeCommand = &cobra.Command{
	Use:   "resume <run-key>",
	Short: "Resume an interrupted run from its last completed stage",
	Long: `Loads the run's saved state and executes only the stages that have not
completed yet. Already-persisted task outputs are reloaded instead of being
regenerated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resumeFlags.resolve(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		p, cleanup, err := buildPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		_, err = p.Resume(ctx, args[0])
		return err
	},
}

func init() {
	addRunFlags(resumeCommand, resumeFlags)
	rootCmd.AddCommand(resumeCommand)
}
