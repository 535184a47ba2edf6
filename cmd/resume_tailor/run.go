package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	runAllFlags    = &runFlags{}
	runPhase1Flags = &runFlags{}
	runPhase2Flags = &runFlags{}
	runPhase3Flags = &runFlags{}
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run all three tailoring phases end-to-end",
	Long: `Runs the full pipeline: job analysis and content selection (Phase 1),
draft generation with validation retries (Phase 2), and style editing with
quality review (Phase 3).

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := runAllFlags.resolve(cmd)
		if err != nil {
			return err
		}
		if err := requireFreshRunInputs(cfg); err != nil {
			return err
		}

		ctx := context.Background()
		p, cleanup, err := buildPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		st, err := p.Run(ctx)
		if st != nil {
			fmt.Printf("Run key: %s\n", st.Key)
		}
		return err
	},
}

var runPhase1Command = &cobra.Command{
	Use:   "run-phase-1",
	Short: "Run Phase 1 only: job analysis and content selection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := runPhase1Flags.resolve(cmd)
		if err != nil {
			return err
		}
		if err := requireFreshRunInputs(cfg); err != nil {
			return err
		}

		ctx := context.Background()
		p, cleanup, err := buildPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		st, err := p.RunPhase1(ctx)
		if st != nil {
			fmt.Printf("Run key: %s\n", st.Key)
		}
		return err
	},
}

var runPhase2Command = &cobra.Command{
	Use:   "run-phase-2 <run-key>",
	Short: "Run Phase 2 only: draft generation and validation for an existing run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := runPhase2Flags.resolve(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		p, cleanup, err := buildPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		_, err = p.RunPhase2(ctx, args[0])
		return err
	},
}

var runPhase3Command = &cobra.Command{
	Use:   "run-phase-3 <run-key>",
	Short: "Run Phase 3 only: style editing and quality review for an existing run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := runPhase3Flags.resolve(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		p, cleanup, err := buildPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		_, err = p.RunPhase3(ctx, args[0])
		return err
	},
}

func init() {
	addRunFlags(runCommand, runAllFlags)
	addRunFlags(runPhase1Command, runPhase1Flags)
	addRunFlags(runPhase2Command, runPhase2Flags)
	addRunFlags(runPhase3Command, runPhase3Flags)

	rootCmd.AddCommand(runCommand)
	rootCmd.AddCommand(runPhase1Command)
	rootCmd.AddCommand(runPhase2Command)
	rootCmd.AddCommand(runPhase3Command)
}
