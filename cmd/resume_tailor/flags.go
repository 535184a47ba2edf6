package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KeithKrenek/resume-optimization/internal/config"
	"github.com/KeithKrenek/resume-optimization/internal/db"
	"github.com/KeithKrenek/resume-optimization/internal/llm"
	"github.com/KeithKrenek/resume-optimization/internal/pipeline"
	"github.com/KeithKrenek/resume-optimization/internal/state"
)

// defaultOutputRoot is where per-run job folders are created when no output
// root is configured.
const defaultOutputRoot = "applications"

// runFlags holds the flag values shared by the run-family commands. Each
// command owns its own instance so Changed tracking stays per-command.
type runFlags struct {
	configPath        string
	job               string
	catalog           string
	outputRoot        string
	apiKey            string
	databaseURL       string
	validationRetries int
	qaRetries         int
	skipStyleEdit     bool
	pdf               bool
	verbose           bool
}

// addRunFlags registers the shared tailoring flags on a command.
func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVarP(&f.job, "job", "j", "", "Path to job description file (.txt, .md, or .html)")
	cmd.Flags().StringVarP(&f.catalog, "catalog", "c", "", "Path to the source catalog JSON")
	cmd.Flags().StringVarP(&f.outputRoot, "out", "o", "", "Applications folder holding per-run job folders (default \"applications\")")
	cmd.Flags().IntVar(&f.validationRetries, "max-validation-retries", config.DefaultValidationRetries, "Draft regeneration bound when validation finds critical issues")
	cmd.Flags().IntVar(&f.qaRetries, "max-qa-retries", config.DefaultQARetries, "Re-edit bound when the quality review fails")
	cmd.Flags().BoolVar(&f.skipStyleEdit, "skip-style-edit", false, "Skip the voice and style editing step")
	cmd.Flags().BoolVar(&f.pdf, "pdf", false, "Render the final resume to PDF (requires Chrome)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for the optional artifact mirror
	cmd.Flags().StringVar(&f.databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
}

// resolve merges the config file, defaults, environment fallbacks, and
// explicitly set flags into the effective configuration. Explicit flags win
// over everything; config file values win over defaults.
func (f *runFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
		if f.verbose {
			fmt.Printf("Loaded config from: %s\n", f.configPath)
		}
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		OutputRoot:           defaultOutputRoot,
		MaxValidationRetries: config.DefaultValidationRetries,
		MaxQARetries:         config.DefaultQARetries,
	})

	// Explicitly set flags override config file values. Checking Changed
	// lets a flag express values the file merge treats as unset, like a
	// zero retry bound.
	if cmd.Flags().Changed("job") {
		cfg.Job = f.job
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = f.catalog
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputRoot = f.outputRoot
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = f.apiKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = f.databaseURL
	}
	if cmd.Flags().Changed("max-validation-retries") {
		cfg.MaxValidationRetries = f.validationRetries
	}
	if cmd.Flags().Changed("max-qa-retries") {
		cfg.MaxQARetries = f.qaRetries
	}
	if cmd.Flags().Changed("skip-style-edit") {
		cfg.SkipStyleEdit = f.skipStyleEdit
	}
	if cmd.Flags().Changed("pdf") {
		cfg.GeneratePDF = f.pdf
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogging installs a development logger when verbose output is on. The
// global logger stays a no-op otherwise.
func setupLogging(verbose bool) {
	if !verbose {
		return
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	zap.ReplaceGlobals(logger)
}

// connectMirror opens the optional Postgres artifact mirror. A failed
// connection degrades to a warning; the file store alone is authoritative.
func connectMirror(ctx context.Context, databaseURL string) *db.DB {
	if databaseURL == "" {
		return nil
	}
	mirror, err := db.Connect(ctx, databaseURL)
	if err != nil {
		fmt.Printf("Warning: failed to connect to database: %v\n", err)
		fmt.Printf("Continuing without the artifact mirror...\n")
		return nil
	}
	return mirror
}

// buildPipeline assembles the pipeline from a resolved configuration. The
// returned cleanup closes the capability client and the mirror.
func buildPipeline(ctx context.Context, cfg config.Config) (*pipeline.Pipeline, func(), error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	setupLogging(cfg.Verbose)

	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	mirror := connectMirror(ctx, cfg.DatabaseURL)

	store := state.NewFileStore(cfg.OutputRoot)
	p := pipeline.New(store, client, mirror, pipeline.Options{
		JobPath:              cfg.Job,
		CatalogPath:          cfg.Catalog,
		MaxValidationRetries: cfg.MaxValidationRetries,
		MaxQARetries:         cfg.MaxQARetries,
		SkipStyleEdit:        cfg.SkipStyleEdit,
		GeneratePDF:          cfg.GeneratePDF,
		Verbose:              cfg.Verbose,
	})

	cleanup := func() {
		_ = client.Close()
		if mirror != nil {
			mirror.Close()
		}
	}
	return p, cleanup, nil
}

// requireFreshRunInputs validates the flags a run that starts from scratch
// needs: a job description to analyze and a catalog to select from.
func requireFreshRunInputs(cfg config.Config) error {
	if cfg.Job == "" {
		return fmt.Errorf("--job must be provided (via flag or config)")
	}
	if cfg.Catalog == "" {
		return fmt.Errorf("--catalog must be provided (via flag or config)")
	}
	return nil
}
