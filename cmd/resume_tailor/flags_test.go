package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeithKrenek/resume-optimization/internal/config"
)

// newTestCommand builds a throwaway command carrying its own flag set so
// Changed tracking starts clean for each test.
func newTestCommand() (*cobra.Command, *runFlags) {
	f := &runFlags{}
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	addRunFlags(cmd, f)
	return cmd, f
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolve_DefaultsApply(t *testing.T) {
	cmd, f := newTestCommand()

	cfg, err := f.resolve(cmd)
	require.NoError(t, err)

	assert.Equal(t, defaultOutputRoot, cfg.OutputRoot)
	assert.Equal(t, config.DefaultValidationRetries, cfg.MaxValidationRetries)
	assert.Equal(t, config.DefaultQARetries, cfg.MaxQARetries)
	assert.False(t, cfg.SkipStyleEdit)
}

func TestResolve_ConfigFileFillsUnsetFlags(t *testing.T) {
	jobPath := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("role"), 0o644))

	cmd, f := newTestCommand()
	f.configPath = writeConfig(t, `{"job": "`+jobPath+`", "max_validation_retries": 5, "skip_style_edit": true}`)

	cfg, err := f.resolve(cmd)
	require.NoError(t, err)

	assert.Equal(t, jobPath, cfg.Job)
	assert.Equal(t, 5, cfg.MaxValidationRetries)
	assert.True(t, cfg.SkipStyleEdit)
}

func TestResolve_ChangedFlagBeatsConfigFile(t *testing.T) {
	jobPath := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("role"), 0o644))
	flagJob := filepath.Join(t.TempDir(), "other_job.txt")
	require.NoError(t, os.WriteFile(flagJob, []byte("other role"), 0o644))

	cmd, f := newTestCommand()
	f.configPath = writeConfig(t, `{"job": "`+jobPath+`", "max_validation_retries": 5}`)
	require.NoError(t, cmd.Flags().Set("job", flagJob))
	require.NoError(t, cmd.Flags().Set("max-validation-retries", "1"))

	cfg, err := f.resolve(cmd)
	require.NoError(t, err)

	assert.Equal(t, flagJob, cfg.Job)
	assert.Equal(t, 1, cfg.MaxValidationRetries)
}

func TestResolve_ZeroRetriesViaFlagSurvivesMerge(t *testing.T) {
	cmd, f := newTestCommand()
	require.NoError(t, cmd.Flags().Set("max-validation-retries", "0"))
	require.NoError(t, cmd.Flags().Set("max-qa-retries", "0"))

	cfg, err := f.resolve(cmd)
	require.NoError(t, err)

	assert.Zero(t, cfg.MaxValidationRetries)
	assert.Zero(t, cfg.MaxQARetries)
}

func TestResolve_NegativeRetriesRejected(t *testing.T) {
	cmd, f := newTestCommand()
	require.NoError(t, cmd.Flags().Set("max-validation-retries", "-1"))

	_, err := f.resolve(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestResolve_MissingConfigFile(t *testing.T) {
	cmd, f := newTestCommand()
	f.configPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := f.resolve(cmd)
	require.Error(t, err)
}

func TestRequireFreshRunInputs(t *testing.T) {
	err := requireFreshRunInputs(config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--job")

	err = requireFreshRunInputs(config.Config{Job: "job.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--catalog")

	assert.NoError(t, requireFreshRunInputs(config.Config{Job: "job.txt", Catalog: "catalog.json"}))
}
