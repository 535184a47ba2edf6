//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getTestDB connects to the database named by TEST_DATABASE_URL, skipping
// the test when no integration database is configured.
func getTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	database, err := Connect(context.Background(), url)
	require.NoError(t, err)
	return database
}

func TestIntegration_RunAndArtifactRoundTrip(t *testing.T) {
	database := getTestDB(t)
	defer database.Close()
	ctx := context.Background()

	runID, err := database.CreateRun(ctx, "TestCorp", "Engineer", "20250301_120000_TestCorp_Engineer")
	require.NoError(t, err)

	require.NoError(t, database.SaveArtifact(ctx, runID, StepJobAnalysis, CategoryAnalysis,
		map[string]string{"company": "TestCorp"}))
	// Saving the same step again must overwrite, not duplicate.
	require.NoError(t, database.SaveArtifact(ctx, runID, StepJobAnalysis, CategoryAnalysis,
		map[string]string{"company": "TestCorp", "job_title": "Engineer"}))

	content, err := database.GetArtifact(ctx, runID, StepJobAnalysis)
	require.NoError(t, err)
	assert.Contains(t, string(content), "job_title")

	missing, err := database.GetArtifact(ctx, runID, StepQAReport)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, database.CompleteRun(ctx, runID, "completed"))

	run, err := database.GetRunByStateKey(ctx, "20250301_120000_TestCorp_Engineer")
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "completed", run.Status)
	assert.NotNil(t, run.CompletedAt)
}
