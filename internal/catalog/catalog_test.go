package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `{
  "experiences": {
    "exp_acme_2020": {
      "company": "Acme Corp",
      "title": "Staff Engineer",
      "dates": "2020-2024",
      "key_achievements": ["Led migration of the billing platform to event sourcing"]
    }
  },
  "projects": {
    "proj_etl": {"title": "ETL Rebuild"}
  },
  "metadata": {
    "contact": {"name": "Jordan Reyes", "email": "jordan@example.com"},
    "version": "3"
  }
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidCatalog(t *testing.T) {
	cat, err := Load(writeCatalog(t, validCatalog))
	require.NoError(t, err)

	assert.Contains(t, cat.Experiences, "exp_acme_2020")
	assert.Contains(t, cat.Projects, "proj_etl")
	assert.Equal(t, "Jordan Reyes", cat.Metadata.Contact["name"])

	ids := cat.SourceIDs()
	assert.True(t, ids["exp_acme_2020"])
	assert.True(t, ids["proj_etl"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, loadErr.Cause, os.ErrNotExist)
}

func TestLoad_SchemaViolation(t *testing.T) {
	// Missing the required metadata block.
	_, err := Load(writeCatalog(t, `{"experiences": {"exp_a": {}}}`))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoad_EmptyExperiences(t *testing.T) {
	_, err := Load(writeCatalog(t, `{"experiences": {}, "metadata": {"contact": {}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no experience records")
}
