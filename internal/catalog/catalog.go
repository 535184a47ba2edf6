// Package catalog loads the approved source-record catalog. Every source_id
// a generated draft cites must resolve against a record loaded here.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/KeithKrenek/resume-optimization/internal/schemas"
	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// LoadError reports a catalog that could not be read or did not conform to
// the catalog schema.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load source catalog %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads and validates a source catalog from a JSON file.
func Load(path string) (*types.SourceCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	if err := schemas.ValidateDocument("source_catalog", data); err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	var cat types.SourceCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	if len(cat.Experiences) == 0 {
		return nil, &LoadError{Path: path, Cause: fmt.Errorf("catalog has no experience records")}
	}

	return &cat, nil
}
