// Package types provides type definitions for structured data used throughout the resume tailoring pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// CatalogMetadata carries the catalog-level fields that are not source records
type CatalogMetadata struct {
	Contact     map[string]any `json:"contact,omitempty"`
	LastUpdated string         `json:"last_updated,omitempty"`
	Version     string         `json:"version,omitempty"`
}

// SourceCatalog represents the approved source-record database. Section maps
// are keyed by source ID; record bodies are semi-structured because catalog
// authors add free-form fields that flow through to generation prompts.
type SourceCatalog struct {
	Experiences  map[string]map[string]any `json:"experiences"`
	Projects     map[string]map[string]any `json:"projects"`
	Skills       map[string]any            `json:"skills,omitempty"`
	Publications map[string]map[string]any `json:"publications,omitempty"`
	WorkSamples  []map[string]any          `json:"work_samples,omitempty"`
	Education    map[string]map[string]any `json:"education,omitempty"`
	Metadata     CatalogMetadata           `json:"metadata,omitempty"`
}

// EducationList returns education records in stable key order.
func (c *SourceCatalog) EducationList() []map[string]any {
	keys := make([]string, 0, len(c.Education))
	for k := range c.Education {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]map[string]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.Education[k])
	}
	return out
}

// SourceIDs returns every experience and project ID in the catalog.
func (c *SourceCatalog) SourceIDs() map[string]bool {
	ids := make(map[string]bool, len(c.Experiences)+len(c.Projects))
	for id := range c.Experiences {
		ids[id] = true
	}
	for id := range c.Projects {
		ids[id] = true
	}
	return ids
}
