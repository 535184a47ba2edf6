// Package selection fans the five content-selection tasks out in parallel
// and joins their results for aggregation.
package selection

import (
	"encoding/json"
	"fmt"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// Category identifies one content-selection task.
type Category string

// Selection categories in fan-out order.
const (
	CategoryExperiences  Category = "experiences"
	CategoryProjects     Category = "projects"
	CategorySkills       Category = "skills"
	CategoryPublications Category = "publications"
	CategoryWorkSamples  Category = "work_samples"
)

// Categories returns all selection categories in fan-out order.
func Categories() []Category {
	return []Category{
		CategoryExperiences,
		CategoryProjects,
		CategorySkills,
		CategoryPublications,
		CategoryWorkSamples,
	}
}

// CoverageFacets lists which job requirements a category's picks cover,
// split by facet.
type CoverageFacets struct {
	TechnicalRequirementsCovered  []string `json:"technical_requirements_covered"`
	LeadershipRequirementsCovered []string `json:"leadership_requirements_covered"`
	DomainRequirementsCovered     []string `json:"domain_requirements_covered"`
}

// SelectionSummary is a selector's own account of what it picked.
type SelectionSummary struct {
	TotalSelected    int             `json:"total_selected"`
	AverageRelevance float64         `json:"average_relevance"`
	Coverage         *CoverageFacets `json:"coverage,omitempty"`
}

// CategoryResult holds one category's parsed selection. Only the field
// matching the category is populated. Err is set when the task failed and
// the result is an empty placeholder.
type CategoryResult struct {
	Category     Category
	Experiences  []types.SelectedExperience
	Projects     []types.SelectedProject
	Skills       map[string][]string
	Publications []types.SelectedPublication
	WorkSamples  []types.SelectedWorkSample
	Notes        string
	Summary      *SelectionSummary
	Err          error
}

// EmptyResult returns the placeholder recorded when a category task fails:
// no content for the category and the failure noted in selection_notes.
func EmptyResult(category Category, cause error) CategoryResult {
	res := CategoryResult{
		Category: category,
		Notes:    "Error: " + cause.Error(),
		Err:      cause,
	}
	if category == CategorySkills {
		res.Skills = map[string][]string{}
	}
	return res
}

// parseResult decodes a selector's JSON output into a CategoryResult.
func parseResult(category Category, raw json.RawMessage) (CategoryResult, error) {
	res := CategoryResult{Category: category}

	switch category {
	case CategoryExperiences:
		var env struct {
			Selected []types.SelectedExperience `json:"selected_experiences"`
			Notes    string                     `json:"selection_notes"`
			Summary  *SelectionSummary          `json:"selection_summary"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return res, fmt.Errorf("experience selection output: %w", err)
		}
		res.Experiences, res.Notes, res.Summary = env.Selected, env.Notes, env.Summary

	case CategoryProjects:
		var env struct {
			Selected []types.SelectedProject `json:"selected_projects"`
			Notes    string                  `json:"selection_notes"`
			Summary  *SelectionSummary       `json:"selection_summary"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return res, fmt.Errorf("project selection output: %w", err)
		}
		res.Projects, res.Notes, res.Summary = env.Selected, env.Notes, env.Summary

	case CategorySkills:
		var env struct {
			Selected map[string][]string `json:"selected_skills"`
			Notes    string              `json:"selection_notes"`
			Summary  *SelectionSummary   `json:"selection_summary"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return res, fmt.Errorf("skills selection output: %w", err)
		}
		res.Skills, res.Notes, res.Summary = env.Selected, env.Notes, env.Summary
		if res.Skills == nil {
			res.Skills = map[string][]string{}
		}

	case CategoryPublications:
		var env struct {
			Selected []types.SelectedPublication `json:"selected_publications"`
			Notes    string                      `json:"selection_notes"`
			Summary  *SelectionSummary           `json:"selection_summary"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return res, fmt.Errorf("publication selection output: %w", err)
		}
		res.Publications, res.Notes, res.Summary = env.Selected, env.Notes, env.Summary

	case CategoryWorkSamples:
		var env struct {
			Selected []types.SelectedWorkSample `json:"selected_work_samples"`
			Notes    string                     `json:"selection_notes"`
			Summary  *SelectionSummary          `json:"selection_summary"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return res, fmt.Errorf("work sample selection output: %w", err)
		}
		res.WorkSamples, res.Notes, res.Summary = env.Selected, env.Notes, env.Summary

	default:
		return res, fmt.Errorf("unknown selection category %q", category)
	}

	return res, nil
}
