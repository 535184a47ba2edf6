// Package aggregate merges the parallel category selections into a single
// content selection and computes requirement coverage for it.
package aggregate

import (
	"fmt"
	"math"
	"strings"

	"github.com/KeithKrenek/resume-optimization/internal/normalize"
	"github.com/KeithKrenek/resume-optimization/internal/selection"
	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// MergeInput carries everything the merge needs: the joined category
// results, the catalog's contact and education records, and the job
// analysis the coverage is computed against.
type MergeInput struct {
	Results   []selection.CategoryResult
	Contact   map[string]any
	Education []map[string]any
	Analysis  *types.JobAnalysis
}

// Merge combines the category results into one ContentSelection. Contact
// and education come from the catalog, normalized at this boundary; the
// category content is taken as the selectors returned it.
func Merge(in MergeInput) *types.ContentSelection {
	byCat := make(map[selection.Category]selection.CategoryResult, len(in.Results))
	for _, res := range in.Results {
		byCat[res.Category] = res
	}

	exp := byCat[selection.CategoryExperiences]
	proj := byCat[selection.CategoryProjects]
	skills := byCat[selection.CategorySkills]
	pubs := byCat[selection.CategoryPublications]
	samples := byCat[selection.CategoryWorkSamples]

	sel := &types.ContentSelection{
		SelectedExperiences:  exp.Experiences,
		SelectedProjects:     proj.Projects,
		SelectedSkills:       skills.Skills,
		SelectedPublications: pubs.Publications,
		SelectedWorkSamples:  samples.WorkSamples,
		ContactInfo:          normalize.Contact(in.Contact),
		SelectionStrategy:    strategyNarrative(exp.Notes, proj.Notes, skills.Notes),
		CoverageAnalysis:     coverage(in.Analysis, exp, proj),
	}
	if sel.SelectedSkills == nil {
		sel.SelectedSkills = map[string][]string{}
	}

	for _, entry := range in.Education {
		sel.SelectedEducation = append(sel.SelectedEducation, normalize.EducationEntry(entry))
	}

	return sel
}

// strategyNarrative records how each selector approached its category.
func strategyNarrative(expNotes, projNotes, skillsNotes string) string {
	return fmt.Sprintf("Parallel selection strategy: Experiences - %s. Projects - %s. Skills - %s.",
		expNotes, projNotes, skillsNotes)
}

// coverage computes requirement coverage from the selectors' own coverage
// facets. Technical and domain coverage union the experience and project
// selectors; leadership coverage comes from the experience selector alone.
func coverage(analysis *types.JobAnalysis, exp, proj selection.CategoryResult) *types.CoverageAnalysis {
	if analysis == nil {
		return nil
	}

	technical := unionFacets(facetLists(facetTechnical, exp, proj)...)
	leadership := unionFacets(facetLists(facetLeadership, exp)...)
	domain := unionFacets(facetLists(facetDomain, exp, proj)...)

	requirements := analysis.RequirementSet()

	covered := make(map[string]bool)
	for _, group := range [][]string{technical, leadership, domain} {
		for _, item := range group {
			covered[foldKey(item)] = true
		}
	}

	coveredCount := 0
	var unmatched []string
	for _, req := range requirements {
		if covered[foldKey(req)] {
			coveredCount++
		} else {
			unmatched = append(unmatched, req)
		}
	}

	pct := 0
	if len(requirements) > 0 {
		pct = int(math.Round(float64(coveredCount) / float64(len(requirements)) * 100))
	}

	strongest := append(firstN(technical, 5), firstN(leadership, 3)...)

	return &types.CoverageAnalysis{
		TotalRequirements:   len(requirements),
		RequirementsCovered: coveredCount,
		CoveragePercentage:  pct,
		TechnicalCovered:    technical,
		LeadershipCovered:   leadership,
		DomainCovered:       domain,
		Unmatched:           unmatched,
		StrongestMatches:    strongest,
	}
}

type facet int

const (
	facetTechnical facet = iota
	facetLeadership
	facetDomain
)

// facetLists pulls one coverage facet out of each result's summary.
func facetLists(f facet, results ...selection.CategoryResult) [][]string {
	lists := make([][]string, 0, len(results))
	for _, res := range results {
		if res.Summary == nil || res.Summary.Coverage == nil {
			continue
		}
		switch f {
		case facetTechnical:
			lists = append(lists, res.Summary.Coverage.TechnicalRequirementsCovered)
		case facetLeadership:
			lists = append(lists, res.Summary.Coverage.LeadershipRequirementsCovered)
		case facetDomain:
			lists = append(lists, res.Summary.Coverage.DomainRequirementsCovered)
		}
	}
	return lists
}

// unionFacets merges lists preserving first-seen order, deduplicating
// case-insensitively.
func unionFacets(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, item := range list {
			key := foldKey(item)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, item)
		}
	}
	return out
}

func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return append([]string(nil), items[:n]...)
}
