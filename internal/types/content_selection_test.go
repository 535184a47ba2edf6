// Package types provides type definitions for structured data used throughout the resume tailoring pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentSelection_SourceIDSet(t *testing.T) {
	sel := &ContentSelection{
		SelectedExperiences: []SelectedExperience{
			{SourceID: "exp_001"},
			{SourceID: "exp_002"},
			{SourceID: ""},
		},
		SelectedProjects: []SelectedProject{
			{SourceID: "proj_001"},
		},
		SelectedPublications: []SelectedPublication{
			{SourceID: "pub_001"},
		},
	}

	ids := sel.SourceIDSet()
	assert.True(t, ids["exp_001"])
	assert.True(t, ids["exp_002"])
	assert.True(t, ids["proj_001"])
	// Publications are not citation targets and blanks are skipped.
	assert.False(t, ids["pub_001"])
	assert.False(t, ids[""])
	assert.Len(t, ids, 3)
}

func TestJobAnalysis_RequirementSet(t *testing.T) {
	analysis := &JobAnalysis{
		MustHaveRequirements: []string{"Python", "Distributed systems"},
		TechnicalKeywords:    []string{"python", "Kubernetes", " "},
		DomainKeywords:       []string{"FinTech"},
		LeadershipKeywords:   []string{"Mentoring", "mentoring"},
	}

	reqs := analysis.RequirementSet()
	// Case-insensitive dedup keeps the first spelling seen.
	assert.Equal(t, []string{"Python", "Distributed systems", "Kubernetes", "FinTech", "Mentoring"}, reqs)
}

func TestJobAnalysis_Validate(t *testing.T) {
	analysis := &JobAnalysis{Company: "Acme", JobTitle: "Engineer", RoleType: RoleTechnicalLead}
	assert.NoError(t, analysis.Validate())

	analysis.RoleType = "wizard"
	assert.Error(t, analysis.Validate())

	analysis.RoleType = ""
	assert.NoError(t, analysis.Validate(), "role type is optional")

	analysis.Company = ""
	assert.Error(t, analysis.Validate())
}

func TestCatalog_EducationListStableOrder(t *testing.T) {
	catalog := &SourceCatalog{
		Education: map[string]map[string]any{
			"edu_002": {"degree": "MS"},
			"edu_001": {"degree": "BS"},
		},
	}

	list := catalog.EducationList()
	assert.Equal(t, "BS", list[0]["degree"])
	assert.Equal(t, "MS", list[1]["degree"])
}
