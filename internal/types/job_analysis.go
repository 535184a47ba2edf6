// Package types provides type definitions for structured data used throughout the resume tailoring pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Role type values recognised by the workflow configurator.
const (
	RoleIndividualContributor = "individual_contributor"
	RoleTechnicalLead         = "technical_lead"
	RoleEngineeringManager    = "engineering_manager"
	RoleSeniorManager         = "senior_manager"
	RoleDirector              = "director"
	RoleExecutive             = "executive"
)

// JobAnalysis represents the structured breakdown of a job posting
type JobAnalysis struct {
	Company                string         `json:"company" validate:"required"`
	JobTitle               string         `json:"job_title" validate:"required"`
	RoleType               string         `json:"role_type,omitempty" validate:"omitempty,oneof=individual_contributor technical_lead engineering_manager senior_manager director executive"`
	MustHaveRequirements   []string       `json:"must_have_requirements"`
	NiceToHaveRequirements []string       `json:"nice_to_have_requirements,omitempty"`
	TechnicalKeywords      []string       `json:"technical_keywords"`
	DomainKeywords         []string       `json:"domain_keywords,omitempty"`
	LeadershipKeywords     []string       `json:"leadership_keywords,omitempty"`
	CompanyValues          []string       `json:"company_values,omitempty"`
	RoleFocus              []string       `json:"role_focus,omitempty"`
	YearsExperience        string         `json:"years_experience_required,omitempty"`
	TeamSizeMentioned      string         `json:"team_size_mentioned,omitempty"`
	SuccessMetrics         []string       `json:"success_metrics,omitempty"`
	RecommendedSections    []string       `json:"recommended_sections,omitempty"`
	RecommendedAgents      []string       `json:"recommended_agents,omitempty"`
	SectionPriorities      map[string]int `json:"section_priorities,omitempty"`
	WorkflowReasoning      string         `json:"workflow_reasoning,omitempty"`
	RecommendedTemplate    string         `json:"recommended_template,omitempty"`
	RawExcerpt             string         `json:"raw_excerpt,omitempty"`
}

// Validate validates the JobAnalysis using the validator.
func (a *JobAnalysis) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}

// RequirementSet returns the deduplicated union of must-have requirements and
// technical, domain, and leadership keywords, lower-cased for comparison.
// This is the denominator for coverage analysis.
func (a *JobAnalysis) RequirementSet() []string {
	seen := make(map[string]bool)
	var out []string
	for _, group := range [][]string{a.MustHaveRequirements, a.TechnicalKeywords, a.DomainKeywords, a.LeadershipKeywords} {
		for _, req := range group {
			key := strings.ToLower(strings.TrimSpace(req))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, req)
		}
	}
	return out
}
