// Package workflow resolves which resume template, sections, and tasks a run
// uses. Templates are a fixed closed set selected by role type; the job
// analysis can recommend additions but cannot invent section names.
package workflow

import (
	"go.uber.org/zap"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// Resume section names the renderer understands.
const (
	SectionContact            = "contact"
	SectionSummary            = "professional_summary"
	SectionTechnicalExpertise = "technical_expertise"
	SectionExperience         = "experience"
	SectionBulletedProjects   = "bulleted_projects"
	SectionWorkSamples        = "work_samples"
	SectionEducation          = "education"
	SectionPublications       = "publications"
	SectionAwards             = "awards_recognition"
)

var knownSections = map[string]bool{
	SectionContact:            true,
	SectionSummary:            true,
	SectionTechnicalExpertise: true,
	SectionExperience:         true,
	SectionBulletedProjects:   true,
	SectionWorkSamples:        true,
	SectionEducation:          true,
	SectionPublications:       true,
	SectionAwards:             true,
}

// template is one fixed workflow shape. Section priorities rank sections for
// the drafter when space is tight; higher is more important.
type template struct {
	description string
	sections    []string
	priorities  map[string]int
}

var defaultAgents = []string{
	types.TaskJobAnalyzer,
	types.TaskContentSelector,
	types.TaskResumeDrafter,
	types.TaskValidator,
	types.TaskStyleEditor,
	types.TaskFinalQA,
}

var defaultSections = []string{
	SectionContact,
	SectionSummary,
	SectionTechnicalExpertise,
	SectionExperience,
	SectionBulletedProjects,
	SectionEducation,
}

var templates = map[string]template{
	types.RoleIndividualContributor: {
		description: "Hands-on engineering emphasis: technical depth first, projects and work samples as evidence.",
		sections:    defaultSections,
		priorities: map[string]int{
			SectionTechnicalExpertise: 9,
			SectionExperience:         10,
			SectionBulletedProjects:   7,
		},
	},
	types.RoleTechnicalLead: {
		description: "Technical leadership emphasis: delivery ownership and mentoring alongside hands-on work.",
		sections: []string{
			SectionContact,
			SectionSummary,
			SectionTechnicalExpertise,
			SectionExperience,
			SectionBulletedProjects,
			SectionWorkSamples,
			SectionEducation,
		},
		priorities: map[string]int{
			SectionExperience:         10,
			SectionTechnicalExpertise: 8,
			SectionBulletedProjects:   8,
		},
	},
	types.RoleEngineeringManager: {
		description: "People-management emphasis: team outcomes and delivery over individual technical detail.",
		sections: []string{
			SectionContact,
			SectionSummary,
			SectionExperience,
			SectionTechnicalExpertise,
			SectionEducation,
			SectionAwards,
		},
		priorities: map[string]int{
			SectionExperience:         10,
			SectionSummary:            8,
			SectionTechnicalExpertise: 6,
		},
	},
	types.RoleSeniorManager: {
		description: "Organizational leadership emphasis: scope, strategy, and measurable business outcomes.",
		sections: []string{
			SectionContact,
			SectionSummary,
			SectionExperience,
			SectionEducation,
			SectionAwards,
		},
		priorities: map[string]int{
			SectionSummary:    9,
			SectionExperience: 10,
		},
	},
	types.RoleDirector: {
		description: "Executive-track emphasis: portfolio ownership, organizational growth, cross-functional impact.",
		sections: []string{
			SectionContact,
			SectionSummary,
			SectionExperience,
			SectionEducation,
			SectionAwards,
			SectionPublications,
		},
		priorities: map[string]int{
			SectionSummary:    10,
			SectionExperience: 10,
		},
	},
	types.RoleExecutive: {
		description: "Executive emphasis: vision, P&L scope, and public record over implementation detail.",
		sections: []string{
			SectionContact,
			SectionSummary,
			SectionExperience,
			SectionAwards,
			SectionPublications,
			SectionEducation,
		},
		priorities: map[string]int{
			SectionSummary:    10,
			SectionExperience: 9,
		},
	},
}

// Configure resolves the workflow for a run. With no analysis it falls back
// to the individual-contributor defaults; otherwise the analysis picks the
// template and its recommendations are merged on top.
func Configure(analysis *types.JobAnalysis) *types.WorkflowConfig {
	if analysis == nil {
		return &types.WorkflowConfig{
			Template:          types.RoleIndividualContributor,
			Sections:          append([]string(nil), defaultSections...),
			Agents:            append([]string(nil), defaultAgents...),
			SectionPriorities: map[string]int{},
			Reasoning:         "Using default configuration for individual contributor role",
		}
	}

	name := analysis.RecommendedTemplate
	if _, ok := templates[name]; !ok {
		if name != "" {
			zap.L().Warn("unknown recommended template, selecting by role type",
				zap.String("template", name))
		}
		name = templateForRole(analysis.RoleType)
	}
	tpl := templates[name]

	cfg := &types.WorkflowConfig{
		Template:          name,
		Sections:          mergeSections(tpl.sections, analysis.RecommendedSections),
		Agents:            append([]string(nil), defaultAgents...),
		SectionPriorities: tpl.priorities,
		Reasoning:         analysis.WorkflowReasoning,
	}
	if len(analysis.SectionPriorities) > 0 {
		cfg.SectionPriorities = analysis.SectionPriorities
	}
	if cfg.Reasoning == "" {
		cfg.Reasoning = tpl.description
	}
	return cfg
}

// templateForRole maps a role type to its template, defaulting to the
// individual-contributor shape for unknown roles.
func templateForRole(roleType string) string {
	if _, ok := templates[roleType]; ok {
		return roleType
	}
	return types.RoleIndividualContributor
}

// mergeSections appends recommended sections after the template's own,
// dropping duplicates and names outside the fixed section set.
func mergeSections(base, recommended []string) []string {
	seen := make(map[string]bool, len(base))
	out := make([]string, 0, len(base)+len(recommended))
	for _, group := range [][]string{base, recommended} {
		for _, section := range group {
			if seen[section] {
				continue
			}
			if !knownSections[section] {
				zap.L().Warn("dropping unknown resume section", zap.String("section", section))
				continue
			}
			seen[section] = true
			out = append(out, section)
		}
	}
	return out
}
