package selection

import (
	"github.com/KeithKrenek/resume-optimization/internal/llm"
	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// Task is one category's independent selection call: the generation task
// kind plus the slice of the catalog it selects from.
type Task struct {
	Category Category
	Kind     llm.TaskKind
	Input    map[string]any
}

// BuildTasks creates the five category tasks from the job analysis and the
// source catalog. Every category runs even when its catalog section is
// empty; the selector then returns an empty selection.
func BuildTasks(analysis *types.JobAnalysis, catalog *types.SourceCatalog) []Task {
	return []Task{
		{
			Category: CategoryExperiences,
			Kind:     llm.TaskExperienceSelection,
			Input: map[string]any{
				"job_analysis": analysis,
				"experiences":  catalog.Experiences,
			},
		},
		{
			Category: CategoryProjects,
			Kind:     llm.TaskProjectSelection,
			Input: map[string]any{
				"job_analysis": analysis,
				"projects":     catalog.Projects,
			},
		},
		{
			Category: CategorySkills,
			Kind:     llm.TaskSkillsSelection,
			Input: map[string]any{
				"job_analysis": analysis,
				"skills":       catalog.Skills,
			},
		},
		{
			Category: CategoryPublications,
			Kind:     llm.TaskPublicationSelection,
			Input: map[string]any{
				"job_analysis": analysis,
				"publications": catalog.Publications,
			},
		},
		{
			Category: CategoryWorkSamples,
			Kind:     llm.TaskWorkSampleSelection,
			Input: map[string]any{
				"job_analysis": analysis,
				"work_samples": catalog.WorkSamples,
			},
		},
	}
}
