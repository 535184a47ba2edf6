// Package llm - prompts.go assembles the structured-generation prompt for each task kind.
package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// promptSpec defines one task's prompt: who the model is, the exact JSON
// shape it must return, and the task-specific rules.
type promptSpec struct {
	role        string
	outputShape string
	rules       []string
}

// fabricationRule appears in every task that writes resume content.
const fabricationRule = "Never invent employers, titles, dates, metrics, or outcomes. Use only facts present in the input data."

var taskPrompts = map[TaskKind]promptSpec{
	TaskJobAnalysis: {
		role: `You are an expert job posting analyst. Extract structured requirements and keywords from a job description so downstream agents can tailor a resume to it.`,
		outputShape: `{
  "company": "string",
  "job_title": "string",
  "role_type": "one of: individual_contributor, technical_lead, engineering_manager, senior_manager, director, executive",
  "must_have_requirements": ["string"],
  "nice_to_have_requirements": ["string"],
  "technical_keywords": ["string"],
  "domain_keywords": ["string"],
  "leadership_keywords": ["string"],
  "company_values": ["string"],
  "role_focus": ["string"],
  "years_experience_required": "string",
  "team_size_mentioned": "string",
  "success_metrics": ["string"],
  "recommended_sections": ["string"],
  "recommended_agents": ["string"],
  "section_priorities": {"section_name": 1},
  "workflow_reasoning": "string",
  "recommended_template": "string"
}`,
		rules: []string{
			"Copy requirement and keyword phrases from the posting verbatim where possible.",
			"Classify role_type from the responsibilities, not the title alone.",
			"Keep each keyword list focused; do not pad with near-duplicates.",
		},
	},
	TaskExperienceSelection: {
		role: `You are a resume content selector focused on work experience. Given a job analysis and a catalog of experience entries, select the entries and achievement bullets most relevant to the job.`,
		outputShape: `{
  "selected_experiences": [
    {
      "source_id": "string",
      "relevance_score": 0.0,
      "match_reasons": ["string"],
      "company": "string",
      "title": "string",
      "dates": "string",
      "location": "string",
      "core_description": "string",
      "key_achievements": ["string"],
      "quantified_outcomes": {},
      "tech_stack": ["string"],
      "methods": ["string"],
      "domain_tags": ["string"],
      "persona_variant_selected": "string",
      "persona_achievements": ["string"]
    }
  ],
  "selection_notes": "string",
  "selection_summary": {
    "total_selected": 0,
    "average_relevance": 0.0,
    "coverage": {
      "technical_requirements_covered": ["string"],
      "leadership_requirements_covered": ["string"],
      "domain_requirements_covered": ["string"]
    }
  }
}`,
		rules: []string{
			"Every source_id must be copied exactly from the catalog.",
			"Copy achievement text verbatim; never reword or merge bullets.",
			fabricationRule,
		},
	},
	TaskProjectSelection: {
		role: `You are a resume content selector focused on projects. Given a job analysis and a catalog of project entries, select the projects most relevant to the job.`,
		outputShape: `{
  "selected_projects": [
    {
      "source_id": "string",
      "relevance_score": 0.0,
      "match_reasons": ["string"],
      "title": "string",
      "org": "string",
      "dates": "string",
      "core_description": "string",
      "key_achievements": ["string"],
      "structured_response": {"challenge": "string", "solution": "string", "impact": "string"},
      "tech_stack": ["string"],
      "domain_tags": ["string"],
      "persona_variant_selected": "string",
      "persona_achievements": ["string"]
    }
  ],
  "selection_notes": "string",
  "selection_summary": {
    "total_selected": 0,
    "average_relevance": 0.0,
    "coverage": {
      "technical_requirements_covered": ["string"],
      "leadership_requirements_covered": ["string"],
      "domain_requirements_covered": ["string"]
    }
  }
}`,
		rules: []string{
			"Every source_id must be copied exactly from the catalog.",
			"Copy project text verbatim; never reword or merge bullets.",
			fabricationRule,
		},
	},
	TaskSkillsSelection: {
		role: `You are a resume content selector focused on technical skills. Given a job analysis and a skills catalog, select and group the skills most relevant to the job.`,
		outputShape: `{
  "selected_skills": {"category_name": ["skill"]},
  "selection_notes": "string",
  "selection_summary": {
    "total_selected": 0,
    "average_relevance": 0.0,
    "coverage": {
      "technical_requirements_covered": ["string"],
      "leadership_requirements_covered": ["string"],
      "domain_requirements_covered": ["string"]
    }
  }
}`,
		rules: []string{
			"Only list skills that appear in the catalog.",
			"Order categories from most to least relevant for the job.",
		},
	},
	TaskPublicationSelection: {
		role: `You are a resume content selector focused on publications. Given a job analysis and a publications catalog, select the publications that strengthen this application.`,
		outputShape: `{
  "selected_publications": [
    {
      "source_id": "string",
      "relevance_score": 0.0,
      "title": "string",
      "authors": "string",
      "journal": "string",
      "year": "string",
      "url": "string"
    }
  ],
  "selection_notes": "string",
  "selection_summary": {
    "total_selected": 0,
    "average_relevance": 0.0,
    "coverage": {
      "technical_requirements_covered": ["string"],
      "leadership_requirements_covered": ["string"],
      "domain_requirements_covered": ["string"]
    }
  }
}`,
		rules: []string{
			"Every source_id must be copied exactly from the catalog.",
			"Copy citation details verbatim from the catalog.",
		},
	},
	TaskWorkSampleSelection: {
		role: `You are a resume content selector focused on work samples and portfolio links. Given a job analysis and a work sample catalog, select the samples that best demonstrate fit.`,
		outputShape: `{
  "selected_work_samples": [
    {
      "source_id": "string",
      "relevance_score": 0.0,
      "title": "string",
      "description": "string",
      "url": "string",
      "tech": ["string"]
    }
  ],
  "selection_notes": "string",
  "selection_summary": {
    "total_selected": 0,
    "average_relevance": 0.0,
    "coverage": {
      "technical_requirements_covered": ["string"],
      "leadership_requirements_covered": ["string"],
      "domain_requirements_covered": ["string"]
    }
  }
}`,
		rules: []string{
			"Every source_id must be copied exactly from the catalog.",
			fabricationRule,
		},
	},
	TaskResumeDraft: {
		role: `You are an expert resume writer. Assemble the selected content into a complete, well-ordered resume draft tailored to the job analysis.`,
		outputShape: `{
  "contact": {"name": "string", "email": "string"},
  "professional_summary": "string",
  "technical_expertise": {"category_name": ["skill"]},
  "experience": [
    {
      "source_id": "string",
      "company": "string",
      "title": "string",
      "dates": "string",
      "location": "string",
      "achievements": [{"text": "string", "source_id": "string"}]
    }
  ],
  "bulleted_projects": [
    {"source_id": "string", "name": "string", "dates": "string", "bullets": ["string"]}
  ],
  "work_samples": [{"name": "string", "description": "string", "url": "string", "tech": ["string"]}],
  "education": [{"degree": "string", "institution": "string", "location": "string", "graduation": "string", "details": "string"}],
  "publications": [{"title": "string", "authors": "string", "journal": "string", "year": "string", "url": "string"}],
  "awards_recognition": ["string"],
  "citations": {"location": "source_id"}
}`,
		rules: []string{
			"Use only content present in the selected content; the professional summary may paraphrase it.",
			"Carry source_id through to every experience entry, achievement bullet, and project.",
			"Order experience and projects by relevance to the job, most relevant first.",
			fabricationRule,
		},
	},
	TaskDraftValidation: {
		role: `You are a fabrication auditor. Compare a resume draft against the selected source content and flag every claim that is not supported by the sources.`,
		outputShape: `{
  "is_valid": true,
  "issues": [
    {
      "severity": "one of: critical, warning, info",
      "type": "one of: missing_source_id, invalid_source_id, fabrication, altered_fact",
      "location": "string",
      "message": "string",
      "detail": "string"
    }
  ],
  "summary": "string"
}`,
		rules: []string{
			"Flag altered metrics, dates, titles, and employers as critical.",
			"Flag rewording that preserves meaning as info, not critical.",
			"Set is_valid to false when any critical issue exists.",
		},
	},
	TaskStyleEdit: {
		role: `You are a voice and style editor for resumes. Polish the draft's wording for clarity, active voice, and consistent tense while preserving every factual claim exactly.`,
		outputShape: `{
  "contact": {"name": "string", "email": "string"},
  "professional_summary": "string",
  "technical_expertise": {"category_name": ["skill"]},
  "experience": [
    {
      "source_id": "string",
      "company": "string",
      "title": "string",
      "dates": "string",
      "location": "string",
      "achievements": [{"text": "string", "source_id": "string"}]
    }
  ],
  "bulleted_projects": [
    {"source_id": "string", "name": "string", "dates": "string", "bullets": ["string"]}
  ],
  "work_samples": [{"name": "string", "description": "string", "url": "string", "tech": ["string"]}],
  "education": [{"degree": "string", "institution": "string", "location": "string", "graduation": "string", "details": "string"}],
  "publications": [{"title": "string", "authors": "string", "journal": "string", "year": "string", "url": "string"}],
  "awards_recognition": ["string"],
  "citations": {"location": "source_id"}
}`,
		rules: []string{
			"Return the complete draft with the same structure and the same entries in the same order.",
			"Never change numbers, dates, names, titles, or source_id values.",
			"Edit wording only; do not add or remove achievements.",
		},
	},
	TaskFinalQA: {
		role: `You are a resume quality reviewer. Score the final draft against the job analysis and report concrete, actionable issues.`,
		outputShape: `{
  "overall_status": "one of: pass, pass_with_warnings, fail",
  "overall_score": 0,
  "ready_to_submit": true,
  "issues": [
    {
      "severity": "one of: critical, warning, info",
      "category": "string",
      "location": "string",
      "issue": "string",
      "recommendation": "string"
    }
  ],
  "section_scores": {"section_name": 0},
  "strengths": ["string"],
  "areas_for_improvement": ["string"],
  "ats_analysis": {"keyword_coverage": "string"},
  "statistics": {
    "experience_entries": 0,
    "achievement_bullets": 0,
    "project_entries": 0,
    "education_entries": 0,
    "publication_entries": 0,
    "summary_length": 0
  },
  "final_recommendation": "string"
}`,
		rules: []string{
			"Score overall_score and each section from 0 to 100.",
			"Set overall_status to fail only for issues that would disqualify the application.",
			"Every issue needs a concrete recommendation.",
		},
	},
}

// BuildTaskPrompt constructs the full prompt for a task: role preamble, the
// required output shape, task rules, and the marshaled input data.
func BuildTaskPrompt(task TaskKind, input any) (string, error) {
	spec, ok := taskPrompts[task]
	if !ok {
		return "", fmt.Errorf("no prompt defined for task %q", task)
	}

	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal input for task %q: %w", task, err)
	}

	var sb strings.Builder
	sb.WriteString(spec.role)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(spec.outputShape)
	sb.WriteString("\n\n")

	sb.WriteString("IMPORTANT:\n")
	for _, rule := range spec.rules {
		sb.WriteString("- ")
		sb.WriteString(rule)
		sb.WriteString("\n")
	}
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input data:\n\"\"\"\n")
	sb.Write(data)
	sb.WriteString("\n\"\"\"\n")

	return sb.String(), nil
}

// KnownTask reports whether a prompt is defined for the task kind.
func KnownTask(task TaskKind) bool {
	_, ok := taskPrompts[task]
	return ok
}
