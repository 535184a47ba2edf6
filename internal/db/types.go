package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a pipeline run record mirrored from the file-based state.
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Company     string     `json:"company"`
	RoleTitle   string     `json:"role_title"`
	StateKey    string     `json:"state_key"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ArtifactStep constants for known artifact types
const (
	StepJobPosting       = "job_posting"
	StepJobAnalysis      = "job_analysis"
	StepWorkflowConfig   = "workflow_config"
	StepContentSelection = "content_selection"
	StepResumeDraft      = "resume_draft"
	StepValidationResult = "validation_result"
	StepEditedDraft      = "edited_draft"
	StepQAReport         = "qa_report"
	StepResumeHTML       = "resume_html"
)

// Artifact category constants
const (
	CategoryAnalysis   = "analysis"
	CategorySelection  = "selection"
	CategoryDrafting   = "drafting"
	CategoryValidation = "validation"
	CategoryReview     = "review"
	CategoryRendering  = "rendering"
)
