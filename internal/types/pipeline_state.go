// Package types provides type definitions for structured data used throughout the resume tailoring pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Pipeline stages in execution order. A stage name is recorded in
// CompletedStages exactly when its work product has been persisted.
const (
	StageInitialized              = "initialized"
	StageJobAnalysisComplete      = "job_analysis_complete"
	StageContentSelectionComplete = "content_selection_complete"
	StagePhase1Complete           = "phase1_complete"
	StageDraftComplete            = "draft_complete"
	StageValidationComplete       = "validation_complete"
	StagePhase2Complete           = "phase2_complete"
	StageStyleEditingComplete     = "style_editing_complete"
	StageQAComplete               = "qa_complete"
	StagePhase3Complete           = "phase3_complete"
	StageCompleted                = "completed"
)

// StageOrder lists every stage in pipeline order.
var StageOrder = []string{
	StageInitialized,
	StageJobAnalysisComplete,
	StageContentSelectionComplete,
	StagePhase1Complete,
	StageDraftComplete,
	StageValidationComplete,
	StagePhase2Complete,
	StageStyleEditingComplete,
	StageQAComplete,
	StagePhase3Complete,
	StageCompleted,
}

// Task names used as recorded-output keys in the state store.
const (
	TaskJobAnalyzer     = "job_analyzer"
	TaskContentSelector = "content_selector"
	TaskResumeDrafter   = "resume_drafter"
	TaskValidator       = "validator"
	TaskStyleEditor     = "voice_style_editor"
	TaskFinalQA         = "final_qa"
)

// TaskStages maps each task name to the stage its completion marks.
var TaskStages = map[string]string{
	TaskJobAnalyzer:     StageJobAnalysisComplete,
	TaskContentSelector: StageContentSelectionComplete,
	TaskResumeDrafter:   StageDraftComplete,
	TaskValidator:       StageValidationComplete,
	TaskStyleEditor:     StageStyleEditingComplete,
	TaskFinalQA:         StageQAComplete,
}

// StageIndex returns the position of a stage in StageOrder, or -1 for an
// unknown stage name.
func StageIndex(stage string) int {
	for i, s := range StageOrder {
		if s == stage {
			return i
		}
	}
	return -1
}

// StateError represents one recorded pipeline failure
type StateError struct {
	Stage     string    `json:"stage"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// WorkflowConfig represents the resolved workflow for a run: which template,
// sections, and tasks apply, and why.
type WorkflowConfig struct {
	Template          string         `json:"template"`
	Sections          []string       `json:"sections"`
	Agents            []string       `json:"agents"`
	SectionPriorities map[string]int `json:"section_priorities,omitempty"`
	Reasoning         string         `json:"reasoning,omitempty"`
}

// PipelineState represents the durable progress record for one tailoring run.
// Artifacts live in snapshot files under the job folder; the state document
// tracks stage progress and points at the newest snapshot per task.
type PipelineState struct {
	Key             string            `json:"key"`
	CompanyName     string            `json:"company_name"`
	JobTitle        string            `json:"job_title"`
	CurrentStage    string            `json:"current_stage"`
	CompletedStages []string          `json:"completed_stages"`
	TaskOutputs     map[string]string `json:"task_outputs"`
	WorkflowConfig  *WorkflowConfig   `json:"workflow_config,omitempty"`
	Errors          []StateError      `json:"errors,omitempty"`
	StartedAt       time.Time         `json:"started_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	PDFGenerated    bool              `json:"pdf_generated,omitempty"`
	PDFPath         string            `json:"pdf_path,omitempty"`
}

// NewPipelineState creates a fresh state record at the initialized stage.
func NewPipelineState(key, company, jobTitle string) *PipelineState {
	now := time.Now().UTC()
	return &PipelineState{
		Key:             key,
		CompanyName:     company,
		JobTitle:        jobTitle,
		CurrentStage:    StageInitialized,
		CompletedStages: []string{},
		TaskOutputs:     map[string]string{},
		StartedAt:       now,
		UpdatedAt:       now,
	}
}

// StageCompleted reports whether the stage has already been recorded complete.
func (s *PipelineState) StageCompleted(stage string) bool {
	for _, done := range s.CompletedStages {
		if done == stage {
			return true
		}
	}
	return false
}

// MarkStageComplete records a stage as done. The completed list stays
// deduplicated and the current stage only ever advances.
func (s *PipelineState) MarkStageComplete(stage string) {
	if !s.StageCompleted(stage) {
		s.CompletedStages = append(s.CompletedStages, stage)
	}
	if StageIndex(stage) > StageIndex(s.CurrentStage) {
		s.CurrentStage = stage
	}
	s.UpdatedAt = time.Now().UTC()
	if stage == StageCompleted && s.CompletedAt == nil {
		now := time.Now().UTC()
		s.CompletedAt = &now
	}
}

// AddError appends a timestamped failure to the error log.
func (s *PipelineState) AddError(stage, message string) {
	s.Errors = append(s.Errors, StateError{
		Stage:     stage,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
	s.UpdatedAt = time.Now().UTC()
}
