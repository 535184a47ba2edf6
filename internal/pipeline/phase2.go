package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/KeithKrenek/resume-optimization/internal/db"
	"github.com/KeithKrenek/resume-optimization/internal/llm"
	"github.com/KeithKrenek/resume-optimization/internal/types"
	"github.com/KeithKrenek/resume-optimization/internal/validation"
)

// runPhase2 executes the draft/validate loop. Each attempt drafts the resume,
// pre-checks source ids locally, and only then spends a capability call on
// the fabrication audit. A critical finding regenerates the draft up to the
// retry bound; exhaustion records a warning and proceeds rather than failing
// the run.
func (p *Pipeline) runPhase2(ctx context.Context, st *types.PipelineState) error {
	if p.store.CanSkip(st, types.StagePhase2Complete) {
		fmt.Printf("Phase 2/3: already complete, skipping.\n")
		return nil
	}

	analysis, err := p.loadAnalysis(st.Key)
	if err != nil {
		return fmt.Errorf("phase 2 needs a completed job analysis: %w", err)
	}
	sel, err := p.loadSelection(st.Key)
	if err != nil {
		return fmt.Errorf("phase 2 needs a completed content selection: %w", err)
	}

	maxRetries := p.opts.MaxValidationRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	for attempt := 0; attempt <= maxRetries; attempt++ {
		draft, err := p.draftResume(ctx, st, analysis, sel, attempt)
		if err != nil {
			return err
		}

		result, err := p.validateDraft(ctx, st, draft, sel, attempt)
		if err != nil {
			return err
		}

		if result.IsValid && !result.HasCritical() {
			fmt.Printf("Step 4: draft validated cleanly on attempt %d.\n", attempt+1)
			break
		}

		st.AddError(types.StageValidationComplete,
			fmt.Sprintf("validation attempt %d found %d critical issues",
				attempt+1, result.CountBySeverity(types.SeverityCritical)))

		if attempt == maxRetries {
			fmt.Printf("Warning: validation still failing after %d attempts; proceeding with flagged draft.\n", attempt+1)
			st.AddError(types.StageValidationComplete,
				fmt.Sprintf("proceeding with unresolved validation issues after %d attempts", attempt+1))
			break
		}
		fmt.Printf("Step 4: validation found critical issues, regenerating draft (attempt %d of %d)...\n",
			attempt+2, maxRetries+1)
	}

	st.MarkStageComplete(types.StagePhase2Complete)
	if err := p.store.Save(st); err != nil {
		return err
	}
	fmt.Printf("Phase 2/3 complete.\n")
	return nil
}

// draftResume produces the resume draft for one attempt. Only the first
// attempt may reuse a stored draft; retries always regenerate.
func (p *Pipeline) draftResume(ctx context.Context, st *types.PipelineState, analysis *types.JobAnalysis, sel *types.ContentSelection, attempt int) (*types.ResumeDraft, error) {
	if attempt == 0 && p.store.CanSkip(st, types.StageDraftComplete) {
		fmt.Printf("Step 3: draft already complete, loading stored output.\n")
		return p.loadDraft(st.Key, types.TaskResumeDrafter)
	}

	fmt.Printf("Step 3: Drafting resume...\n")
	raw, err := p.client.GenerateStructured(ctx, llm.TaskResumeDraft, map[string]any{
		"job_analysis":      analysis,
		"content_selection": sel,
		"workflow_config":   st.WorkflowConfig,
	})
	if err != nil {
		p.recordFailure(st, types.StageDraftComplete, err)
		return nil, fmt.Errorf("resume drafting failed: %w", err)
	}

	var draft types.ResumeDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("resume draft output did not parse: %w", err)
	}

	if err := p.store.RecordTaskOutput(st, types.TaskResumeDrafter, raw, types.StageDraftComplete); err != nil {
		return nil, err
	}
	p.emit(st, db.StepResumeDraft, db.CategoryDrafting,
		fmt.Sprintf("Drafted resume with %d experience entries and %d achievements",
			len(draft.Experience), draft.TotalAchievements()), &draft)

	if runID := p.mirrorRun(ctx, st); runID != uuid.Nil {
		_ = p.mirror.SaveArtifact(ctx, runID, db.StepResumeDraft, db.CategoryDrafting, &draft)
	}
	return &draft, nil
}

// validateDraft checks one draft attempt. Structural source-id problems
// short-circuit the attempt locally; otherwise the fabrication audit runs as
// a capability call. The recorded validator output is whichever result
// decided the attempt.
func (p *Pipeline) validateDraft(ctx context.Context, st *types.PipelineState, draft *types.ResumeDraft, sel *types.ContentSelection, attempt int) (*types.ValidationResult, error) {
	structural := validation.Structural(draft, sel)
	if validation.HasCritical(structural) {
		result := &types.ValidationResult{
			IsValid: false,
			Issues:  structural,
			Summary: fmt.Sprintf("Structural pre-check failed with %d source-id issues", len(structural)),
		}
		return result, p.recordValidation(ctx, st, result, attempt)
	}

	fmt.Printf("Step 4: Auditing draft against selected sources...\n")
	raw, err := p.client.GenerateStructured(ctx, llm.TaskDraftValidation, map[string]any{
		"resume_draft":      draft,
		"content_selection": sel,
	})
	if err != nil {
		p.recordFailure(st, types.StageValidationComplete, err)
		return nil, fmt.Errorf("draft validation failed: %w", err)
	}

	var result types.ValidationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("validation output did not parse: %w", err)
	}
	result.Issues = append(structural, result.Issues...)

	return &result, p.recordValidation(ctx, st, &result, attempt)
}

// recordValidation persists a validation result and emits its progress event.
func (p *Pipeline) recordValidation(ctx context.Context, st *types.PipelineState, result *types.ValidationResult, attempt int) error {
	if err := p.store.RecordTaskOutput(st, types.TaskValidator, result, types.StageValidationComplete); err != nil {
		return err
	}

	if p.opts.Verbose {
		p.printer.PrintValidationResult(result)
	}
	p.emit(st, db.StepValidationResult, db.CategoryValidation,
		fmt.Sprintf("Validation attempt %d: %d issues", attempt+1, len(result.Issues)), result)

	if runID := p.mirrorRun(ctx, st); runID != uuid.Nil {
		_ = p.mirror.SaveArtifact(ctx, runID, db.StepValidationResult, db.CategoryValidation, result)
	}
	return nil
}
