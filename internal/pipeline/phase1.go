package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/KeithKrenek/resume-optimization/internal/aggregate"
	"github.com/KeithKrenek/resume-optimization/internal/catalog"
	"github.com/KeithKrenek/resume-optimization/internal/db"
	"github.com/KeithKrenek/resume-optimization/internal/dedup"
	"github.com/KeithKrenek/resume-optimization/internal/ingestion"
	"github.com/KeithKrenek/resume-optimization/internal/llm"
	"github.com/KeithKrenek/resume-optimization/internal/normalize"
	"github.com/KeithKrenek/resume-optimization/internal/selection"
	"github.com/KeithKrenek/resume-optimization/internal/types"
	"github.com/KeithKrenek/resume-optimization/internal/workflow"
)

// runPhase1 executes job analysis and content selection. A nil state starts a
// fresh run; the job folder is allocated once the analysis has identified the
// company and role. On an existing state, completed steps are skipped and
// their stored outputs reloaded.
func (p *Pipeline) runPhase1(ctx context.Context, st *types.PipelineState) (*types.PipelineState, error) {
	if st != nil && p.store.CanSkip(st, types.StagePhase1Complete) {
		fmt.Printf("Phase 1/3: already complete, skipping.\n")
		return st, nil
	}

	analysis, st, err := p.analyzeJob(ctx, st)
	if err != nil {
		return st, err
	}

	if st.WorkflowConfig == nil {
		st.WorkflowConfig = workflow.Configure(analysis)
		if err := p.store.Save(st); err != nil {
			return st, err
		}
		p.emit(st, db.StepWorkflowConfig, db.CategoryAnalysis,
			fmt.Sprintf("Configured %s workflow with %d sections", st.WorkflowConfig.Template, len(st.WorkflowConfig.Sections)), st.WorkflowConfig)
		if runID := p.mirrorRun(ctx, st); runID != uuid.Nil {
			_ = p.mirror.SaveArtifact(ctx, runID, db.StepWorkflowConfig, db.CategoryAnalysis, st.WorkflowConfig)
		}
	}

	if err := p.selectContent(ctx, st, analysis); err != nil {
		return st, err
	}

	st.MarkStageComplete(types.StagePhase1Complete)
	if err := p.store.Save(st); err != nil {
		return st, err
	}
	fmt.Printf("Phase 1/3 complete.\n")
	return st, nil
}

// analyzeJob runs the job-analysis task, creating the run's job folder from
// the analyzed company and title on a fresh run.
func (p *Pipeline) analyzeJob(ctx context.Context, st *types.PipelineState) (*types.JobAnalysis, *types.PipelineState, error) {
	if st != nil && p.store.CanSkip(st, types.StageJobAnalysisComplete) {
		fmt.Printf("Step 1: job analysis already complete, loading stored output.\n")
		analysis, err := p.loadAnalysis(st.Key)
		return analysis, st, err
	}

	if p.opts.JobPath == "" {
		return nil, st, fmt.Errorf("no job description file configured for run %s", keyOrNew(st))
	}

	fmt.Printf("Step 1: Analyzing job description %s...\n", p.opts.JobPath)
	jobText, err := ingestion.ReadJobDescription(p.opts.JobPath)
	if err != nil {
		return nil, st, fmt.Errorf("job ingestion failed: %w", err)
	}

	raw, err := p.client.GenerateStructured(ctx, llm.TaskJobAnalysis, map[string]any{
		"job_description": jobText,
	})
	if err != nil {
		if st != nil {
			p.recordFailure(st, types.StageJobAnalysisComplete, err)
		}
		return nil, st, fmt.Errorf("job analysis failed: %w", err)
	}

	var analysis types.JobAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, st, fmt.Errorf("job analysis output did not parse: %w", err)
	}
	if err := analysis.Validate(); err != nil {
		return nil, st, fmt.Errorf("job analysis output invalid: %w", err)
	}

	if st == nil {
		st, err = p.store.NewRun(analysis.Company, analysis.JobTitle)
		if err != nil {
			return nil, nil, err
		}
		fmt.Printf("Created run %s\n", st.Key)
	}

	if err := p.store.RecordTaskOutput(st, types.TaskJobAnalyzer, raw, types.StageJobAnalysisComplete); err != nil {
		return nil, st, err
	}

	if p.opts.Verbose {
		p.printer.PrintJobAnalysis(&analysis)
	}
	p.emit(st, db.StepJobAnalysis, db.CategoryAnalysis,
		fmt.Sprintf("Analyzed job: %s at %s", analysis.JobTitle, analysis.Company), &analysis)

	if runID := p.mirrorRun(ctx, st); runID != uuid.Nil {
		_ = p.mirror.SaveTextArtifact(ctx, runID, db.StepJobPosting, db.CategoryAnalysis, jobText)
		_ = p.mirror.SaveArtifact(ctx, runID, db.StepJobAnalysis, db.CategoryAnalysis, &analysis)
	}

	return &analysis, st, nil
}

// selectContent fans the five category selections out in parallel, joins
// them, and persists the deduplicated, normalized selection as one step.
func (p *Pipeline) selectContent(ctx context.Context, st *types.PipelineState, analysis *types.JobAnalysis) error {
	if p.store.CanSkip(st, types.StageContentSelectionComplete) {
		fmt.Printf("Step 2: content selection already complete, skipping.\n")
		return nil
	}

	fmt.Printf("Step 2: Selecting content from catalog %s...\n", p.opts.CatalogPath)
	cat, err := catalog.Load(p.opts.CatalogPath)
	if err != nil {
		return err
	}

	runner := selection.NewRunner(p.client)
	results, err := runner.RunAll(ctx, selection.BuildTasks(analysis, cat))
	if err != nil {
		p.recordFailure(st, types.StageContentSelectionComplete, err)
		return fmt.Errorf("content selection failed: %w", err)
	}

	// Failed categories were replaced by empty placeholders; note each one
	// in the error log so the degradation is visible after the run.
	for _, res := range results {
		if res.Err != nil {
			st.AddError(types.StageContentSelectionComplete,
				fmt.Sprintf("selection category %s failed: %v", res.Category, res.Err))
		}
	}

	sel := aggregate.Merge(aggregate.MergeInput{
		Results:   results,
		Contact:   cat.Metadata.Contact,
		Education: cat.EducationList(),
		Analysis:  analysis,
	})
	dedup.New(dedup.DefaultThreshold).Deduplicate(sel)
	normalize.Selection(sel)

	if err := p.store.RecordTaskOutput(st, types.TaskContentSelector, sel, types.StageContentSelectionComplete); err != nil {
		return err
	}

	if p.opts.Verbose {
		p.printer.PrintContentSelection(sel)
	}
	p.emit(st, db.StepContentSelection, db.CategorySelection,
		fmt.Sprintf("Selected %d experiences and %d projects",
			len(sel.SelectedExperiences), len(sel.SelectedProjects)), sel)

	if runID := p.mirrorRun(ctx, st); runID != uuid.Nil {
		_ = p.mirror.SaveArtifact(ctx, runID, db.StepContentSelection, db.CategorySelection, sel)
	}
	return nil
}

func keyOrNew(st *types.PipelineState) string {
	if st == nil {
		return "(new)"
	}
	return st.Key
}
