package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KeithKrenek/resume-optimization/internal/db"
	"github.com/KeithKrenek/resume-optimization/internal/llm"
	"github.com/KeithKrenek/resume-optimization/internal/rendering"
	"github.com/KeithKrenek/resume-optimization/internal/types"
	"github.com/KeithKrenek/resume-optimization/internal/validation"
)

// runPhase3 polishes and reviews the validated draft: an optional style edit
// guarded against factual drift, then the QA loop, then the optional PDF
// artifact. Like validation, QA exhaustion degrades to a logged warning
// instead of failing a run that already has a complete draft.
func (p *Pipeline) runPhase3(ctx context.Context, st *types.PipelineState) error {
	if p.store.CanSkip(st, types.StagePhase3Complete) {
		fmt.Printf("Phase 3/3: already complete, skipping.\n")
		return p.renderArtifacts(ctx, st)
	}

	analysis, err := p.loadAnalysis(st.Key)
	if err != nil {
		return fmt.Errorf("phase 3 needs a completed job analysis: %w", err)
	}
	draft, err := p.loadDraft(st.Key, types.TaskResumeDrafter)
	if err != nil {
		return fmt.Errorf("phase 3 needs a completed draft: %w", err)
	}

	edited, err := p.styleEdit(ctx, st, draft, analysis)
	if err != nil {
		return err
	}

	maxRetries := p.opts.MaxQARetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	for attempt := 0; attempt <= maxRetries; attempt++ {
		report, err := p.reviewDraft(ctx, st, edited, analysis, attempt)
		if err != nil {
			return err
		}
		if report == nil {
			// The review task itself failed; the draft is still usable.
			break
		}

		if report.Passed() {
			fmt.Printf("Step 6: quality review passed (%s, score %d).\n",
				report.OverallStatus, report.OverallScore)
			break
		}

		st.AddError(types.StageQAComplete,
			fmt.Sprintf("quality review attempt %d failed with %d critical issues",
				attempt+1, len(report.CriticalIssues())))

		if len(report.CriticalIssues()) > 0 && attempt < maxRetries {
			fmt.Printf("Step 6: review failed, re-editing draft (attempt %d of %d)...\n",
				attempt+2, maxRetries+1)
			edited, err = p.styleEditOnce(ctx, st, edited, analysis)
			if err != nil {
				return err
			}
			continue
		}

		fmt.Printf("Warning: quality review still failing after %d attempts; accepting draft as-is.\n", attempt+1)
		break
	}

	st.MarkStageComplete(types.StagePhase3Complete)
	if err := p.store.Save(st); err != nil {
		return err
	}
	fmt.Printf("Phase 3/3 complete.\n")

	return p.renderArtifacts(ctx, st)
}

// styleEdit applies the skip-checked style-edit step, honoring the skip flag.
func (p *Pipeline) styleEdit(ctx context.Context, st *types.PipelineState, draft *types.ResumeDraft, analysis *types.JobAnalysis) (*types.ResumeDraft, error) {
	if p.opts.SkipStyleEdit {
		fmt.Printf("Step 5: style editing skipped by flag.\n")
		return draft, nil
	}
	if p.store.CanSkip(st, types.StageStyleEditingComplete) {
		fmt.Printf("Step 5: style editing already complete, loading stored output.\n")
		return p.loadDraft(st.Key, types.TaskStyleEditor)
	}
	return p.styleEditOnce(ctx, st, draft, analysis)
}

// styleEditOnce runs one style-edit call with the fact guard. An edit that
// changes any factual field is reverted wholesale; wording improvements are
// never worth a changed date or source id.
func (p *Pipeline) styleEditOnce(ctx context.Context, st *types.PipelineState, draft *types.ResumeDraft, analysis *types.JobAnalysis) (*types.ResumeDraft, error) {
	fmt.Printf("Step 5: Editing voice and style...\n")
	raw, err := p.client.GenerateStructured(ctx, llm.TaskStyleEdit, map[string]any{
		"resume_draft": draft,
		"job_analysis": analysis,
	})
	if err != nil {
		p.recordFailure(st, types.StageStyleEditingComplete, err)
		return nil, fmt.Errorf("style editing failed: %w", err)
	}

	var edited types.ResumeDraft
	if err := json.Unmarshal(raw, &edited); err != nil {
		return nil, fmt.Errorf("style edit output did not parse: %w", err)
	}

	result := &edited
	if ok, issues := validation.VerifyFactsPreserved(draft, &edited); !ok {
		p.logger.Warn("style edit altered facts, reverting to pre-edit draft",
			zap.String("key", st.Key),
			zap.Strings("issues", issues))
		st.AddError(types.StageStyleEditingComplete,
			fmt.Sprintf("style edit reverted: %d factual changes detected", len(issues)))
		result = draft
	}

	if err := p.store.RecordTaskOutput(st, types.TaskStyleEditor, result, types.StageStyleEditingComplete); err != nil {
		return nil, err
	}
	p.emit(st, db.StepEditedDraft, db.CategoryReview, "Applied voice and style edits", result)

	if runID := p.mirrorRun(ctx, st); runID != uuid.Nil {
		_ = p.mirror.SaveArtifact(ctx, runID, db.StepEditedDraft, db.CategoryReview, result)
	}
	return result, nil
}

// reviewDraft runs the final quality review for one attempt, merging the
// local completeness checks into the reviewer's report. A failed review call
// is logged and returns a nil report.
func (p *Pipeline) reviewDraft(ctx context.Context, st *types.PipelineState, draft *types.ResumeDraft, analysis *types.JobAnalysis, attempt int) (*types.QAReport, error) {
	local := validation.BasicQAChecks(draft)

	fmt.Printf("Step 6: Running final quality review...\n")
	raw, err := p.client.GenerateStructured(ctx, llm.TaskFinalQA, map[string]any{
		"resume_draft": draft,
		"job_analysis": analysis,
	})
	if err != nil {
		fmt.Printf("Warning: quality review task failed: %v\n", err)
		p.recordFailure(st, types.StageQAComplete, err)
		return nil, nil
	}

	var report types.QAReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("quality review output did not parse: %w", err)
	}
	report.Issues = append(local, report.Issues...)
	if report.Statistics == nil {
		report.Statistics = validation.Statistics(draft)
	}

	if err := p.store.RecordTaskOutput(st, types.TaskFinalQA, &report, types.StageQAComplete); err != nil {
		return nil, err
	}

	if p.opts.Verbose {
		p.printer.PrintQAReport(&report)
	}
	p.emit(st, db.StepQAReport, db.CategoryReview,
		fmt.Sprintf("Quality review attempt %d: %s", attempt+1, report.OverallStatus), &report)

	if runID := p.mirrorRun(ctx, st); runID != uuid.Nil {
		_ = p.mirror.SaveArtifact(ctx, runID, db.StepQAReport, db.CategoryReview, &report)
	}
	return &report, nil
}

// renderArtifacts writes the HTML artifact and optionally prints the PDF.
// Rendering failures are warnings; by this point the tailored content is
// complete and persisted.
func (p *Pipeline) renderArtifacts(ctx context.Context, st *types.PipelineState) error {
	if !p.opts.GeneratePDF {
		return nil
	}
	if st.PDFGenerated {
		fmt.Printf("PDF already generated at %s.\n", st.PDFPath)
		return nil
	}

	draft, err := p.loadFinalDraft(st)
	if err != nil {
		return err
	}

	layout := rendering.Layout{}
	if st.WorkflowConfig != nil {
		layout.Sections = st.WorkflowConfig.Sections
	}

	fmt.Printf("Rendering resume to PDF...\n")
	html, err := rendering.RenderHTML(draft, layout)
	if err != nil {
		fmt.Printf("Warning: HTML rendering failed: %v\n", err)
		p.recordFailure(st, types.StagePhase3Complete, err)
		return nil
	}

	jobDir := filepath.Join(p.store.Root(), st.Key)
	htmlPath := filepath.Join(jobDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		fmt.Printf("Warning: failed to write %s: %v\n", htmlPath, err)
		p.recordFailure(st, types.StagePhase3Complete, err)
		return nil
	}

	if runID := p.mirrorRun(ctx, st); runID != uuid.Nil {
		_ = p.mirror.SaveTextArtifact(ctx, runID, db.StepResumeHTML, db.CategoryRendering, html)
	}

	pdfPath := filepath.Join(jobDir, "resume.pdf")
	if err := rendering.PrintPDF(ctx, html, pdfPath); err != nil {
		fmt.Printf("Warning: PDF generation failed: %v\n", err)
		p.recordFailure(st, types.StagePhase3Complete, err)
		return nil
	}

	st.PDFGenerated = true
	st.PDFPath = pdfPath
	if err := p.store.Save(st); err != nil {
		return err
	}
	p.emit(st, db.StepResumeHTML, db.CategoryRendering, fmt.Sprintf("Generated PDF at %s", pdfPath), nil)
	fmt.Printf("PDF written to %s\n", pdfPath)
	return nil
}
