package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// loadAnalysis reloads the newest stored job analysis for a run.
func (p *Pipeline) loadAnalysis(key string) (*types.JobAnalysis, error) {
	raw, err := p.store.LoadTaskOutput(key, types.TaskJobAnalyzer)
	if err != nil {
		return nil, err
	}
	var analysis types.JobAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, fmt.Errorf("stored job analysis did not parse: %w", err)
	}
	return &analysis, nil
}

// loadSelection reloads the newest stored content selection for a run.
func (p *Pipeline) loadSelection(key string) (*types.ContentSelection, error) {
	raw, err := p.store.LoadTaskOutput(key, types.TaskContentSelector)
	if err != nil {
		return nil, err
	}
	var sel types.ContentSelection
	if err := json.Unmarshal(raw, &sel); err != nil {
		return nil, fmt.Errorf("stored content selection did not parse: %w", err)
	}
	return &sel, nil
}

// loadDraft reloads the newest stored draft recorded by a task.
func (p *Pipeline) loadDraft(key, task string) (*types.ResumeDraft, error) {
	raw, err := p.store.LoadTaskOutput(key, task)
	if err != nil {
		return nil, err
	}
	var draft types.ResumeDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("stored %s output did not parse: %w", task, err)
	}
	return &draft, nil
}

// loadFinalDraft returns the run's most polished draft: the style editor's
// output when that stage completed, the drafter's otherwise.
func (p *Pipeline) loadFinalDraft(st *types.PipelineState) (*types.ResumeDraft, error) {
	if st.StageCompleted(types.StageStyleEditingComplete) {
		return p.loadDraft(st.Key, types.TaskStyleEditor)
	}
	return p.loadDraft(st.Key, types.TaskResumeDrafter)
}

// mirrorRun resolves the Postgres mirror row for a run, creating it on first
// use. Mirror failures degrade to warnings; the file store alone is
// authoritative.
func (p *Pipeline) mirrorRun(ctx context.Context, st *types.PipelineState) uuid.UUID {
	if p.mirror == nil || st == nil {
		return uuid.Nil
	}

	run, err := p.mirror.GetRunByStateKey(ctx, st.Key)
	if err != nil {
		fmt.Printf("Warning: failed to query mirror run: %v\n", err)
		return uuid.Nil
	}
	if run != nil {
		return run.ID
	}

	id, err := p.mirror.CreateRun(ctx, st.CompanyName, st.JobTitle, st.Key)
	if err != nil {
		fmt.Printf("Warning: failed to create mirror run: %v\n", err)
		return uuid.Nil
	}
	return id
}
