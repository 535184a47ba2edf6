// Package pipeline provides the high-level orchestration for the resume
// tailoring process: three phases over a fixed stage machine, with every task
// output persisted so an interrupted run resumes where it stopped.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KeithKrenek/resume-optimization/internal/db"
	"github.com/KeithKrenek/resume-optimization/internal/llm"
	"github.com/KeithKrenek/resume-optimization/internal/observability"
	"github.com/KeithKrenek/resume-optimization/internal/state"
	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunKey   string `json:"run_key,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the pipeline
type Options struct {
	JobPath              string
	CatalogPath          string
	MaxValidationRetries int
	MaxQARetries         int
	SkipStyleEdit        bool
	GeneratePDF          bool
	Verbose              bool
	OnProgress           ProgressCallback
}

// Pipeline drives a tailoring run through its three phases. The state store
// is the source of truth for progress; the optional mirror only shadows
// artifacts into Postgres for cross-run queries.
type Pipeline struct {
	store   *state.FileStore
	client  llm.Client
	mirror  *db.DB
	printer *observability.Printer
	logger  *zap.Logger
	opts    Options
}

// New creates a pipeline over a state store and a generation client. The
// mirror may be nil.
func New(store *state.FileStore, client llm.Client, mirror *db.DB, opts Options) *Pipeline {
	return &Pipeline{
		store:   store,
		client:  client,
		mirror:  mirror,
		printer: observability.NewPrinter(os.Stdout),
		logger:  zap.L(),
		opts:    opts,
	}
}

// Run executes all three phases for a fresh run.
func (p *Pipeline) Run(ctx context.Context) (*types.PipelineState, error) {
	st, err := p.runPhase1(ctx, nil)
	if err != nil {
		return st, err
	}
	if err := p.runPhase2(ctx, st); err != nil {
		return st, err
	}
	if err := p.runPhase3(ctx, st); err != nil {
		return st, err
	}
	return st, p.finish(ctx, st)
}

// Resume loads an existing run and executes every phase that has not
// completed yet. Completed stages are skipped inside each phase.
func (p *Pipeline) Resume(ctx context.Context, key string) (*types.PipelineState, error) {
	st, err := p.store.Load(key)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Resuming run %s at stage %s\n", st.Key, st.CurrentStage)

	if st.StageCompleted(types.StageCompleted) {
		fmt.Printf("Run %s is already complete.\n", st.Key)
		return st, nil
	}

	if _, err := p.runPhase1(ctx, st); err != nil {
		return st, err
	}
	if err := p.runPhase2(ctx, st); err != nil {
		return st, err
	}
	if err := p.runPhase3(ctx, st); err != nil {
		return st, err
	}
	return st, p.finish(ctx, st)
}

// RunPhase1 executes only Phase 1 for a fresh run and returns its state.
func (p *Pipeline) RunPhase1(ctx context.Context) (*types.PipelineState, error) {
	return p.runPhase1(ctx, nil)
}

// RunPhase2 executes only Phase 2 against an existing run.
func (p *Pipeline) RunPhase2(ctx context.Context, key string) (*types.PipelineState, error) {
	st, err := p.store.Load(key)
	if err != nil {
		return nil, err
	}
	return st, p.runPhase2(ctx, st)
}

// RunPhase3 executes only Phase 3 against an existing run.
func (p *Pipeline) RunPhase3(ctx context.Context, key string) (*types.PipelineState, error) {
	st, err := p.store.Load(key)
	if err != nil {
		return nil, err
	}
	if err := p.runPhase3(ctx, st); err != nil {
		return st, err
	}
	return st, p.finish(ctx, st)
}

// finish marks the run completed and closes out the mirror row.
func (p *Pipeline) finish(ctx context.Context, st *types.PipelineState) error {
	st.MarkStageComplete(types.StageCompleted)
	if err := p.store.Save(st); err != nil {
		return err
	}

	if runID := p.mirrorRun(ctx, st); runID != uuid.Nil {
		if err := p.mirror.CompleteRun(ctx, runID, "completed"); err != nil {
			fmt.Printf("Warning: failed to mark mirror run complete: %v\n", err)
		}
	}

	fmt.Printf("Done! Run %s complete.\n", st.Key)
	return nil
}

// emit calls the progress callback if configured
func (p *Pipeline) emit(st *types.PipelineState, step, category, message string, content any) {
	if p.opts.OnProgress == nil {
		return
	}
	event := ProgressEvent{
		Step:     step,
		Category: category,
		Message:  message,
		Content:  content,
	}
	if st != nil {
		event.RunKey = st.Key
	}
	p.opts.OnProgress(event)
}

// recordFailure logs a task failure into the state error log. The save is
// best-effort; the original failure stays the primary error.
func (p *Pipeline) recordFailure(st *types.PipelineState, stage string, cause error) {
	st.AddError(stage, cause.Error())
	if err := p.store.Save(st); err != nil {
		p.logger.Warn("failed to persist error log entry",
			zap.String("key", st.Key),
			zap.Error(err))
	}
}
