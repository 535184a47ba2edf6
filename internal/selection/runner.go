package selection

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KeithKrenek/resume-optimization/internal/llm"
)

// Generator is the slice of the LLM client the runner needs.
type Generator interface {
	GenerateStructured(ctx context.Context, task llm.TaskKind, input any) (json.RawMessage, error)
}

// Runner executes selection tasks in parallel.
type Runner struct {
	gen    Generator
	logger *zap.Logger
}

// NewRunner creates a runner backed by the given generator.
func NewRunner(gen Generator) *Runner {
	return &Runner{gen: gen, logger: zap.L()}
}

// RunAll executes every task in parallel and returns results in task order.
// Each goroutine writes only its own result slot, so no locking is needed.
// A failed task becomes its category's empty result; RunAll errors only when
// the context was canceled or every task failed.
func (r *Runner) RunAll(ctx context.Context, tasks []Task) ([]CategoryResult, error) {
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no selection tasks to run")
	}

	results := make([]CategoryResult, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	for i, task := range tasks {
		g.Go(func() error {
			results[i] = r.runOne(gctx, task)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The group context is canceled once Wait returns; only the caller's
	// context tells us whether the run itself was canceled.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed == len(results) {
		return nil, fmt.Errorf("all %d selection tasks failed", len(results))
	}

	return results, nil
}

// runOne executes a single task, converting any failure into its category's
// empty result at the task boundary.
func (r *Runner) runOne(ctx context.Context, task Task) CategoryResult {
	raw, err := r.gen.GenerateStructured(ctx, task.Kind, task.Input)
	if err != nil {
		r.logger.Warn("selection task failed",
			zap.String("category", string(task.Category)),
			zap.Error(err))
		return EmptyResult(task.Category, err)
	}

	res, err := parseResult(task.Category, raw)
	if err != nil {
		r.logger.Warn("selection output did not parse",
			zap.String("category", string(task.Category)),
			zap.Error(err))
		return EmptyResult(task.Category, err)
	}

	return res
}
