// Package state persists pipeline progress. A run's state document records
// which stages completed and where each task's newest output snapshot lives,
// which is what makes re-entry after a crash skip already-paid-for work.
package state

import (
	"encoding/json"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// Store is the durable progress record for pipeline runs. I/O failures here
// are fatal to the run; callers propagate them rather than degrading.
type Store interface {
	// Load returns the state for a run key, or a NotFoundError when no run
	// with that key exists.
	Load(key string) (*types.PipelineState, error)
	// Save writes the state document durably.
	Save(state *types.PipelineState) error
	// CanSkip reports whether a stage has already been completed, meaning the
	// task that produces it must not be re-invoked on re-entry.
	CanSkip(state *types.PipelineState, stage string) bool
	// RecordTaskOutput snapshots a task's output, marks its stage complete,
	// and saves the state. The snapshot is append-only; re-running a task
	// adds a newer version rather than overwriting.
	RecordTaskOutput(state *types.PipelineState, task string, output any, stage string) error
	// LoadTaskOutput returns the newest recorded snapshot for a task.
	LoadTaskOutput(key, task string) (json.RawMessage, error)
}
