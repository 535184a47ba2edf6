package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

const (
	stateFileName = "pipeline_state.json"
	outputsDir    = "agent_outputs"
	stampLayout   = "20060102_150405"
)

// NotFoundError reports a run key with no state document.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no pipeline state for key %q", e.Key)
}

// FileStore keeps one job folder per run under a root directory:
//
//	<root>/<key>/pipeline_state.json
//	<root>/<key>/agent_outputs/<stamp>_<task>.json
//
// Snapshot stamps are strictly increasing per store, so the lexicographically
// last snapshot for a task is always the newest.
type FileStore struct {
	root string

	mu        sync.Mutex
	lastStamp string
	now       func() time.Time
}

// NewFileStore creates a store rooted at the given applications directory.
// The directory is created on first use.
func NewFileStore(root string) *FileStore {
	return &FileStore{root: root, now: time.Now}
}

// Root returns the applications directory the store writes under.
func (s *FileStore) Root() string {
	return s.root
}

// NewRun allocates a job folder for a fresh run and saves its initial state.
func (s *FileStore) NewRun(company, title string) (*types.PipelineState, error) {
	key := fmt.Sprintf("%s_%s", s.nextStamp(), sanitizeName(company+"_"+title))
	if err := os.MkdirAll(filepath.Join(s.root, key, outputsDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create job folder: %w", err)
	}

	st := types.NewPipelineState(key, company, title)
	if err := s.Save(st); err != nil {
		return nil, err
	}
	return st, nil
}

// Load reads the state document for a run key.
func (s *FileStore) Load(key string) (*types.PipelineState, error) {
	data, err := os.ReadFile(filepath.Join(s.root, key, stateFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Key: key}
		}
		return nil, fmt.Errorf("failed to read pipeline state: %w", err)
	}

	var st types.PipelineState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline state: %w", err)
	}
	if st.TaskOutputs == nil {
		st.TaskOutputs = map[string]string{}
	}
	return &st, nil
}

// Save writes the state document. The write goes through a temp file and
// rename so a crash never leaves a truncated state behind.
func (s *FileStore) Save(st *types.PipelineState) error {
	dir := filepath.Join(s.root, st.Key)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create job folder: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal pipeline state: %w", err)
	}

	path := filepath.Join(dir, stateFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write pipeline state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write pipeline state: %w", err)
	}
	return nil
}

// CanSkip reports whether the stage was already completed in this state.
func (s *FileStore) CanSkip(st *types.PipelineState, stage string) bool {
	return st != nil && st.StageCompleted(stage)
}

// RecordTaskOutput snapshots a task's output under agent_outputs, points the
// state at the new snapshot, marks the task's stage complete, and saves.
func (s *FileStore) RecordTaskOutput(st *types.PipelineState, task string, output any, stage string) error {
	dir := filepath.Join(s.root, st.Key, outputsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create outputs folder: %w", err)
	}

	data, err := marshalOutput(output)
	if err != nil {
		return fmt.Errorf("failed to marshal %s output: %w", task, err)
	}

	name := fmt.Sprintf("%s_%s.json", s.nextStamp(), task)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s snapshot: %w", task, err)
	}

	st.TaskOutputs[task] = name
	st.MarkStageComplete(stage)
	return s.Save(st)
}

// LoadTaskOutput returns the newest snapshot recorded for a task.
func (s *FileStore) LoadTaskOutput(key, task string) (json.RawMessage, error) {
	dir := filepath.Join(s.root, key, outputsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list outputs for %s: %w", key, err)
	}

	// Suffix match keeps task names containing underscores unambiguous.
	suffix := "_" + task + ".json"
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no recorded output for task %s in %s", task, key)
	}
	sort.Strings(names)

	data, err := os.ReadFile(filepath.Join(dir, names[len(names)-1]))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s snapshot: %w", task, err)
	}
	return json.RawMessage(data), nil
}

// nextStamp returns a timestamp strictly greater than any previously issued
// by this store. Two snapshots within the same second get consecutive stamps
// so lexicographic order stays total.
func (s *FileStore) nextStamp() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.now().UTC().Format(stampLayout)
	if stamp <= s.lastStamp {
		prev, err := time.Parse(stampLayout, s.lastStamp)
		if err != nil {
			prev = s.now().UTC()
		}
		stamp = prev.Add(time.Second).Format(stampLayout)
	}
	s.lastStamp = stamp
	return stamp
}

// marshalOutput keeps raw JSON snapshots byte-identical to what the
// capability returned; typed artifacts are marshaled indented.
func marshalOutput(output any) ([]byte, error) {
	if raw, ok := output.(json.RawMessage); ok {
		return raw, nil
	}
	return json.MarshalIndent(output, "", "  ")
}

var hostileRunes = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeName makes a company/title pair safe as a folder name component.
func sanitizeName(name string) string {
	cleaned := hostileRunes.ReplaceAllString(strings.TrimSpace(name), "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return "run"
	}
	const maxLen = 80
	if len(cleaned) > maxLen {
		cleaned = cleaned[:maxLen]
	}
	return cleaned
}
