package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

func TestNewRun_CreatesFolderAndState(t *testing.T) {
	store := NewFileStore(t.TempDir())

	st, err := store.NewRun("Acme Corp", "Staff Engineer")
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", st.CompanyName)
	assert.Equal(t, types.StageInitialized, st.CurrentStage)
	assert.Contains(t, st.Key, "Acme_Corp_Staff_Engineer")

	loaded, err := store.Load(st.Key)
	require.NoError(t, err)
	assert.Equal(t, st.Key, loaded.Key)
	assert.Empty(t, loaded.CompletedStages)
}

func TestLoad_UnknownKey(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Load("20240101_000000_nowhere")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "20240101_000000_nowhere", notFound.Key)
}

func TestRecordTaskOutput_MarksStageAndPersists(t *testing.T) {
	store := NewFileStore(t.TempDir())
	st, err := store.NewRun("Acme", "Engineer")
	require.NoError(t, err)

	analysis := &types.JobAnalysis{Company: "Acme", JobTitle: "Engineer"}
	require.NoError(t, store.RecordTaskOutput(st, types.TaskJobAnalyzer, analysis, types.StageJobAnalysisComplete))

	assert.True(t, store.CanSkip(st, types.StageJobAnalysisComplete))
	assert.False(t, store.CanSkip(st, types.StageDraftComplete))

	// The saved state survives a reload with the snapshot pointer intact.
	loaded, err := store.Load(st.Key)
	require.NoError(t, err)
	assert.True(t, loaded.StageCompleted(types.StageJobAnalysisComplete))
	assert.NotEmpty(t, loaded.TaskOutputs[types.TaskJobAnalyzer])

	raw, err := store.LoadTaskOutput(st.Key, types.TaskJobAnalyzer)
	require.NoError(t, err)
	var got types.JobAnalysis
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Acme", got.Company)
}

func TestLoadTaskOutput_ReturnsNewestSnapshot(t *testing.T) {
	store := NewFileStore(t.TempDir())
	st, err := store.NewRun("Acme", "Engineer")
	require.NoError(t, err)

	// Both writes land within the same wall-clock second; the stamp guard
	// must keep them ordered anyway.
	frozen := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return frozen }

	first := json.RawMessage(`{"version": 1}`)
	second := json.RawMessage(`{"version": 2}`)
	require.NoError(t, store.RecordTaskOutput(st, types.TaskResumeDrafter, first, types.StageDraftComplete))
	require.NoError(t, store.RecordTaskOutput(st, types.TaskResumeDrafter, second, types.StageDraftComplete))

	raw, err := store.LoadTaskOutput(st.Key, types.TaskResumeDrafter)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version": 2}`, string(raw))

	// Re-recording appends a snapshot instead of overwriting.
	entries, err := os.ReadDir(filepath.Join(store.Root(), st.Key, outputsDir))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLoadTaskOutput_SuffixMatchIsExact(t *testing.T) {
	store := NewFileStore(t.TempDir())
	st, err := store.NewRun("Acme", "Engineer")
	require.NoError(t, err)

	// final_qa must not match a hypothetical task whose name merely ends
	// with "qa".
	require.NoError(t, store.RecordTaskOutput(st, types.TaskFinalQA, json.RawMessage(`{"overall_status":"pass"}`), types.StageQAComplete))

	_, err = store.LoadTaskOutput(st.Key, "qa")
	require.Error(t, err)

	raw, err := store.LoadTaskOutput(st.Key, types.TaskFinalQA)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "pass")
}

func TestLoadTaskOutput_NoSnapshot(t *testing.T) {
	store := NewFileStore(t.TempDir())
	st, err := store.NewRun("Acme", "Engineer")
	require.NoError(t, err)

	_, err = store.LoadTaskOutput(st.Key, types.TaskValidator)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recorded output")
}

func TestSave_CompletedStagesOnlyGrow(t *testing.T) {
	store := NewFileStore(t.TempDir())
	st, err := store.NewRun("Acme", "Engineer")
	require.NoError(t, err)

	st.MarkStageComplete(types.StageJobAnalysisComplete)
	st.MarkStageComplete(types.StageContentSelectionComplete)
	st.MarkStageComplete(types.StageJobAnalysisComplete) // repeat
	require.NoError(t, store.Save(st))

	loaded, err := store.Load(st.Key)
	require.NoError(t, err)
	assert.Equal(t, []string{
		types.StageJobAnalysisComplete,
		types.StageContentSelectionComplete,
	}, loaded.CompletedStages)
	assert.Equal(t, types.StageContentSelectionComplete, loaded.CurrentStage)
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme Corp_Staff Engineer", "Acme_Corp_Staff_Engineer"},
		{"Weird/Co:*?_Dev <ML>", "Weird_Co_Dev_ML"},
		{"  spaced out  ", "spaced_out"},
		{"///", "run"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeName(tc.in), tc.in)
	}
}

func TestNextStamp_Monotonic(t *testing.T) {
	store := NewFileStore(t.TempDir())
	frozen := time.Date(2025, 3, 1, 23, 59, 59, 0, time.UTC)
	store.now = func() time.Time { return frozen }

	first := store.nextStamp()
	second := store.nextStamp()
	third := store.nextStamp()

	assert.Equal(t, "20250301_235959", first)
	assert.Less(t, first, second)
	assert.Less(t, second, third, "stamps stay ordered across a day boundary")
}
