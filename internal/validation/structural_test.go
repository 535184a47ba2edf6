package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

func testSelection() *types.ContentSelection {
	return &types.ContentSelection{
		SelectedExperiences: []types.SelectedExperience{
			{SourceID: "exp_001"},
			{SourceID: "exp_002"},
		},
		SelectedProjects: []types.SelectedProject{
			{SourceID: "proj_001"},
		},
		SelectedPublications: []types.SelectedPublication{
			{SourceID: "pub_001"},
		},
	}
}

func validDraft() *types.ResumeDraft {
	return &types.ResumeDraft{
		Contact:             map[string]string{"name": "Pat Doe", "email": "pat@example.com"},
		ProfessionalSummary: "Platform engineer with ten years of distributed systems work.",
		Experience: []types.DraftExperience{
			{
				SourceID: "exp_001",
				Company:  "Acme",
				Title:    "Engineer",
				Dates:    "Jan 2020 - Present",
				Achievements: []types.DraftAchievement{
					{Text: "Led migration", SourceID: "exp_001"},
					{Text: "Cut latency 40%", SourceID: "exp_002"},
				},
			},
		},
		BulletedProjects: []types.DraftProject{
			{SourceID: "proj_001", Name: "Ingest pipeline", Bullets: []string{"Built it"}},
		},
		Education: []types.DraftEducation{
			{Degree: "BS Computer Science", Institution: "State University"},
		},
	}
}

func TestStructural_ValidDraftHasNoIssues(t *testing.T) {
	issues := Structural(validDraft(), testSelection())
	assert.Empty(t, issues)
}

func TestStructural_MissingExperienceSourceID(t *testing.T) {
	draft := validDraft()
	draft.Experience[0].SourceID = ""

	issues := Structural(draft, testSelection())
	require.NotEmpty(t, issues)

	assert.Equal(t, types.SeverityCritical, issues[0].Severity)
	assert.Equal(t, types.IssueMissingSourceID, issues[0].Type)
	assert.Equal(t, "experience[0]", issues[0].Location)
	assert.Equal(t, "Experience missing source_id field", issues[0].Message)
}

func TestStructural_InvalidExperienceSourceID(t *testing.T) {
	draft := validDraft()
	draft.Experience[0].SourceID = "exp_999"

	issues := Structural(draft, testSelection())
	require.NotEmpty(t, issues)

	assert.Equal(t, types.IssueInvalidSourceID, issues[0].Type)
	assert.Equal(t, "experience[0]", issues[0].Location)
	assert.Equal(t, "Invalid source_id: exp_999", issues[0].Message)
}

func TestStructural_AchievementIssuesCarryBulletLocation(t *testing.T) {
	draft := validDraft()
	draft.Experience[0].Achievements[1].SourceID = ""

	issues := Structural(draft, testSelection())
	require.Len(t, issues, 1)
	assert.Equal(t, "experience[0].achievements[1]", issues[0].Location)
	assert.Equal(t, "Achievement missing source_id field", issues[0].Message)

	draft.Experience[0].Achievements[1].SourceID = "nope"
	issues = Structural(draft, testSelection())
	require.Len(t, issues, 1)
	assert.Equal(t, types.IssueInvalidSourceID, issues[0].Type)
	assert.Equal(t, "Invalid source_id: nope", issues[0].Message)
}

func TestStructural_ProjectIssues(t *testing.T) {
	draft := validDraft()
	draft.BulletedProjects[0].SourceID = ""

	issues := Structural(draft, testSelection())
	require.Len(t, issues, 1)
	assert.Equal(t, "bulleted_projects[0]", issues[0].Location)
	assert.Equal(t, "Project missing source_id field", issues[0].Message)
}

func TestStructural_PublicationIDsAreNotCitable(t *testing.T) {
	// Publications are copied whole and never cited, so a draft bullet
	// pointing at a publication ID is invalid.
	draft := validDraft()
	draft.Experience[0].Achievements[0].SourceID = "pub_001"

	issues := Structural(draft, testSelection())
	require.Len(t, issues, 1)
	assert.Equal(t, types.IssueInvalidSourceID, issues[0].Type)
	assert.Equal(t, "Invalid source_id: pub_001", issues[0].Message)
}

func TestStructural_ReportsEveryProblem(t *testing.T) {
	draft := validDraft()
	draft.Experience[0].SourceID = ""
	draft.Experience[0].Achievements[0].SourceID = "bad"
	draft.BulletedProjects[0].SourceID = "worse"

	issues := Structural(draft, testSelection())
	assert.Len(t, issues, 3)
}

func TestHasCritical(t *testing.T) {
	assert.False(t, HasCritical(nil))
	assert.False(t, HasCritical([]types.ValidationIssue{{Severity: types.SeverityWarning}}))
	assert.True(t, HasCritical([]types.ValidationIssue{
		{Severity: types.SeverityInfo},
		{Severity: types.SeverityCritical},
	}))
}
