package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

func draftPair() (*types.ResumeDraft, *types.ResumeDraft) {
	build := func() *types.ResumeDraft {
		return &types.ResumeDraft{
			Contact:             map[string]string{"name": "Pat Doe", "email": "pat@example.com"},
			ProfessionalSummary: "Original summary text.",
			Experience: []types.DraftExperience{
				{
					SourceID: "exp_001",
					Company:  "Acme",
					Title:    "Engineer",
					Dates:    "Jan 2020 - Present",
					Achievements: []types.DraftAchievement{
						{Text: "Led migration", SourceID: "exp_001"},
					},
				},
			},
			BulletedProjects: []types.DraftProject{
				{SourceID: "proj_001", Name: "Pipeline", Bullets: []string{"Built it"}},
			},
		}
	}
	return build(), build()
}

func TestVerifyFactsPreserved_RewordingIsAllowed(t *testing.T) {
	original, edited := draftPair()
	edited.ProfessionalSummary = "Reworded summary text with better flow."
	edited.Experience[0].Achievements[0].Text = "Drove the platform migration"
	edited.BulletedProjects[0].Bullets[0] = "Designed and built it"

	ok, issues := VerifyFactsPreserved(original, edited)
	assert.True(t, ok)
	assert.Empty(t, issues)
}

func TestVerifyFactsPreserved_ContactChange(t *testing.T) {
	original, edited := draftPair()
	edited.Contact["email"] = "other@example.com"

	ok, issues := VerifyFactsPreserved(original, edited)
	assert.False(t, ok)
	assert.Contains(t, issues, "Contact information was modified")
}

func TestVerifyFactsPreserved_ExperienceFieldChanges(t *testing.T) {
	original, edited := draftPair()
	edited.Experience[0].Company = "Other Corp"
	edited.Experience[0].Title = "Architect"
	edited.Experience[0].Dates = "Feb 2020 - Present"

	ok, issues := VerifyFactsPreserved(original, edited)
	assert.False(t, ok)
	assert.Contains(t, issues, "Experience 0: Company changed")
	assert.Contains(t, issues, "Experience 0: Title changed")
	assert.Contains(t, issues, "Experience 0: Dates changed")
}

func TestVerifyFactsPreserved_EntryCountChanges(t *testing.T) {
	original, edited := draftPair()
	edited.Experience = nil

	ok, issues := VerifyFactsPreserved(original, edited)
	assert.False(t, ok)
	assert.Contains(t, issues, "Experience count changed: 1 -> 0")
}

func TestVerifyFactsPreserved_AchievementChanges(t *testing.T) {
	original, edited := draftPair()
	edited.Experience[0].Achievements = append(edited.Experience[0].Achievements,
		types.DraftAchievement{Text: "New invented bullet", SourceID: "exp_001"})

	ok, issues := VerifyFactsPreserved(original, edited)
	assert.False(t, ok)
	assert.Contains(t, issues, "Experience 0: Achievement count changed")

	original, edited = draftPair()
	edited.Experience[0].Achievements[0].SourceID = "exp_002"
	ok, issues = VerifyFactsPreserved(original, edited)
	assert.False(t, ok)
	assert.Contains(t, issues, "Experience 0, Achievement 0: source_id changed")
}

func TestVerifyFactsPreserved_ProjectChanges(t *testing.T) {
	original, edited := draftPair()
	edited.BulletedProjects[0].SourceID = "proj_999"

	ok, issues := VerifyFactsPreserved(original, edited)
	assert.False(t, ok)
	assert.Contains(t, issues, "Project 0: source_id changed")

	original, edited = draftPair()
	edited.BulletedProjects = nil
	ok, issues = VerifyFactsPreserved(original, edited)
	assert.False(t, ok)
	require.Contains(t, issues, "Project count changed: 1 -> 0")
}
