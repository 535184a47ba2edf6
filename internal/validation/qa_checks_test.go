package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

func completeDraft(bullets int) *types.ResumeDraft {
	achievements := make([]types.DraftAchievement, bullets)
	for i := range achievements {
		achievements[i] = types.DraftAchievement{
			Text:     fmt.Sprintf("Achievement %d with a concrete metric", i),
			SourceID: "exp_001",
		}
	}
	return &types.ResumeDraft{
		Contact:             map[string]string{"name": "Pat Doe", "email": "pat@example.com"},
		ProfessionalSummary: "Platform engineer with ten years of distributed systems experience.",
		Experience: []types.DraftExperience{
			{SourceID: "exp_001", Company: "Acme", Title: "Engineer", Achievements: achievements},
		},
		Education: []types.DraftEducation{
			{Degree: "BS Computer Science", Institution: "State University"},
		},
	}
}

func findIssue(issues []types.QAIssue, location string) *types.QAIssue {
	for i := range issues {
		if issues[i].Location == location {
			return &issues[i]
		}
	}
	return nil
}

func TestBasicQAChecks_CompleteDraftPasses(t *testing.T) {
	issues := BasicQAChecks(completeDraft(10))
	assert.Empty(t, issues)
}

func TestBasicQAChecks_MissingContactFields(t *testing.T) {
	draft := completeDraft(10)
	draft.Contact = map[string]string{}

	issues := BasicQAChecks(draft)

	name := findIssue(issues, "contact.name")
	require.NotNil(t, name)
	assert.Equal(t, types.SeverityCritical, name.Severity)
	assert.Equal(t, "Name is missing", name.Issue)

	email := findIssue(issues, "contact.email")
	require.NotNil(t, email)
	assert.Equal(t, types.SeverityCritical, email.Severity)
}

func TestBasicQAChecks_ShortSummary(t *testing.T) {
	draft := completeDraft(10)
	draft.ProfessionalSummary = "Too short."

	issues := BasicQAChecks(draft)
	summary := findIssue(issues, "professional_summary")
	require.NotNil(t, summary)
	assert.Equal(t, types.SeverityCritical, summary.Severity)
	assert.Equal(t, "Professional summary is missing or too short", summary.Issue)
}

func TestBasicQAChecks_NoExperienceIsCritical(t *testing.T) {
	draft := completeDraft(10)
	draft.Experience = nil

	issues := BasicQAChecks(draft)
	exp := findIssue(issues, "experience")
	require.NotNil(t, exp)
	assert.Equal(t, types.SeverityCritical, exp.Severity)
	assert.Equal(t, "No experience entries found", exp.Issue)
}

func TestBasicQAChecks_NoEducationIsWarning(t *testing.T) {
	draft := completeDraft(10)
	draft.Education = nil

	issues := BasicQAChecks(draft)
	edu := findIssue(issues, "education")
	require.NotNil(t, edu)
	assert.Equal(t, types.SeverityWarning, edu.Severity)
}

func TestBasicQAChecks_BulletCountThresholds(t *testing.T) {
	// Under 8 bullets warns
	issues := BasicQAChecks(completeDraft(5))
	exp := findIssue(issues, "experience")
	require.NotNil(t, exp)
	assert.Equal(t, types.SeverityWarning, exp.Severity)
	assert.Equal(t, "Only 5 achievement bullets (recommended: 8-15)", exp.Issue)

	// 8 and 20 are both fine
	assert.Empty(t, BasicQAChecks(completeDraft(8)))
	assert.Empty(t, BasicQAChecks(completeDraft(20)))

	// Over 20 is informational
	issues = BasicQAChecks(completeDraft(21))
	exp = findIssue(issues, "experience")
	require.NotNil(t, exp)
	assert.Equal(t, types.SeverityInfo, exp.Severity)
	assert.Equal(t, "21 achievement bullets may be too many", exp.Issue)
}

func TestStatistics(t *testing.T) {
	draft := completeDraft(9)
	draft.BulletedProjects = []types.DraftProject{{SourceID: "proj_001", Name: "Pipeline"}}
	draft.Publications = []types.DraftPublication{{Title: "Paper"}}

	stats := Statistics(draft)
	assert.Equal(t, 1, stats.ExperienceEntries)
	assert.Equal(t, 9, stats.AchievementBullets)
	assert.Equal(t, 1, stats.ProjectEntries)
	assert.Equal(t, 1, stats.EducationEntries)
	assert.Equal(t, 1, stats.PublicationEntries)
	assert.Equal(t, len([]rune(draft.ProfessionalSummary)), stats.SummaryLength)
}
