// Package types provides type definitions for structured data used throughout the resume tailoring pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeDraft_BuildCitations(t *testing.T) {
	draft := &ResumeDraft{
		Experience: []DraftExperience{
			{
				SourceID: "exp_001",
				Achievements: []DraftAchievement{
					{Text: "Shipped the thing", SourceID: "exp_001"},
					{Text: "Improved the other thing"}, // no bullet-level ID
				},
			},
		},
		BulletedProjects: []DraftProject{
			{SourceID: "proj_001", Bullets: []string{"Built it"}},
		},
	}

	cites := draft.BuildCitations()
	assert.Equal(t, "exp_001", cites["experience[0]"])
	assert.Equal(t, "exp_001", cites["experience[0].achievements[0]"])
	// Bullets without their own ID inherit the entry's source.
	assert.Equal(t, "exp_001", cites["experience[0].achievements[1]"])
	assert.Equal(t, "proj_001", cites["projects[0]"])
}

func TestResumeDraft_TotalAchievements(t *testing.T) {
	draft := &ResumeDraft{
		Experience: []DraftExperience{
			{Achievements: []DraftAchievement{{Text: "a"}, {Text: "b"}}},
			{Achievements: []DraftAchievement{{Text: "c"}}},
		},
	}
	assert.Equal(t, 3, draft.TotalAchievements())
}

func TestValidationResult_Severities(t *testing.T) {
	result := &ValidationResult{
		Issues: []ValidationIssue{
			{Severity: SeverityCritical, Type: IssueInvalidSourceID},
			{Severity: SeverityWarning, Type: IssueAlteredFact},
			{Severity: SeverityCritical, Type: IssueMissingSourceID},
		},
	}
	assert.True(t, result.HasCritical())
	assert.Equal(t, 2, result.CountBySeverity(SeverityCritical))
	assert.Equal(t, 1, result.CountBySeverity(SeverityWarning))
	assert.Equal(t, 0, result.CountBySeverity(SeverityInfo))
}

func TestQAReport_Passed(t *testing.T) {
	assert.True(t, (&QAReport{OverallStatus: QAStatusPass}).Passed())
	assert.True(t, (&QAReport{OverallStatus: QAStatusPassWithWarnings}).Passed())
	assert.False(t, (&QAReport{OverallStatus: QAStatusFail}).Passed())
	assert.False(t, (&QAReport{}).Passed())
}

func TestQAReport_CriticalIssues(t *testing.T) {
	report := &QAReport{
		Issues: []QAIssue{
			{Severity: SeverityCritical, Issue: "missing contact"},
			{Severity: SeverityWarning, Issue: "short summary"},
		},
	}
	critical := report.CriticalIssues()
	assert.Len(t, critical, 1)
	assert.Equal(t, "missing contact", critical[0].Issue)
}
