package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

const minSummaryLength = 30

// BasicQAChecks runs the local completeness checks on a draft before the
// final review task. These catch the obvious gaps a rendered resume cannot
// have, independently of what the reviewer reports.
func BasicQAChecks(draft *types.ResumeDraft) []types.QAIssue {
	var issues []types.QAIssue

	if draft.Contact["name"] == "" {
		issues = append(issues, types.QAIssue{
			Severity:       types.SeverityCritical,
			Category:       "completeness",
			Location:       "contact.name",
			Issue:          "Name is missing",
			Recommendation: "Add full name to contact section",
		})
	}
	if draft.Contact["email"] == "" {
		issues = append(issues, types.QAIssue{
			Severity:       types.SeverityCritical,
			Category:       "completeness",
			Location:       "contact.email",
			Issue:          "Email is missing",
			Recommendation: "Add email address to contact section",
		})
	}

	if utf8.RuneCountInString(draft.ProfessionalSummary) < minSummaryLength {
		issues = append(issues, types.QAIssue{
			Severity:       types.SeverityCritical,
			Category:       "completeness",
			Location:       "professional_summary",
			Issue:          "Professional summary is missing or too short",
			Recommendation: "Add 2-4 sentence professional summary",
		})
	}

	if len(draft.Experience) == 0 {
		issues = append(issues, types.QAIssue{
			Severity:       types.SeverityCritical,
			Category:       "completeness",
			Location:       "experience",
			Issue:          "No experience entries found",
			Recommendation: "Add at least 3 experience entries",
		})
	}

	if len(draft.Education) == 0 {
		issues = append(issues, types.QAIssue{
			Severity:       types.SeverityWarning,
			Category:       "completeness",
			Location:       "education",
			Issue:          "No education entries found",
			Recommendation: "Add education information",
		})
	}

	total := draft.TotalAchievements()
	if total < 8 {
		issues = append(issues, types.QAIssue{
			Severity:       types.SeverityWarning,
			Category:       "completeness",
			Location:       "experience",
			Issue:          fmt.Sprintf("Only %d achievement bullets (recommended: 8-15)", total),
			Recommendation: "Add more specific achievements with metrics",
		})
	} else if total > 20 {
		issues = append(issues, types.QAIssue{
			Severity:       types.SeverityInfo,
			Category:       "professionalism",
			Location:       "experience",
			Issue:          fmt.Sprintf("%d achievement bullets may be too many", total),
			Recommendation: "Consider condensing to 12-15 most impactful bullets",
		})
	}

	return issues
}

// Statistics counts the draft's sections for the QA report.
func Statistics(draft *types.ResumeDraft) *types.QAStatistics {
	return &types.QAStatistics{
		ExperienceEntries:  len(draft.Experience),
		AchievementBullets: draft.TotalAchievements(),
		ProjectEntries:     len(draft.BulletedProjects),
		EducationEntries:   len(draft.Education),
		PublicationEntries: len(draft.Publications),
		SummaryLength:      utf8.RuneCountInString(draft.ProfessionalSummary),
	}
}
