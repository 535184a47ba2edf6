// Package types provides type definitions for structured data used throughout the resume tailoring pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// QA overall status values.
const (
	QAStatusPass             = "pass"
	QAStatusPassWithWarnings = "pass_with_warnings"
	QAStatusFail             = "fail"
)

// QAIssue represents a single finding from the final quality review
type QAIssue struct {
	Severity       string `json:"severity"`
	Category       string `json:"category"`
	Location       string `json:"location,omitempty"`
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation,omitempty"`
}

// QAStatistics carries document-level counts gathered during review
type QAStatistics struct {
	ExperienceEntries  int `json:"experience_entries"`
	AchievementBullets int `json:"achievement_bullets"`
	ProjectEntries     int `json:"project_entries"`
	EducationEntries   int `json:"education_entries"`
	PublicationEntries int `json:"publication_entries"`
	SummaryLength      int `json:"summary_length"`
}

// QAReport represents the final quality review of an edited draft
type QAReport struct {
	OverallStatus       string         `json:"overall_status"`
	OverallScore        int            `json:"overall_score"`
	ReadyToSubmit       bool           `json:"ready_to_submit"`
	Issues              []QAIssue      `json:"issues,omitempty"`
	SectionScores       map[string]int `json:"section_scores,omitempty"`
	Strengths           []string       `json:"strengths,omitempty"`
	AreasForImprovement []string       `json:"areas_for_improvement,omitempty"`
	ATSAnalysis         map[string]any `json:"ats_analysis,omitempty"`
	Statistics          *QAStatistics  `json:"statistics,omitempty"`
	FinalRecommendation string         `json:"final_recommendation,omitempty"`
}

// Passed reports whether the review allows the pipeline to stop retrying
func (r *QAReport) Passed() bool {
	return r.OverallStatus == QAStatusPass || r.OverallStatus == QAStatusPassWithWarnings
}

// CriticalIssues returns only the critical findings
func (r *QAReport) CriticalIssues() []QAIssue {
	var out []QAIssue
	for _, issue := range r.Issues {
		if issue.Severity == SeverityCritical {
			out = append(out, issue)
		}
	}
	return out
}
