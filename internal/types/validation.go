// Package types provides type definitions for structured data used throughout the resume tailoring pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Issue severity levels, shared by validation and QA reports.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Validation issue type tags.
const (
	IssueMissingSourceID = "missing_source_id"
	IssueInvalidSourceID = "invalid_source_id"
	IssueFabrication     = "fabrication"
	IssueAlteredFact     = "altered_fact"
)

// ValidationIssue represents a single problem found while checking a draft
// against its content selection
type ValidationIssue struct {
	Severity string `json:"severity"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Message  string `json:"message"`
	Detail   string `json:"detail,omitempty"`
}

// ValidationResult represents the outcome of a draft validation pass
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Issues  []ValidationIssue `json:"issues"`
	Summary string            `json:"summary,omitempty"`
}

// HasCritical reports whether any issue carries critical severity
func (r *ValidationResult) HasCritical() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// CountBySeverity returns the number of issues at the given severity
func (r *ValidationResult) CountBySeverity(severity string) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}
