// Package validation provides the local checks that run around the
// capability calls: source-id validation before the fabrication audit,
// completeness checks before final review, and fact preservation after
// style editing.
package validation

import (
	"fmt"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// Structural verifies that every draft experience, achievement bullet, and
// bulleted project carries a source_id that exists in the selection. It runs
// locally so obvious traceability problems never cost a capability call.
func Structural(draft *types.ResumeDraft, sel *types.ContentSelection) []types.ValidationIssue {
	var issues []types.ValidationIssue
	valid := sel.SourceIDSet()

	for i, exp := range draft.Experience {
		switch {
		case exp.SourceID == "":
			issues = append(issues, types.ValidationIssue{
				Severity: types.SeverityCritical,
				Type:     types.IssueMissingSourceID,
				Location: fmt.Sprintf("experience[%d]", i),
				Message:  "Experience missing source_id field",
			})
		case !valid[exp.SourceID]:
			issues = append(issues, types.ValidationIssue{
				Severity: types.SeverityCritical,
				Type:     types.IssueInvalidSourceID,
				Location: fmt.Sprintf("experience[%d]", i),
				Message:  fmt.Sprintf("Invalid source_id: %s", exp.SourceID),
			})
		}

		for j, ach := range exp.Achievements {
			switch {
			case ach.SourceID == "":
				issues = append(issues, types.ValidationIssue{
					Severity: types.SeverityCritical,
					Type:     types.IssueMissingSourceID,
					Location: fmt.Sprintf("experience[%d].achievements[%d]", i, j),
					Message:  "Achievement missing source_id field",
				})
			case !valid[ach.SourceID]:
				issues = append(issues, types.ValidationIssue{
					Severity: types.SeverityCritical,
					Type:     types.IssueInvalidSourceID,
					Location: fmt.Sprintf("experience[%d].achievements[%d]", i, j),
					Message:  fmt.Sprintf("Invalid source_id: %s", ach.SourceID),
				})
			}
		}
	}

	for i, proj := range draft.BulletedProjects {
		switch {
		case proj.SourceID == "":
			issues = append(issues, types.ValidationIssue{
				Severity: types.SeverityCritical,
				Type:     types.IssueMissingSourceID,
				Location: fmt.Sprintf("bulleted_projects[%d]", i),
				Message:  "Project missing source_id field",
			})
		case !valid[proj.SourceID]:
			issues = append(issues, types.ValidationIssue{
				Severity: types.SeverityCritical,
				Type:     types.IssueInvalidSourceID,
				Location: fmt.Sprintf("bulleted_projects[%d]", i),
				Message:  fmt.Sprintf("Invalid source_id: %s", proj.SourceID),
			})
		}
	}

	return issues
}

// HasCritical reports whether any issue in the list is critical.
func HasCritical(issues []types.ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == types.SeverityCritical {
			return true
		}
	}
	return false
}
