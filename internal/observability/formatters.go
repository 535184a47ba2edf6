// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens a string to n characters with an ellipsis.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// writeList writes up to maxItemsToShow bulleted items plus an overflow line.
func writeList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(items[i], 48)))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintJobAnalysis outputs a human-readable summary of the analyzed job posting.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", analysis.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", analysis.JobTitle))
	if analysis.RoleType != "" {
		sb.WriteString(fmt.Sprintf("Type:     %s\n", analysis.RoleType))
	}
	sb.WriteString("\n")

	if len(analysis.MustHaveRequirements) > 0 {
		sb.WriteString("Must-have requirements:\n")
		writeList(&sb, analysis.MustHaveRequirements)
		sb.WriteString("\n")
	}
	if len(analysis.TechnicalKeywords) > 0 {
		sb.WriteString("Technical keywords:\n")
		writeList(&sb, analysis.TechnicalKeywords)
	}

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContentSelection outputs selection counts, coverage, and what
// deduplication removed.
func (p *Printer) PrintContentSelection(sel *types.ContentSelection) {
	if sel == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experiences:   %d\n", len(sel.SelectedExperiences)))
	sb.WriteString(fmt.Sprintf("Projects:      %d\n", len(sel.SelectedProjects)))
	sb.WriteString(fmt.Sprintf("Skill groups:  %d\n", len(sel.SelectedSkills)))
	sb.WriteString(fmt.Sprintf("Publications:  %d\n", len(sel.SelectedPublications)))
	sb.WriteString(fmt.Sprintf("Work samples:  %d\n", len(sel.SelectedWorkSamples)))

	if cov := sel.CoverageAnalysis; cov != nil {
		sb.WriteString(fmt.Sprintf("\nCoverage: %d/%d requirements (%d%%)\n",
			cov.RequirementsCovered, cov.TotalRequirements, cov.CoveragePercentage))
		if len(cov.Unmatched) > 0 {
			sb.WriteString("Unmatched:\n")
			writeList(&sb, cov.Unmatched)
		}
	}

	if dd := sel.DeduplicationSummary; dd != nil && dd.DuplicatesRemoved > 0 {
		sb.WriteString(fmt.Sprintf("\nDeduplication removed %d of %d near-duplicates\n",
			dd.DuplicatesRemoved, dd.DuplicatesFound))
	}

	p.printBox("CONTENT SELECTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationResult outputs the outcome of a draft validation pass.
func (p *Printer) PrintValidationResult(result *types.ValidationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.IsValid {
		sb.WriteString("Status: VALID\n")
	} else {
		sb.WriteString("Status: INVALID\n")
	}
	sb.WriteString(fmt.Sprintf("Critical: %d  Warnings: %d  Info: %d\n",
		result.CountBySeverity(types.SeverityCritical),
		result.CountBySeverity(types.SeverityWarning),
		result.CountBySeverity(types.SeverityInfo)))

	count := min(len(result.Issues), maxItemsToShow)
	if count > 0 {
		sb.WriteString("\n")
	}
	for i := 0; i < count; i++ {
		issue := result.Issues[i]
		sb.WriteString(fmt.Sprintf("[%s] %s\n", issue.Severity, issue.Location))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(issue.Message, 48)))
	}
	if len(result.Issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more issues\n", len(result.Issues)-maxItemsToShow))
	}

	p.printBox("DRAFT VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQAReport outputs the final quality review summary.
func (p *Printer) PrintQAReport(report *types.QAReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status: %s\n", strings.ToUpper(report.OverallStatus)))
	sb.WriteString(fmt.Sprintf("Score:  %d/100\n", report.OverallScore))
	if report.ReadyToSubmit {
		sb.WriteString("Ready to submit: yes\n")
	} else {
		sb.WriteString("Ready to submit: no\n")
	}

	if len(report.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(report.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := report.Issues[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", issue.Severity, truncate(issue.Issue, 40)))
		}
		if len(report.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Issues)-maxItemsToShow))
		}
	}

	if len(report.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		writeList(&sb, report.Strengths)
	}

	p.printBox("FINAL QA REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStateSummary outputs a run's progress for the status command.
func (p *Printer) PrintStateSummary(st *types.PipelineState) {
	if st == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:     %s\n", truncate(st.Key, 48)))
	sb.WriteString(fmt.Sprintf("Company: %s\n", st.CompanyName))
	sb.WriteString(fmt.Sprintf("Role:    %s\n", st.JobTitle))
	sb.WriteString(fmt.Sprintf("Stage:   %s\n\n", st.CurrentStage))

	sb.WriteString("Completed stages:\n")
	if len(st.CompletedStages) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, stage := range st.CompletedStages {
		sb.WriteString(fmt.Sprintf("  ✓ %s\n", stage))
	}

	if len(st.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("\nErrors logged: %d\n", len(st.Errors)))
		count := min(len(st.Errors), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", st.Errors[i].Stage, truncate(st.Errors[i].Message, 40)))
		}
	}

	if st.PDFGenerated {
		sb.WriteString(fmt.Sprintf("\nPDF: %s\n", truncate(st.PDFPath, 48)))
	}

	p.printBox("PIPELINE STATUS", strings.TrimSuffix(sb.String(), "\n"))
}
