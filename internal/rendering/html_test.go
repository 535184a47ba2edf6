package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

func sampleDraft() *types.ResumeDraft {
	return &types.ResumeDraft{
		Contact: map[string]string{
			"name":     "Jordan Reyes",
			"email":    "jordan@example.com",
			"phone":    "555-0100",
			"location": "Denver, CO",
			"github":   "https://github.com/jreyes",
		},
		ProfessionalSummary: "Engineer with a decade of distributed-systems work.",
		TechnicalExpertise: map[string][]string{
			"Languages":      {"Go", "Python"},
			"Infrastructure": {"Kubernetes", "Terraform"},
		},
		Experience: []types.DraftExperience{
			{
				SourceID: "exp_acme",
				Company:  "Acme Corp",
				Title:    "Staff Engineer",
				Dates:    "Jan 2020 - Present",
				Achievements: []types.DraftAchievement{
					{Text: "Led migration of billing to event sourcing", SourceID: "exp_acme"},
				},
			},
		},
		BulletedProjects: []types.DraftProject{
			{SourceID: "proj_etl", Name: "ETL Rebuild", Bullets: []string{"Cut nightly batch from 6h to 40m"}},
		},
		Education: []types.DraftEducation{
			{Degree: "BS Computer Science", Institution: "State University", Graduation: "2014"},
		},
	}
}

func TestRenderHTML_AllSections(t *testing.T) {
	html, err := RenderHTML(sampleDraft(), Layout{})
	require.NoError(t, err)

	assert.Contains(t, html, "Jordan Reyes")
	assert.Contains(t, html, "jordan@example.com")
	assert.Contains(t, html, "https://github.com/jreyes")
	assert.Contains(t, html, "distributed-systems work")
	assert.Contains(t, html, "Staff Engineer")
	assert.Contains(t, html, "Led migration of billing to event sourcing")
	assert.Contains(t, html, "ETL Rebuild")
	assert.Contains(t, html, "State University")

	// Skill categories render alphabetically.
	infra := strings.Index(html, "Infrastructure")
	langs := strings.Index(html, "Languages")
	require.Greater(t, infra, 0)
	require.Greater(t, langs, 0)
	assert.Less(t, infra, langs)
}

func TestRenderHTML_LayoutFiltersSections(t *testing.T) {
	layout := Layout{Sections: []string{"contact", "professional_summary", "experience", "education"}}
	html, err := RenderHTML(sampleDraft(), layout)
	require.NoError(t, err)

	assert.Contains(t, html, "Staff Engineer")
	assert.NotContains(t, html, "ETL Rebuild", "projects section was not in the layout")
	assert.NotContains(t, html, "Technical Expertise")
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	draft := sampleDraft()
	draft.ProfessionalSummary = `Shipped <script>alert("x")</script> & more`

	html, err := RenderHTML(draft, Layout{})
	require.NoError(t, err)

	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTML_NilDraft(t *testing.T) {
	_, err := RenderHTML(nil, Layout{})
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
}

func TestRenderHTML_EmptySectionsOmitted(t *testing.T) {
	draft := sampleDraft()
	draft.Publications = nil
	draft.AwardsRecognition = nil
	draft.WorkSamples = nil

	html, err := RenderHTML(draft, Layout{})
	require.NoError(t, err)

	assert.NotContains(t, html, "Publications")
	assert.NotContains(t, html, "Awards")
	assert.NotContains(t, html, "Selected Work")
}
