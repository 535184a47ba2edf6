package rendering

import (
	"embed"
	"html/template"
	"sort"
	"strings"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

//go:embed templates/resume.html.tmpl
var templateFS embed.FS

// Layout controls which resume sections render and in what shape. An empty
// section list renders everything the draft contains.
type Layout struct {
	Sections []string
}

// contact fields rendered as labeled header items rather than links.
var headerContactFields = map[string]bool{
	"name":     true,
	"email":    true,
	"phone":    true,
	"location": true,
}

type skillGroup struct {
	Category string
	Items    string
}

// resumeView is the flattened, render-ready shape handed to the template.
type resumeView struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Links    []string

	Summary      string
	Skills       []skillGroup
	Experience   []types.DraftExperience
	Projects     []types.DraftProject
	WorkSamples  []types.DraftWorkSample
	Education    []types.DraftEducation
	Publications []types.DraftPublication
	Awards       []string

	Show map[string]bool
}

// RenderHTML renders a validated resume draft into a self-contained HTML
// document ready for PDF printing.
func RenderHTML(draft *types.ResumeDraft, layout Layout) (string, error) {
	if draft == nil {
		return "", &RenderError{Message: "draft is nil"}
	}

	tmpl, err := template.ParseFS(templateFS, "templates/resume.html.tmpl")
	if err != nil {
		return "", &TemplateError{Message: "failed to parse resume template", Cause: err}
	}

	view := buildView(draft, layout)

	var out strings.Builder
	if err := tmpl.Execute(&out, view); err != nil {
		return "", &TemplateError{Message: "failed to execute resume template", Cause: err}
	}
	return out.String(), nil
}

// buildView flattens the draft into template data. Skill categories render
// in stable alphabetical order.
func buildView(draft *types.ResumeDraft, layout Layout) *resumeView {
	view := &resumeView{
		Name:         draft.Contact["name"],
		Email:        draft.Contact["email"],
		Phone:        draft.Contact["phone"],
		Location:     draft.Contact["location"],
		Summary:      draft.ProfessionalSummary,
		Experience:   draft.Experience,
		Projects:     draft.BulletedProjects,
		WorkSamples:  draft.WorkSamples,
		Education:    draft.Education,
		Publications: draft.Publications,
		Awards:       draft.AwardsRecognition,
		Show:         sectionSet(layout),
	}

	var linkKeys []string
	for key := range draft.Contact {
		if !headerContactFields[key] && draft.Contact[key] != "" {
			linkKeys = append(linkKeys, key)
		}
	}
	sort.Strings(linkKeys)
	for _, key := range linkKeys {
		view.Links = append(view.Links, draft.Contact[key])
	}

	var categories []string
	for category := range draft.TechnicalExpertise {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		items := draft.TechnicalExpertise[category]
		if len(items) == 0 {
			continue
		}
		view.Skills = append(view.Skills, skillGroup{
			Category: category,
			Items:    strings.Join(items, ", "),
		})
	}

	return view
}

// sectionSet converts the layout's section list to a membership set; an
// empty layout shows every section.
func sectionSet(layout Layout) map[string]bool {
	show := map[string]bool{}
	if len(layout.Sections) == 0 {
		for _, section := range []string{
			"contact", "professional_summary", "technical_expertise",
			"experience", "bulleted_projects", "work_samples",
			"education", "publications", "awards_recognition",
		} {
			show[section] = true
		}
		return show
	}
	for _, section := range layout.Sections {
		show[section] = true
	}
	return show
}
