package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

func TestPublication_VenueAndDOI(t *testing.T) {
	pub := types.SelectedPublication{
		Title:   "Adaptive Optics at Scale",
		Authors: "Krenek, K., et al.",
		Venue:   "IEEE Photonics",
		Date:    "March 2024",
		DOI:     "10.1109/TEST.2024.12345",
	}
	Publication(&pub)

	assert.Equal(t, "IEEE Photonics", pub.Journal)
	assert.Equal(t, "2024", pub.Year)
	assert.Equal(t, "https://doi.org/10.1109/TEST.2024.12345", pub.URL)
	assert.Empty(t, pub.Venue)
	assert.Empty(t, pub.Date)
	assert.Empty(t, pub.DOI)
}

func TestPublication_URLTakesPriorityOverDOI(t *testing.T) {
	pub := types.SelectedPublication{
		URL: "example.com/paper",
		DOI: "10.1109/TEST.2024.12345",
	}
	Publication(&pub)
	assert.Equal(t, "https://example.com/paper", pub.URL)
}

func TestPublication_ExistingDOIPrefixStripped(t *testing.T) {
	pub := types.SelectedPublication{DOI: "https://doi.org/10.1000/xyz"}
	Publication(&pub)
	assert.Equal(t, "https://doi.org/10.1000/xyz", pub.URL)
}

func TestPublication_HTTPURLKept(t *testing.T) {
	pub := types.SelectedPublication{URL: "http://arxiv.org/abs/1234"}
	Publication(&pub)
	assert.Equal(t, "http://arxiv.org/abs/1234", pub.URL)
}

func TestEducation_GraduationDateToYear(t *testing.T) {
	edu := types.SelectedEducation{
		Degree:         "M.S. in Computer Science",
		Institution:    "MIT",
		GraduationDate: "May 2019",
		GPA:            "3.9/4.0",
	}
	Education(&edu)

	assert.Equal(t, "2019", edu.Graduation)
	assert.Equal(t, "3.9/4.0", edu.Details, "details falls back to GPA")
	assert.Empty(t, edu.GraduationDate)
	assert.Empty(t, edu.GPA)
}

func TestEducation_ExistingDetailsKept(t *testing.T) {
	edu := types.SelectedEducation{Details: "Thesis on optics", GPA: "4.0"}
	Education(&edu)
	assert.Equal(t, "Thesis on optics", edu.Details)
}

func TestEducationEntry_FromCatalogRecord(t *testing.T) {
	entry := map[string]any{
		"degree":          "B.S. in Physics",
		"institution":     "Caltech",
		"location":        "Pasadena, CA",
		"graduation_date": "2015",
	}
	edu := EducationEntry(entry)
	assert.Equal(t, "B.S. in Physics", edu.Degree)
	assert.Equal(t, "Caltech", edu.Institution)
	assert.Equal(t, "Pasadena, CA", edu.Location)
	assert.Equal(t, "2015", edu.Graduation)
}

func TestContact_FlattensLinksAndPrefixesURLs(t *testing.T) {
	raw := map[string]any{
		"name":  "Keith Krenek",
		"email": "keith@example.com",
		"links": map[string]any{
			"linkedin": "linkedin.com/in/keith",
			"github":   "github.com/keith",
		},
	}
	contact := Contact(raw)

	assert.Equal(t, "Keith Krenek", contact["name"])
	assert.Equal(t, "https://linkedin.com/in/keith", contact["linkedin"])
	assert.Equal(t, "https://github.com/keith", contact["github"])
	_, hasLinks := contact["links"]
	assert.False(t, hasLinks, "nested links object must not survive flattening")
}

func TestContact_AlreadyFlatUnchanged(t *testing.T) {
	raw := map[string]any{
		"name":    "Keith Krenek",
		"website": "https://keith.dev",
		"phone":   "555-0100",
	}
	contact := Contact(raw)
	assert.Equal(t, "https://keith.dev", contact["website"])
	assert.Equal(t, "555-0100", contact["phone"])
}

func TestWorkSample_URLPrefix(t *testing.T) {
	ws := types.SelectedWorkSample{Name: "demo", URL: "github.com/keith/demo"}
	WorkSample(&ws)
	assert.Equal(t, "https://github.com/keith/demo", ws.URL)

	ws = types.SelectedWorkSample{Name: "demo"}
	WorkSample(&ws)
	assert.Empty(t, ws.URL)
}

func TestSelection_NormalizesAllSections(t *testing.T) {
	sel := &types.ContentSelection{
		SelectedExperiences: []types.SelectedExperience{
			{Dates: "2019-2025"},
		},
		SelectedProjects: []types.SelectedProject{
			{Dates: "October 2020 - Present"},
		},
		SelectedPublications: []types.SelectedPublication{
			{Venue: "NeurIPS", Date: "Dec 2023"},
		},
		SelectedWorkSamples: []types.SelectedWorkSample{
			{URL: "example.com/sample"},
		},
	}
	Selection(sel)

	assert.Equal(t, "Jan 2019 - Dec 2025", sel.SelectedExperiences[0].Dates)
	assert.Equal(t, "Oct 2020 - Present", sel.SelectedProjects[0].Dates)
	assert.Equal(t, "NeurIPS", sel.SelectedPublications[0].Journal)
	assert.Equal(t, "2023", sel.SelectedPublications[0].Year)
	assert.Equal(t, "https://example.com/sample", sel.SelectedWorkSamples[0].URL)
}

func TestWorkSample_TechCoercion(t *testing.T) {
	var ws types.SelectedWorkSample
	// Catalog authors sometimes write tech as a single string.
	err := ws.Tech.UnmarshalJSON([]byte(`"Python"`))
	assert.NoError(t, err)
	assert.Equal(t, types.StringList{"Python"}, ws.Tech)

	err = ws.Tech.UnmarshalJSON([]byte(`["Go", "Postgres"]`))
	assert.NoError(t, err)
	assert.Equal(t, types.StringList{"Go", "Postgres"}, ws.Tech)
}
