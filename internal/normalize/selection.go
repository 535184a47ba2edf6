package normalize

import (
	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// Selection canonicalizes an aggregated content selection in place: date
// ranges on experiences and projects, publication field names, and work
// sample URLs. Education and contact records are normalized when the
// selection is assembled, so they are not touched here.
func Selection(sel *types.ContentSelection) {
	if sel == nil {
		return
	}
	for i := range sel.SelectedExperiences {
		sel.SelectedExperiences[i].Dates = FormatDateRange(sel.SelectedExperiences[i].Dates)
	}
	for i := range sel.SelectedProjects {
		sel.SelectedProjects[i].Dates = FormatDateRange(sel.SelectedProjects[i].Dates)
	}
	for i := range sel.SelectedPublications {
		Publication(&sel.SelectedPublications[i])
	}
	for i := range sel.SelectedWorkSamples {
		WorkSample(&sel.SelectedWorkSamples[i])
	}
}
