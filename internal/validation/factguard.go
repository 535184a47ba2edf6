package validation

import (
	"fmt"
	"maps"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// VerifyFactsPreserved compares a draft before and after style editing and
// lists every factual field the edit changed. Contact details, entry counts,
// company/title/dates, and all source ids must survive editing; wording is
// the only thing an editor may touch.
func VerifyFactsPreserved(original, edited *types.ResumeDraft) (bool, []string) {
	var issues []string

	if !maps.Equal(original.Contact, edited.Contact) {
		issues = append(issues, "Contact information was modified")
	}

	if len(original.Experience) != len(edited.Experience) {
		issues = append(issues, fmt.Sprintf("Experience count changed: %d -> %d",
			len(original.Experience), len(edited.Experience)))
	}
	for i := 0; i < min(len(original.Experience), len(edited.Experience)); i++ {
		orig, edit := original.Experience[i], edited.Experience[i]
		if orig.Company != edit.Company {
			issues = append(issues, fmt.Sprintf("Experience %d: Company changed", i))
		}
		if orig.Title != edit.Title {
			issues = append(issues, fmt.Sprintf("Experience %d: Title changed", i))
		}
		if orig.Dates != edit.Dates {
			issues = append(issues, fmt.Sprintf("Experience %d: Dates changed", i))
		}
		if orig.SourceID != edit.SourceID {
			issues = append(issues, fmt.Sprintf("Experience %d: source_id changed", i))
		}

		if len(orig.Achievements) != len(edit.Achievements) {
			issues = append(issues, fmt.Sprintf("Experience %d: Achievement count changed", i))
		}
		for j := 0; j < min(len(orig.Achievements), len(edit.Achievements)); j++ {
			if orig.Achievements[j].SourceID != edit.Achievements[j].SourceID {
				issues = append(issues, fmt.Sprintf("Experience %d, Achievement %d: source_id changed", i, j))
			}
		}
	}

	if len(original.BulletedProjects) != len(edited.BulletedProjects) {
		issues = append(issues, fmt.Sprintf("Project count changed: %d -> %d",
			len(original.BulletedProjects), len(edited.BulletedProjects)))
	}
	for i := 0; i < min(len(original.BulletedProjects), len(edited.BulletedProjects)); i++ {
		if original.BulletedProjects[i].SourceID != edited.BulletedProjects[i].SourceID {
			issues = append(issues, fmt.Sprintf("Project %d: source_id changed", i))
		}
	}

	return len(issues) == 0, issues
}
