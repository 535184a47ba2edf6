// Package dedup removes near-duplicate achievement text across resume
// sections using fuzzy string matching. No generation calls are involved.
package dedup

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/KeithKrenek/resume-optimization/internal/similarity"
	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// DefaultThreshold is the minimum similarity ratio treated as a duplicate.
const DefaultThreshold = 0.80

// minTextLength filters out short strings where fuzzy matching produces
// false positives. Texts must be strictly longer to participate.
const minTextLength = 20

// Section priorities. When a duplicate group spans sections, the copy in the
// lowest-numbered section is kept.
const (
	priorityExperience = 1
	priorityProject    = 2
	priorityWorkSample = 3
)

const (
	sectionExperience = "experience"
	sectionProject    = "project"
	sectionWorkSample = "work_sample"
)

// candidate is one extracted text with enough addressing to remove it.
type candidate struct {
	text      string
	location  string
	section   string
	priority  int
	parent    int
	achIndex  int
	persona   bool
	structKey string
}

type group struct {
	kept       candidate
	removed    []candidate
	similarity float64
}

// Deduplicator finds and removes duplicated achievement text
type Deduplicator struct {
	threshold float64
}

// New creates a Deduplicator. A non-positive threshold selects the default.
func New(threshold float64) *Deduplicator {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Deduplicator{threshold: threshold}
}

// Deduplicate removes duplicate content from the selection in place and
// returns a summary of what was removed. Duplicate groups keep the copy from
// the highest-priority section (experience over project over work sample),
// breaking ties by text length. Entries left without any achievement text are
// dropped entirely. When duplicates were found the summary is also attached
// to the selection.
func (d *Deduplicator) Deduplicate(sel *types.ContentSelection) *types.DeduplicationSummary {
	texts := extractTexts(sel)
	groups := d.findDuplicates(texts)
	summary := &types.DeduplicationSummary{}
	if len(groups) == 0 {
		return summary
	}

	removeDuplicates(sel, groups)

	summary.DuplicatesFound = len(groups)
	for _, g := range groups {
		summary.DuplicatesRemoved += len(g.removed)
		detail := types.DuplicateDetail{
			Kept:       g.kept.location,
			Similarity: fmt.Sprintf("%.0f%%", g.similarity*100),
		}
		for _, r := range g.removed {
			detail.Removed = append(detail.Removed, r.location)
		}
		summary.DuplicateDetails = append(summary.DuplicateDetails, detail)
	}
	sel.DeduplicationSummary = summary

	zap.L().Info("deduplication removed content",
		zap.Int("groups", summary.DuplicatesFound),
		zap.Int("removed", summary.DuplicatesRemoved))
	return summary
}

// extractTexts gathers every achievement and description with its address.
func extractTexts(sel *types.ContentSelection) []candidate {
	var texts []candidate

	for i, exp := range sel.SelectedExperiences {
		for j, ach := range exp.KeyAchievements {
			texts = append(texts, candidate{
				text:     ach,
				location: fmt.Sprintf("experience[%d].key_achievements[%d]", i, j),
				section:  sectionExperience,
				priority: priorityExperience,
				parent:   i,
				achIndex: j,
			})
		}
		for j, ach := range exp.PersonaAchievements {
			texts = append(texts, candidate{
				text:     ach,
				location: fmt.Sprintf("experience[%d].persona_achievements[%d]", i, j),
				section:  sectionExperience,
				priority: priorityExperience,
				parent:   i,
				achIndex: j,
				persona:  true,
			})
		}
	}

	for i, proj := range sel.SelectedProjects {
		for j, ach := range proj.KeyAchievements {
			texts = append(texts, candidate{
				text:     ach,
				location: fmt.Sprintf("project[%d].key_achievements[%d]", i, j),
				section:  sectionProject,
				priority: priorityProject,
				parent:   i,
				achIndex: j,
			})
		}
		if sr := proj.StructuredResponse; sr != nil {
			for _, f := range []struct{ key, text string }{
				{"challenge", sr.Challenge},
				{"solution", sr.Solution},
				{"impact", sr.Impact},
			} {
				if f.text == "" {
					continue
				}
				texts = append(texts, candidate{
					text:      f.text,
					location:  fmt.Sprintf("project[%d].structured_response.%s", i, f.key),
					section:   sectionProject,
					priority:  priorityProject,
					parent:    i,
					achIndex:  -1,
					structKey: f.key,
				})
			}
		}
	}

	for i, ws := range sel.SelectedWorkSamples {
		texts = append(texts, candidate{
			text:     ws.Description,
			location: fmt.Sprintf("work_sample[%d].description", i),
			section:  sectionWorkSample,
			priority: priorityWorkSample,
			parent:   i,
			achIndex: -1,
		})
	}

	filtered := texts[:0]
	for _, t := range texts {
		if utf8.RuneCountInString(t.text) > minTextLength {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// findDuplicates greedily groups texts whose pairwise similarity meets the
// threshold. Each text joins at most one group.
func (d *Deduplicator) findDuplicates(texts []candidate) []group {
	var groups []group
	processed := make(map[int]bool)

	for i := range texts {
		if processed[i] {
			continue
		}
		var members []int
		maxSim := 0.0
		for j := range texts {
			if i == j || processed[j] {
				continue
			}
			sim := similarity.Ratio(texts[i].text, texts[j].text)
			if sim >= d.threshold {
				members = append(members, j)
				processed[j] = true
				if sim > maxSim {
					maxSim = sim
				}
			}
		}
		if len(members) == 0 {
			continue
		}
		processed[i] = true

		all := make([]candidate, 0, len(members)+1)
		all = append(all, texts[i])
		for _, j := range members {
			all = append(all, texts[j])
		}
		sort.SliceStable(all, func(a, b int) bool {
			if all[a].priority != all[b].priority {
				return all[a].priority < all[b].priority
			}
			return len(all[a].text) > len(all[b].text)
		})
		groups = append(groups, group{kept: all[0], removed: all[1:], similarity: maxSim})
	}
	return groups
}

// removeDuplicates strips the removed candidates from the selection.
func removeDuplicates(sel *types.ContentSelection, groups []group) {
	var exp, proj, samples []candidate
	for _, g := range groups {
		for _, r := range g.removed {
			switch r.section {
			case sectionExperience:
				exp = append(exp, r)
			case sectionProject:
				proj = append(proj, r)
			case sectionWorkSample:
				samples = append(samples, r)
			}
		}
	}
	if len(exp) > 0 {
		sel.SelectedExperiences = removeFromExperiences(sel.SelectedExperiences, exp)
	}
	if len(proj) > 0 {
		sel.SelectedProjects = removeFromProjects(sel.SelectedProjects, proj)
	}
	if len(samples) > 0 {
		sel.SelectedWorkSamples = removeFromWorkSamples(sel.SelectedWorkSamples, samples)
	}
}

func removeFromExperiences(experiences []types.SelectedExperience, removals []candidate) []types.SelectedExperience {
	cleaned := make([]types.SelectedExperience, 0, len(experiences))
	for i, e := range experiences {
		keyDrop := make(map[int]bool)
		personaDrop := make(map[int]bool)
		for _, r := range removals {
			if r.parent != i {
				continue
			}
			if r.persona {
				personaDrop[r.achIndex] = true
			} else {
				keyDrop[r.achIndex] = true
			}
		}
		e.KeyAchievements = dropIndices(e.KeyAchievements, keyDrop)
		e.PersonaAchievements = dropIndices(e.PersonaAchievements, personaDrop)
		if len(e.KeyAchievements) > 0 || len(e.PersonaAchievements) > 0 {
			cleaned = append(cleaned, e)
		}
	}
	return cleaned
}

func removeFromProjects(projects []types.SelectedProject, removals []candidate) []types.SelectedProject {
	cleaned := make([]types.SelectedProject, 0, len(projects))
	for i, p := range projects {
		drop := make(map[int]bool)
		for _, r := range removals {
			// Structured-response fields are reported but never removed.
			if r.parent == i && r.structKey == "" {
				drop[r.achIndex] = true
			}
		}
		p.KeyAchievements = dropIndices(p.KeyAchievements, drop)
		if len(p.KeyAchievements) > 0 || !p.StructuredResponse.Empty() {
			cleaned = append(cleaned, p)
		}
	}
	return cleaned
}

func removeFromWorkSamples(samples []types.SelectedWorkSample, removals []candidate) []types.SelectedWorkSample {
	drop := make(map[int]bool)
	for _, r := range removals {
		drop[r.parent] = true
	}
	cleaned := make([]types.SelectedWorkSample, 0, len(samples))
	for i, s := range samples {
		if !drop[i] {
			cleaned = append(cleaned, s)
		}
	}
	return cleaned
}

func dropIndices(items []string, drop map[int]bool) []string {
	if len(drop) == 0 {
		return items
	}
	kept := make([]string, 0, len(items))
	for i, item := range items {
		if !drop[i] {
			kept = append(kept, item)
		}
	}
	return kept
}
