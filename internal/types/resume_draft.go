// Package types provides type definitions for structured data used throughout the resume tailoring pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// DraftAchievement represents a single achievement bullet with its source citation
type DraftAchievement struct {
	Text     string `json:"text"`
	SourceID string `json:"source_id"`
}

// DraftExperience represents one experience entry in a drafted resume
type DraftExperience struct {
	SourceID     string             `json:"source_id"`
	Company      string             `json:"company"`
	Title        string             `json:"title"`
	Dates        string             `json:"dates"`
	Location     string             `json:"location,omitempty"`
	Achievements []DraftAchievement `json:"achievements"`
}

// DraftProject represents one bulleted project entry in a drafted resume
type DraftProject struct {
	SourceID string   `json:"source_id"`
	Name     string   `json:"name"`
	Dates    string   `json:"dates,omitempty"`
	Bullets  []string `json:"bullets"`
}

// DraftEducation represents one education entry in a drafted resume
type DraftEducation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	Graduation  string `json:"graduation,omitempty"`
	Details     string `json:"details,omitempty"`
}

// DraftPublication represents one publication entry in a drafted resume
type DraftPublication struct {
	Title   string `json:"title"`
	Authors string `json:"authors,omitempty"`
	Journal string `json:"journal,omitempty"`
	Year    string `json:"year,omitempty"`
	URL     string `json:"url,omitempty"`
}

// DraftWorkSample represents one portfolio entry in a drafted resume
type DraftWorkSample struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Tech        []string `json:"tech,omitempty"`
}

// ResumeDraft represents a complete drafted resume. Every experience entry,
// achievement, and project carries a source_id tracing it back to the content
// selection.
type ResumeDraft struct {
	Contact             map[string]string   `json:"contact"`
	ProfessionalSummary string              `json:"professional_summary"`
	TechnicalExpertise  map[string][]string `json:"technical_expertise,omitempty"`
	Experience          []DraftExperience   `json:"experience"`
	BulletedProjects    []DraftProject      `json:"bulleted_projects,omitempty"`
	WorkSamples         []DraftWorkSample   `json:"work_samples,omitempty"`
	Education           []DraftEducation    `json:"education"`
	Publications        []DraftPublication  `json:"publications,omitempty"`
	AwardsRecognition   []string            `json:"awards_recognition,omitempty"`
	Citations           map[string]string   `json:"citations,omitempty"`
}

// TotalAchievements counts achievement bullets across all experience entries
func (d *ResumeDraft) TotalAchievements() int {
	n := 0
	for _, exp := range d.Experience {
		n += len(exp.Achievements)
	}
	return n
}

// BuildCitations maps draft locations to the source IDs they cite. Experience
// entries map by entry index, achievements by entry and bullet index (falling
// back to the entry's source when the bullet carries none), projects by entry
// index.
func (d *ResumeDraft) BuildCitations() map[string]string {
	cites := make(map[string]string)
	for i, exp := range d.Experience {
		if exp.SourceID != "" {
			cites[fmt.Sprintf("experience[%d]", i)] = exp.SourceID
		}
		for j, ach := range exp.Achievements {
			id := ach.SourceID
			if id == "" {
				id = exp.SourceID
			}
			if id != "" {
				cites[fmt.Sprintf("experience[%d].achievements[%d]", i, j)] = id
			}
		}
	}
	for i, proj := range d.BulletedProjects {
		if proj.SourceID != "" {
			cites[fmt.Sprintf("projects[%d]", i)] = proj.SourceID
		}
	}
	return cites
}
