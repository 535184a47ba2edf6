// Package types provides type definitions for structured data used throughout the resume tailoring pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SelectedExperience represents one work experience chosen from the source
// catalog. Content fields are exact copies from the catalog record identified
// by SourceID; only selection metadata is generated.
type SelectedExperience struct {
	SourceID       string   `json:"source_id"`
	RelevanceScore float64  `json:"relevance_score"`
	MatchReasons   []string `json:"match_reasons,omitempty"`

	Company            string         `json:"company"`
	Title              string         `json:"title"`
	Dates              string         `json:"dates"`
	Location           string         `json:"location,omitempty"`
	CoreDescription    string         `json:"core_description,omitempty"`
	KeyAchievements    []string       `json:"key_achievements"`
	QuantifiedOutcomes map[string]any `json:"quantified_outcomes,omitempty"`
	TechStack          []string       `json:"tech_stack,omitempty"`
	Methods            []string       `json:"methods,omitempty"`
	DomainTags         []string       `json:"domain_tags,omitempty"`

	// Persona variant override, when the catalog record carries audience-
	// specific achievement sets.
	PersonaVariantSelected string   `json:"persona_variant_selected,omitempty"`
	PersonaAchievements    []string `json:"persona_achievements,omitempty"`
}

// StructuredResponse holds the challenge/solution/impact breakdown some
// project records carry.
type StructuredResponse struct {
	Challenge string `json:"challenge,omitempty"`
	Solution  string `json:"solution,omitempty"`
	Impact    string `json:"impact,omitempty"`
}

// Empty reports whether no structured field is populated.
func (s *StructuredResponse) Empty() bool {
	return s == nil || (s.Challenge == "" && s.Solution == "" && s.Impact == "")
}

// SelectedProject represents one project chosen from the source catalog
type SelectedProject struct {
	SourceID       string   `json:"source_id"`
	RelevanceScore float64  `json:"relevance_score"`
	MatchReasons   []string `json:"match_reasons,omitempty"`

	Title              string              `json:"title"`
	Org                string              `json:"org,omitempty"`
	Dates              string              `json:"dates,omitempty"`
	CoreDescription    string              `json:"core_description,omitempty"`
	KeyAchievements    []string            `json:"key_achievements,omitempty"`
	QuantifiedOutcomes map[string]any      `json:"quantified_outcomes,omitempty"`
	TechStack          []string            `json:"tech_stack,omitempty"`
	Methods            []string            `json:"methods,omitempty"`
	DomainTags         []string            `json:"domain_tags,omitempty"`
	StructuredResponse *StructuredResponse `json:"structured_response,omitempty"`

	PersonaVariantSelected string   `json:"persona_variant_selected,omitempty"`
	PersonaAchievements    []string `json:"persona_achievements,omitempty"`
}

// SelectedPublication represents one publication chosen from the source
// catalog. Catalog records use venue/date/doi; the normalizer rewrites those
// into the renderer fields journal/year/url and clears the originals.
type SelectedPublication struct {
	SourceID       string  `json:"source_id,omitempty"`
	RelevanceScore float64 `json:"relevance_score,omitempty"`
	Title          string  `json:"title"`
	Authors        string  `json:"authors,omitempty"`
	Journal        string  `json:"journal,omitempty"`
	Year           string  `json:"year,omitempty"`
	URL            string  `json:"url,omitempty"`

	// Catalog field names, emptied during normalization.
	Venue string `json:"venue,omitempty"`
	Date  string `json:"date,omitempty"`
	DOI   string `json:"doi,omitempty"`
}

// SelectedWorkSample represents one portfolio work sample chosen from the source catalog
type SelectedWorkSample struct {
	SourceID       string     `json:"source_id,omitempty"`
	RelevanceScore float64    `json:"relevance_score,omitempty"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	URL            string     `json:"url,omitempty"`
	Tech           StringList `json:"tech,omitempty"`
}

// SelectedEducation represents an education record normalized to renderer
// field names (graduation carries the year only).
type SelectedEducation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	Graduation  string `json:"graduation,omitempty"`
	Details     string `json:"details,omitempty"`

	// Catalog field names, emptied during normalization.
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// CoverageAnalysis reports how well the selected content covers the job
// requirements. Counts derive from the JobAnalysis requirement set.
type CoverageAnalysis struct {
	TotalRequirements   int      `json:"total_requirements"`
	RequirementsCovered int      `json:"requirements_covered"`
	CoveragePercentage  int      `json:"coverage_percentage"`
	TechnicalCovered    []string `json:"technical_covered,omitempty"`
	LeadershipCovered   []string `json:"leadership_covered,omitempty"`
	DomainCovered       []string `json:"domain_covered,omitempty"`
	Unmatched           []string `json:"unmatched,omitempty"`
	StrongestMatches    []string `json:"strongest_matches,omitempty"`
}

// DeduplicationSummary records what near-duplicate analysis removed
type DeduplicationSummary struct {
	DuplicatesFound   int               `json:"duplicates_found"`
	DuplicatesRemoved int               `json:"duplicates_removed"`
	DuplicateDetails  []DuplicateDetail `json:"duplicate_details,omitempty"`
}

/// DuplicateDetail describes one duplicate group: the location kept, the
// locations removed, and the similarity as a percent string.
type DuplicateDetail struct {
	Kept       string   `json:"kept"`
	Removed    []string `json:"removed"`
	Similarity string   `json:"similarity"`
}

// ContentSelection represents the merged output of the parallel category
// selections plus catalog-sourced contact and education records.
type ContentSelection struct {
	SelectedExperiences  []SelectedExperience  `json:"selected_experiences"`
	SelectedProjects     []SelectedProject     `json:"selected_projects"`
	SelectedSkills       map[string][]string   `json:"selected_skills"`
	SelectedPublications []SelectedPublication `json:"selected_publications"`
	SelectedWorkSamples  []SelectedWorkSample  `json:"selected_work_samples"`
	SelectedEducation    []SelectedEducation   `json:"selected_education,omitempty"`
	ContactInfo          map[string]string     `json:"contact_info,omitempty"`
	SelectionStrategy    string                `json:"selection_strategy,omitempty"`
	SelectionNotes       string                `json:"selection_notes,omitempty"`
	CoverageAnalysis     *CoverageAnalysis     `json:"coverage_analysis,omitempty"`
	DeduplicationSummary *DeduplicationSummary `json:"deduplication_summary,omitempty"`
}

// SourceIDSet returns the set of citable source IDs in the selection.
// Drafted experience and project content must reference only IDs from this
// set; publications and work samples are copied whole and never cited.
func (s *ContentSelection) SourceIDSet() map[string]bool {
	ids := make(map[string]bool)
	for _, exp := range s.SelectedExperiences {
		if exp.SourceID != "" {
			ids[exp.SourceID] = true
		}
	}
	for _, proj := range s.SelectedProjects {
		if proj.SourceID != "" {
			ids[proj.SourceID] = true
		}
	}
	return ids
}
