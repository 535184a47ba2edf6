package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KeithKrenek/resume-optimization/internal/types"
)

// Publication rewrites catalog field names to renderer field names: venue
// becomes journal, date becomes a bare year, and the URL is taken from the
// url field when present, otherwise constructed from the DOI. The catalog
// fields are cleared afterwards.
func Publication(p *types.SelectedPublication) {
	if p.Journal == "" && p.Venue != "" {
		p.Journal = p.Venue
	}
	if p.Date != "" {
		p.Year = ExtractYear(p.Date)
	} else if p.Year != "" {
		p.Year = ExtractYear(p.Year)
	}
	p.URL = publicationURL(p)
	p.Venue, p.Date, p.DOI = "", "", ""
}

func publicationURL(p *types.SelectedPublication) string {
	if p.URL != "" {
		return ensureHTTPS(p.URL)
	}
	if p.DOI != "" {
		doi := strings.TrimPrefix(strings.TrimPrefix(p.DOI, "https://doi.org/"), "http://doi.org/")
		return "https://doi.org/" + doi
	}
	return ""
}

// Education rewrites graduation_date to a year-only graduation field and
// falls back to the GPA when no details are present.
func Education(e *types.SelectedEducation) {
	if e.GraduationDate != "" {
		e.Graduation = ExtractYear(e.GraduationDate)
	} else if e.Graduation != "" {
		e.Graduation = ExtractYear(e.Graduation)
	}
	if e.Details == "" {
		e.Details = e.GPA
	}
	e.GraduationDate, e.GPA = "", ""
}

// EducationEntry converts a catalog education record to its normalized form.
func EducationEntry(entry map[string]any) types.SelectedEducation {
	var edu types.SelectedEducation
	if raw, err := json.Marshal(entry); err == nil {
		_ = json.Unmarshal(raw, &edu)
	}
	Education(&edu)
	return edu
}

// contactLinkFields are flattened link keys that must carry a URL scheme.
var contactLinkFields = []string{"linkedin", "github", "portfolio", "website"}

// Contact flattens a catalog contact record to a single string map. A nested
// "links" object merges into the top level, and link fields get an https
// prefix when the scheme is missing.
func Contact(raw map[string]any) map[string]string {
	contact := make(map[string]string, len(raw))
	for key, value := range raw {
		if key == "links" {
			continue
		}
		contact[key] = stringify(value)
	}
	if links, ok := raw["links"].(map[string]any); ok {
		for key, value := range links {
			contact[key] = stringify(value)
		}
	}
	for _, field := range contactLinkFields {
		if url := contact[field]; url != "" {
			contact[field] = ensureHTTPS(url)
		}
	}
	return contact
}

// WorkSample prefixes the sample URL with a scheme when missing.
func WorkSample(ws *types.SelectedWorkSample) {
	if ws.URL != "" {
		ws.URL = ensureHTTPS(ws.URL)
	}
}

func ensureHTTPS(url string) string {
	if strings.HasPrefix(url, "http") {
		return url
	}
	return "https://" + url
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
