package schemas

import (
	"embed"
	"sort"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed definitions/*.schema.json
var definitionFS embed.FS

// documentSchemas maps document names to their embedded schema files.
// style_edit returns a complete draft, so it shares the resume_draft schema.
var documentSchemas = map[string]string{
	"job_analysis":          "definitions/job_analysis.schema.json",
	"experience_selection":  "definitions/experience_selection.schema.json",
	"project_selection":     "definitions/project_selection.schema.json",
	"skills_selection":      "definitions/skills_selection.schema.json",
	"publication_selection": "definitions/publication_selection.schema.json",
	"work_sample_selection": "definitions/work_sample_selection.schema.json",
	"resume_draft":          "definitions/resume_draft.schema.json",
	"draft_validation":      "definitions/draft_validation.schema.json",
	"style_edit":            "definitions/resume_draft.schema.json",
	"final_qa":              "definitions/final_qa.schema.json",
	"source_catalog":        "definitions/source_catalog.schema.json",
}

var (
	compileOnce sync.Once
	compiled    map[string]*gojsonschema.Schema
	compileErr  error
)

// compileAll parses every embedded schema once. Compilation failures are
// programmer errors and surface on first validation.
func compileAll() {
	compiled = make(map[string]*gojsonschema.Schema, len(documentSchemas))
	for name, file := range documentSchemas {
		data, err := definitionFS.ReadFile(file)
		if err != nil {
			compileErr = &SchemaLoadError{Name: name, Message: "embedded schema missing", Cause: err}
			return
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if err != nil {
			compileErr = &SchemaLoadError{Name: name, Message: "embedded schema does not parse", Cause: err}
			return
		}
		compiled[name] = schema
	}
}

// ValidateDocument validates a JSON document against the schema registered
// under name. Documents without a registered schema pass.
func ValidateDocument(name string, doc []byte) error {
	compileOnce.Do(compileAll)
	if compileErr != nil {
		return compileErr
	}

	schema, ok := compiled[name]
	if !ok {
		return nil
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &SchemaLoadError{Name: name, Message: "document could not be validated", Cause: err}
	}
	if result.Valid() {
		return nil
	}
	return newValidationError(name, result)
}

// DocumentNames returns the registered document names in sorted order.
func DocumentNames() []string {
	names := make([]string, 0, len(documentSchemas))
	for name := range documentSchemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
