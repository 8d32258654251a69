// Package schemas provides JSON Schema validation for import feeds.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed linkedin_job.schema.json
var linkedInJobSchema []byte

// maxReportedFieldErrors caps how many schema violations are kept on a ValidationError.
const maxReportedFieldErrors = 20

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
	// Total counts every violation, including those dropped from Errors.
	Total int
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema or document
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	if ve.Total > len(ve.Errors) {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", ve.Total-len(ve.Errors)))
	}
	return sb.String()
}

// Summary describes the first violation on one line, noting how many others there are.
func (ve *ValidationError) Summary() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	first := ve.Errors[0]
	summary := first.Field + ": " + first.Message
	if ve.Total > 1 {
		summary += fmt.Sprintf(" (and %d more)", ve.Total-1)
	}
	return summary
}

// LinkedInJobSchema returns the JSON Schema of one LinkedIn export record.
func LinkedInJobSchema() []byte {
	return linkedInJobSchema
}

// ValidateLinkedInJob checks that one raw feed record is an object whose known
// fields have the JSON types the importer decodes them into.
func ValidateLinkedInJob(record []byte) error {
	return ValidateJSONBytes("linkedin_job.schema.json", linkedInJobSchema, record)
}

// ValidateJSONBytes validates JSON document content against schema content.
// name identifies the schema in load errors.
func ValidateJSONBytes(name string, schema, document []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    name,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	all := result.Errors()
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, min(len(all), maxReportedFieldErrors)),
		Total:  len(all),
	}

	for _, desc := range all {
		if len(validationErr.Errors) == maxReportedFieldErrors {
			break
		}
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
