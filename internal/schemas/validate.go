// Package schemas provides JSON Schema validation for the report
// payloads served by the API.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ReportSchemaPath is the repo-relative location of the report schema.
const ReportSchemaPath = "schemas/report.schema.json"

// ResolveSchemaPath attempts to find a schema file by trying multiple
// common path resolutions: relative to the working directory, then one
// and two levels up. Returns the first path that exists, or empty
// string if none found. Useful because tests and the CLI run from
// different working directories.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema
// itself. Seeing one at startup is a fatal configuration error, not a
// per-request condition.
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

// LoadSchema compiles the schema at path.
func LoadSchema(path string) (*gojsonschema.Schema, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, &SchemaLoadError{Path: path, Message: "cannot resolve path", Cause: err}
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, &SchemaLoadError{Path: path, Message: "schema file not found", Cause: err}
	}

	loader := gojsonschema.NewReferenceLoader("file://" + absPath)
	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, &SchemaLoadError{Path: path, Message: "invalid schema", Cause: err}
	}
	return schema, nil
}

// ValidateBytes validates a JSON document against the schema at
// schemaPath. A non-nil error is either a *SchemaLoadError or a
// *ValidationError.
func ValidateBytes(schemaPath string, document []byte) error {
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "document is not valid JSON", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, resErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resErr.Field(),
			Message: resErr.Description(),
		})
	}
	return ve
}
