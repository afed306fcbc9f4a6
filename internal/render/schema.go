package render

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrSchemaViolation indicates the report does not match the output schema.
var ErrSchemaViolation = errors.New("report violates output schema")

//go:embed battery_report.schema.json
var schemaJSON string

// Schema returns the JSON Schema the machine-readable report conforms to.
func Schema() string {
	return schemaJSON
}

// ValidatePayload checks a report against the embedded schema.
func ValidatePayload(payload Payload) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	payloadLoader := gojsonschema.NewGoLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, payloadLoader)
	if err != nil {
		return fmt.Errorf("validate report: %w", err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}

	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(details, "; "))
}
