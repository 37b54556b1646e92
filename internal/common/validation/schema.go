package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// followUpSchema constrains the follow-up request body. Both fields are
// required and must be non-empty strings.
const followUpSchema = `{
	"type": "object",
	"properties": {
		"sessionId": {"type": "string", "minLength": 1},
		"query": {"type": "string", "minLength": 1}
	},
	"required": ["sessionId", "query"],
	"additionalProperties": true
}`

var followUpLoader = gojsonschema.NewStringLoader(followUpSchema)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateFollowUp checks a decoded follow-up body against the schema.
func ValidateFollowUp(body map[string]interface{}) (*ValidationResult, error) {
	result, err := gojsonschema.Validate(followUpLoader, gojsonschema.NewGoLoader(body))
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, resErr := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   resErr.Field(),
			Message: resErr.Description(),
		})
	}
	return out, nil
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}
