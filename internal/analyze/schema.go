package analyze

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// responseSchema describes the minimum shape a success payload must have
// before any field reaches the UI. The collaborator is duck-typed on its
// side; this is where malformed payloads become a RequestFailure instead of
// empty screens.
const responseSchema = `{
	"type": "object",
	"required": ["videoId", "script", "vocabulary", "quizBank"],
	"properties": {
		"videoId": {"type": "string", "minLength": 1},
		"title": {"type": "string"},
		"script": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["time", "text", "kr"],
				"properties": {
					"time": {"type": "number", "minimum": 0},
					"text": {"type": "string"},
					"kr": {"type": "string"}
				}
			}
		},
		"vocabulary": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["word", "meaning"],
				"properties": {
					"word": {"type": "string", "minLength": 1},
					"type": {"type": "string"},
					"meaning": {"type": "string"}
				}
			}
		},
		"quizBank": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question", "options", "answer"],
				"properties": {
					"question": {"type": "string", "minLength": 1},
					"options": {
						"type": "array",
						"items": {"type": "string"},
						"minItems": 2
					},
					"answer": {"type": "integer", "minimum": 0},
					"rationale": {"type": "string"},
					"difficulty": {"type": "string"}
				}
			}
		}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validatePayload checks raw JSON against the response schema, plus the one
// cross-field constraint a schema cannot express: each answer index must be
// in range for its options.
func validatePayload(raw json.RawMessage) error {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(responseSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://analyze-response.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://analyze-response.json")
	})
	if compileErr != nil {
		return compileErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
