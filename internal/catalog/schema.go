package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// lessonSchema describes the lesson payload served by the platform. The
// payload is checked against it before decoding so that a malformed catalog
// fails loudly at fetch time rather than surfacing as a half-built session.
var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":         map[string]any{"type": "string", "minLength": 1},
		"title":      map[string]any{"type": "string"},
		"percentage": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
		"challenges": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "string", "minLength": 1},
					"type": map[string]any{
						"type": "string",
						"enum": []any{
							"SELECT", "ASSIST", "FILL_BLANK", "TRANSLATION",
							"LISTENING", "SPEAKING", "MATCH_PAIRS", "SENTENCE_ORDER",
						},
					},
					"question":  map[string]any{"type": "string"},
					"order":     map[string]any{"type": "integer"},
					"completed": map[string]any{"type": "boolean"},
					"options": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":    map[string]any{"type": "string", "minLength": 1},
								"text":  map[string]any{"type": "string"},
								"image": map[string]any{"type": "string"},
								"audio": map[string]any{"type": "string"},
								"order": map[string]any{"type": "integer"},
							},
							"required": []any{"id", "order"},
						},
					},
				},
				"required": []any{"id", "type", "order", "options"},
			},
		},
	},
	"required": []any{"id", "challenges"},
}

var (
	compileOnce    sync.Once
	compiledLesson *jsonschema.Schema
	compileErr     error
)

// ValidatePayload checks a raw lesson payload against the catalog schema.
func ValidatePayload(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("catalog: invalid JSON: %w", err)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("catalog: compile lesson schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("catalog: payload validation failed: %w", err)
	}
	return nil
}

// DecodeLesson validates and decodes a lesson payload into a frozen Lesson.
func DecodeLesson(raw json.RawMessage) (*Lesson, error) {
	if err := ValidatePayload(raw); err != nil {
		return nil, err
	}
	var l Lesson
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("catalog: decode lesson: %w", err)
	}
	return NewLesson(l.ID, l.Title, l.Percentage, l.Challenges)
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(lessonSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lesson.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledLesson, compileErr = c.Compile(schemaURL)
	})
	return compiledLesson, compileErr
}
