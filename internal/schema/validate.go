package schema

import (
	"encoding/json"

	"github.com/jonathan/placement-readiness/internal/taxonomy"
	"github.com/xeipuuv/gojsonschema"
)

// IsValidEntry reports whether a raw stored record is usable: a JSON object
// with a non-empty string id and a string-typed jdText (empty allowed).
// Anything else is treated as corrupt and filtered out of listings.
func IsValidEntry(data []byte) bool {
	var probe struct {
		ID     *string `json:"id"`
		JDText *string `json:"jdText"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	if probe.ID == nil || *probe.ID == "" {
		return false
	}
	return probe.JDText != nil
}

// entrySchema is the JSON Schema for the canonical persisted entry. Legacy
// records fail it by design; it backs strict validation tooling, not the
// lenient read path.
const entrySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "AnalysisEntry",
  "type": "object",
  "required": ["id", "createdAt", "updatedAt", "jdText", "extractedSkills",
               "roundMapping", "checklist", "plan7Days", "questions",
               "baseScore", "finalScore", "skillConfidenceMap"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "createdAt": {"type": "string"},
    "updatedAt": {"type": "string"},
    "company": {"type": "string"},
    "role": {"type": "string"},
    "jdText": {"type": "string"},
    "extractedSkills": {
      "type": "object",
      "required": ["coreCS", "languages", "web", "data", "cloud", "testing", "other"],
      "properties": {
        "coreCS": {"$ref": "#/definitions/skillList"},
        "languages": {"$ref": "#/definitions/skillList"},
        "web": {"$ref": "#/definitions/skillList"},
        "data": {"$ref": "#/definitions/skillList"},
        "cloud": {"$ref": "#/definitions/skillList"},
        "testing": {"$ref": "#/definitions/skillList"},
        "other": {"$ref": "#/definitions/skillList"}
      }
    },
    "roundMapping": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["roundTitle", "focusAreas", "whyItMatters"],
        "properties": {
          "roundTitle": {"type": "string"},
          "focusAreas": {"$ref": "#/definitions/skillList"},
          "whyItMatters": {"type": "string"}
        }
      }
    },
    "checklist": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["roundTitle", "items"],
        "properties": {
          "roundTitle": {"type": "string"},
          "items": {"type": "array", "minItems": 0, "items": {"type": "string"}}
        }
      }
    },
    "plan7Days": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["day", "focus", "tasks"],
        "properties": {
          "day": {"type": "string"},
          "focus": {"type": "string"},
          "tasks": {"$ref": "#/definitions/skillList"}
        }
      }
    },
    "questions": {"type": "array", "maxItems": 10, "items": {"type": "string"}},
    "baseScore": {"type": "integer", "minimum": 0, "maximum": 100},
    "finalScore": {"type": "integer", "minimum": 0, "maximum": 100},
    "skillConfidenceMap": {
      "type": "object",
      "additionalProperties": {"enum": ["know", "practice"]}
    },
    "companyIntel": {"type": ["object", "null"]}
  },
  "definitions": {
    "skillList": {"type": "array", "items": {"type": "string"}}
  }
}`

// ValidateCanonical checks a raw record against the canonical entry schema.
// Returns nil when valid; the gojsonschema result error otherwise.
func ValidateCanonical(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(entrySchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaError{Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}

func categoryDisplayOrder() []string {
	return append(append([]string{}, taxonomy.CategoryOrder...), taxonomy.CategoryOther)
}
