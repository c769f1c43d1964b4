package adapt

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// lessonSchema pins the structured-lesson contract: an object missing any
// required top-level key, or with the wrong item counts, is rejected whole.
const lessonSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["Summary", "Vocabulary", "Questions", "Draw-it", "Review Plan"],
  "properties": {
    "Summary": {
      "type": "array",
      "minItems": 5,
      "maxItems": 7,
      "items": {"type": "string"}
    },
    "Vocabulary": {
      "type": "array",
      "minItems": 3,
      "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["term", "definition", "example"],
        "properties": {
          "term": {"type": "string"},
          "definition": {"type": "string"},
          "example": {"type": "string"}
        }
      }
    },
    "Questions": {
      "type": "object",
      "required": ["trueFalse", "mcq", "shortAnswer"],
      "properties": {
        "trueFalse": {
          "type": "object",
          "required": ["q", "answer"],
          "properties": {
            "q": {"type": "string"},
            "answer": {"type": "boolean"},
            "explain": {"type": "string"}
          }
        },
        "mcq": {
          "type": "object",
          "required": ["q", "options", "answer"],
          "properties": {
            "q": {"type": "string"},
            "options": {
              "type": "array",
              "minItems": 4,
              "maxItems": 4,
              "items": {"type": "string"}
            },
            "answer": {"type": "string"},
            "explain": {"type": "string"}
          }
        },
        "shortAnswer": {
          "type": "object",
          "required": ["q", "idealAnswer", "rubric"],
          "properties": {
            "q": {"type": "string"},
            "idealAnswer": {"type": "string"},
            "rubric": {"type": "array", "items": {"type": "string"}}
          }
        }
      }
    },
    "Draw-it": {
      "type": "object",
      "required": ["title", "labels", "caption"],
      "properties": {
        "title": {"type": "string"},
        "labels": {
          "type": "array",
          "minItems": 3,
          "maxItems": 3,
          "items": {"type": "string"}
        },
        "caption": {"type": "string"}
      }
    },
    "Review Plan": {
      "type": "array",
      "minItems": 2,
      "maxItems": 2,
      "items": {
        "type": "object",
        "required": ["when", "minutes", "plan"],
        "properties": {
          "when": {"type": "string"},
          "minutes": {"type": "number"},
          "plan": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

var compiledLessonSchema = gojsonschema.NewStringLoader(lessonSchema)

// validateLesson checks a candidate JSON document against the lesson schema
// and reports the first few violations joined into one message.
func validateLesson(jsonText string) error {
	result, err := gojsonschema.Validate(compiledLessonSchema, gojsonschema.NewStringLoader(jsonText))
	if err != nil {
		return &SchemaError{Reason: "lesson is not a JSON object: " + err.Error(), Raw: jsonText}
	}
	if result.Valid() {
		return nil
	}
	var reasons []string
	for i, desc := range result.Errors() {
		if i == 3 {
			reasons = append(reasons, "...")
			break
		}
		reasons = append(reasons, desc.String())
	}
	return &SchemaError{
		Reason: "lesson failed schema validation: " + strings.Join(reasons, "; "),
		Raw:    jsonText,
	}
}
