package quizgen

import (
	"github.com/xeipuuv/gojsonschema"
)

const questionSchemaJSON = `{
  "type": "object",
  "required": ["question", "options", "correct_index"],
  "properties": {
    "question": {"type": "string", "minLength": 1},
    "options": {
      "type": "array",
      "minItems": 4,
      "maxItems": 4,
      "items": {"type": "string"}
    },
    "correct_index": {
      "oneOf": [
        {"type": "integer", "minimum": 0, "maximum": 3},
        {"type": "string", "pattern": "^\\s*[0-3]\\s*$"}
      ]
    }
  }
}`

var questionSchema = mustSchema(questionSchemaJSON)

func mustSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(err)
	}
	return schema
}

// validateItem returns the schema violations of one raw quiz item.
func validateItem(item []byte) []string {
	result, err := questionSchema.Validate(gojsonschema.NewBytesLoader(item))
	if err != nil {
		return []string{err.Error()}
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return problems
}
