package config

import (
	"encoding/json"

	"github.com/ansel1/merry"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const worldsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "default_world": {"type": "string"},
    "worlds": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name"],
        "properties": {
          "name":      {"type": "string", "minLength": 1},
          "timezone":  {"type": "string"},
          "arc":       {"type": "string"},
          "weather":   {"type": "string"},
          "latitude":  {"type": "number", "minimum": -90, "maximum": 90},
          "longitude": {"type": "number", "minimum": -180, "maximum": 180},
          "radius":    {"type": "number", "exclusiveMinimum": 0}
        }
      }
    }
  }
}`

var schema = jsonschema.MustCompileString("worlds.schema.json", worldsSchema)

// checkSchema validates a decoded YAML document. The document is round
// tripped through JSON so the validator sees JSON value types.
func checkSchema(doc interface{}) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return merry.Prepend(err, "schema")
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return merry.Prepend(err, "schema")
	}
	if err := schema.Validate(v); err != nil {
		return merry.Prepend(err, "schema")
	}
	return nil
}
