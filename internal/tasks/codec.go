package tasks

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const recordSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "description", "date", "time", "completed"],
    "additionalProperties": false,
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "date": {"type": "string"},
      "time": {"type": "string"},
      "completed": {"type": "boolean"},
      "theme": {"type": ["string", "null"]}
    }
  }
}`

var schema = jsonschema.MustCompileString("tasks.schema.json", recordSchema)

// Encode serialises the list in display order.
func Encode(list []Task) ([]byte, error) {
	if list == nil {
		list = []Task{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return data, nil
}

// Decode parses and validates a persisted record.
func Decode(data []byte) ([]Task, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("validate tasks: %w", err)
	}

	var list []Task
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	seen := make(map[string]struct{}, len(list))
	for i, t := range list {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("validate tasks: /%d/id: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	if list == nil {
		list = []Task{}
	}
	return list, nil
}
