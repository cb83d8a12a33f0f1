package crudhttp

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const listSchemaURL = "https://todolist.local/schemas/task-list.json"

// listSchema describes the GET /crud reply. Text fields may be null; a
// missing or non-integer id is rejected.
const listSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id"],
    "properties": {
      "id": {"type": "integer"},
      "name": {"type": ["string", "null"]},
      "task": {"type": ["string", "null"]},
      "deadline": {"type": ["string", "null"]}
    }
  }
}`

func compileListSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(listSchemaURL, strings.NewReader(listSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(listSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
