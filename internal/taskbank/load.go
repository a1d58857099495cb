package taskbank

import (
	"fmt"

	"github.com/abhisek/worksheet/internal/filedoc"
)

// poolFile is the on-disk shape of a task pool.
type poolFile struct {
	Tasks []Task `json:"tasks"`
}

var poolSchema = &filedoc.Schema{
	Name: "task-pool",
	Definition: `{
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "skill_id", "statement_md", "difficulty"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "topic_id": {"type": "string"},
          "skill_id": {"type": "string", "minLength": 1},
          "statement_md": {"type": "string"},
          "answer_md": {"type": "string"},
          "difficulty": {"type": "integer", "minimum": 0},
          "answer": {
            "type": "object",
            "required": ["kind"],
            "properties": {
              "kind": {"enum": ["numeric", "fraction", "ratio"]}
            }
          }
        }
      }
    }
  }
}`,
}

// LoadFile reads a JSON or YAML task pool file and builds a Pool from it.
func LoadFile(path string) (*Pool, error) {
	var f poolFile
	if err := filedoc.Load(path, poolSchema, &f); err != nil {
		return nil, fmt.Errorf("load task pool: %w", err)
	}
	return NewPool(f.Tasks)
}

// Decode builds a Pool from an in-memory document.
func Decode(data []byte, format filedoc.Format) (*Pool, error) {
	var f poolFile
	if err := filedoc.Decode(data, format, poolSchema, &f); err != nil {
		return nil, fmt.Errorf("decode task pool: %w", err)
	}
	return NewPool(f.Tasks)
}
