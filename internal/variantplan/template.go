// Package variantplan assembles worksheet variants from a declarative
// template and a task pool. Assembly is deterministic: the same template,
// pool, seed and variant index always yield the same ordered task list.
package variantplan

import (
	"fmt"
	"os"

	"github.com/abhisek/worksheet/internal/filedoc"
)

// DifficultyRange is an inclusive [min, max] difficulty band.
type DifficultyRange [2]int

func (r DifficultyRange) Min() int { return r[0] }
func (r DifficultyRange) Max() int { return r[1] }

// Contains reports whether d lies within the band.
func (r DifficultyRange) Contains(d int) bool { return d >= r[0] && d <= r[1] }

func (r DifficultyRange) String() string { return fmt.Sprintf("[%d,%d]", r[0], r[1]) }

// Section is one block of a template: Count tasks drawn from SkillIDs
// within the Difficulty band.
type Section struct {
	Label      string          `json:"label" validate:"required"`
	Count      int             `json:"count" validate:"gte=1"`
	Difficulty DifficultyRange `json:"difficulty" validate:"dive,gte=0"`
	SkillIDs   []string        `json:"skillIds" validate:"required,min=1,dive,required"`
}

// Template is a named assembly recipe. Templates are read-only
// configuration.
type Template struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections" validate:"required,min=1,dive"`
}

// TotalCount is the number of tasks one variant of the template holds.
func (t Template) TotalCount() int {
	n := 0
	for _, s := range t.Sections {
		n += s.Count
	}
	return n
}

var templateSchema = &filedoc.Schema{
	Name: "variant-template",
	Definition: `{
  "type": "object",
  "required": ["sections"],
  "properties": {
    "id": {"type": "string"},
    "title": {"type": "string"},
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["label", "count", "difficulty", "skillIds"],
        "properties": {
          "label": {"type": "string"},
          "count": {"type": "integer"},
          "difficulty": {
            "type": "array",
            "items": {"type": "integer"},
            "minItems": 2,
            "maxItems": 2
          },
          "skillIds": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`,
}

// LoadTemplate reads a JSON or YAML template file. The template is
// validated before it is returned. Read failures are returned as is; only
// malformed content is an InvalidTemplateError.
func LoadTemplate(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read template: %w", err)
	}
	return DecodeTemplate(data, filedoc.FormatFor(path))
}

// DecodeTemplate parses and validates a template document held in memory.
func DecodeTemplate(data []byte, format filedoc.Format) (Template, error) {
	var t Template
	if err := filedoc.Decode(data, format, templateSchema, &t); err != nil {
		return Template{}, &InvalidTemplateError{Problems: []string{err.Error()}}
	}
	if err := Validate(t); err != nil {
		return Template{}, err
	}
	return t, nil
}
