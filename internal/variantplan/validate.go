package variantplan

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a template before any selection is attempted. It returns
// an *InvalidTemplateError describing every problem found, or nil.
func Validate(t Template) error {
	var problems []string

	if err := validate.Struct(t); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return &InvalidTemplateError{Problems: []string{err.Error()}}
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	labels := make(map[string]bool, len(t.Sections))
	for i, s := range t.Sections {
		prefix := fmt.Sprintf("section %d (%q)", i, s.Label)
		if s.Label != "" {
			if labels[s.Label] {
				problems = append(problems, fmt.Sprintf("%s: duplicate label", prefix))
			}
			labels[s.Label] = true
		}
		if s.Difficulty.Min() > s.Difficulty.Max() {
			problems = append(problems, fmt.Sprintf("%s: difficulty min %d is greater than max %d",
				prefix, s.Difficulty.Min(), s.Difficulty.Max()))
		}
		seen := make(map[string]bool, len(s.SkillIDs))
		for _, id := range s.SkillIDs {
			if id != "" && seen[id] {
				problems = append(problems, fmt.Sprintf("%s: skill %q listed twice", prefix, id))
			}
			seen[id] = true
		}
	}

	if len(problems) > 0 {
		return &InvalidTemplateError{Problems: problems}
	}
	return nil
}

// describe turns a validator field error into a readable problem.
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s, got %v", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
