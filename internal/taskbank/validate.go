package taskbank

import (
	"fmt"
	"strings"
)

// validateTasks performs structural checks on a task set.
// Returns a combined error describing all problems found, or nil if valid.
func validateTasks(tasks []Task) error {
	var errs []string

	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		if t.ID == "" {
			errs = append(errs, fmt.Sprintf("task #%d has an empty ID", i))
			continue
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate task ID: %q", t.ID))
		}
		seen[t.ID] = true

		if t.SkillID == "" {
			errs = append(errs, fmt.Sprintf("task %q has no skill", t.ID))
		}
		if t.Difficulty < 0 {
			errs = append(errs, fmt.Sprintf("task %q: difficulty must be >= 0, got %d", t.ID, t.Difficulty))
		}
		if a := t.Answer; a != nil {
			switch a.Kind {
			case AnswerNumeric, AnswerRatio:
			case AnswerFraction:
				if a.Denominator == 0 {
					errs = append(errs, fmt.Sprintf("task %q: fraction answer has zero denominator", t.ID))
				}
			default:
				errs = append(errs, fmt.Sprintf("task %q: unknown answer kind %q", t.ID, a.Kind))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("task pool validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
