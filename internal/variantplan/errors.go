package variantplan

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is matching of the structured errors below.
var (
	ErrInsufficientTasks = errors.New("insufficient tasks")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// InsufficientTasksError reports a section the pool cannot fill. The fields
// are meant to be rendered to the caller as an actionable message.
type InsufficientTasksError struct {
	SectionLabel    string          `json:"sectionLabel"`
	RequiredCount   int             `json:"requiredCount"`
	AvailableCount  int             `json:"availableCount"`
	DifficultyRange DifficultyRange `json:"difficultyRange"`
	SkillIDs        []string        `json:"skillIds"`
	VariantIndex    int             `json:"variantIndex"`
}

func (e *InsufficientTasksError) Error() string {
	return fmt.Sprintf("section %q needs %d tasks but only %d are available (difficulty %s, skills %s)",
		e.SectionLabel, e.RequiredCount, e.AvailableCount, e.DifficultyRange, strings.Join(e.SkillIDs, ", "))
}

func (e *InsufficientTasksError) Is(target error) bool { return target == ErrInsufficientTasks }

// InvalidTemplateError lists every structural problem found in a template.
type InvalidTemplateError struct {
	Problems []string `json:"problems"`
}

func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("invalid template:\n  %s", strings.Join(e.Problems, "\n  "))
}

func (e *InvalidTemplateError) Is(target error) bool { return target == ErrInvalidTemplate }
