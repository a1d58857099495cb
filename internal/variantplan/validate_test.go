package variantplan

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/worksheet/internal/filedoc"
	"github.com/abhisek/worksheet/internal/taskbank"
)

func TestValidate_Valid(t *testing.T) {
	if err := Validate(twoSections()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name string
		tpl  Template
		want string
	}{
		{"no sections", Template{}, "Sections is required"},
		{"empty label", Template{Sections: []Section{{Count: 1, Difficulty: DifficultyRange{1, 1}, SkillIDs: []string{"s"}}}}, "Label is required"},
		{"zero count", Template{Sections: []Section{{Label: "A", Difficulty: DifficultyRange{1, 1}, SkillIDs: []string{"s"}}}}, "Count must be >= 1"},
		{"inverted range", Template{Sections: []Section{{Label: "A", Count: 1, Difficulty: DifficultyRange{3, 1}, SkillIDs: []string{"s"}}}}, "min 3 is greater than max 1"},
		{"negative difficulty", Template{Sections: []Section{{Label: "A", Count: 1, Difficulty: DifficultyRange{-1, 1}, SkillIDs: []string{"s"}}}}, "must be >= 0"},
		{"no skills", Template{Sections: []Section{{Label: "A", Count: 1, Difficulty: DifficultyRange{1, 1}}}}, "SkillIDs is required"},
		{"blank skill", Template{Sections: []Section{{Label: "A", Count: 1, Difficulty: DifficultyRange{1, 1}, SkillIDs: []string{""}}}}, "SkillIDs[0] is required"},
		{"duplicate label", Template{Sections: []Section{
			{Label: "A", Count: 1, Difficulty: DifficultyRange{1, 1}, SkillIDs: []string{"s"}},
			{Label: "A", Count: 1, Difficulty: DifficultyRange{1, 1}, SkillIDs: []string{"s"}},
		}}, "duplicate label"},
		{"duplicate skill", Template{Sections: []Section{{Label: "A", Count: 1, Difficulty: DifficultyRange{1, 1}, SkillIDs: []string{"s", "s"}}}}, `skill "s" listed twice`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tpl)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidTemplate) {
				t.Errorf("expected ErrInvalidTemplate, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestBuild_RejectsInvalidTemplateBeforeSelection(t *testing.T) {
	// An empty pool would otherwise fail with InsufficientTasks.
	b := NewBuilder(taskbank.MustPool(nil))
	_, err := b.BuildVariant(Template{}, "x", 0, Options{})
	if !errors.Is(err, ErrInvalidTemplate) {
		t.Fatalf("expected ErrInvalidTemplate, got %v", err)
	}
}

func TestDecodeTemplate(t *testing.T) {
	doc := `
id: fractions-quiz
title: Fractions
sections:
  - label: Warm-up
    count: 2
    difficulty: [1, 2]
    skillIds: [add-frac]
  - label: Challenge
    count: 1
    difficulty: [3, 5]
    skillIds: [add-frac, mul-frac]
`
	tpl, err := DecodeTemplate([]byte(doc), filedoc.FormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tpl.Sections) != 2 || tpl.TotalCount() != 3 {
		t.Fatalf("unexpected template: %+v", tpl)
	}
	if tpl.Sections[1].Difficulty != (DifficultyRange{3, 5}) {
		t.Errorf("difficulty = %v", tpl.Sections[1].Difficulty)
	}

	_, err = DecodeTemplate([]byte(`{"sections":[{"label":"A","count":1,"difficulty":[1],"skillIds":["s"]}]}`), filedoc.FormatJSON)
	if !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("short difficulty: expected ErrInvalidTemplate, got %v", err)
	}

	_, err = DecodeTemplate([]byte(`{"sections":[]}`), filedoc.FormatJSON)
	if !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("no sections: expected ErrInvalidTemplate, got %v", err)
	}
}
