package printfit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/worksheet/internal/printable"
	"github.com/abhisek/worksheet/internal/printprofile"
)

func tasks(n int, statement string) []printable.Task {
	out := make([]printable.Task, n)
	for i := range out {
		out[i] = printable.Task{TaskID: "t", OrderIndex: i, Statement: statement, Print: printable.Metrics(statement)}
	}
	return out
}

func TestAnalyzeVariant(t *testing.T) {
	v := VariantInput{VariantID: "v1", Tasks: append(tasks(2, "2 + 2"), tasks(1, "$$x^2$$")...)}
	m := AnalyzeVariant(v)

	assert.Equal(t, 3, m.TaskCount)
	assert.Equal(t, 17, m.TotalTextChars)
	assert.Equal(t, 7, m.MaxTaskChars)
	assert.Equal(t, 1, m.MathTaskCount)
	assert.Equal(t, 1, m.DisplayMathCount)
	assert.True(t, m.MathHeavy())
}

func TestAnalyzeWork_Empty(t *testing.T) {
	for _, variants := range [][]VariantInput{nil, {{VariantID: "v1"}}} {
		got := AnalyzeWork(printprofile.WorkQuiz, variants)
		assert.Equal(t, printprofile.LayoutSingle, got.RecommendedLayout)
		assert.True(t, got.AllowTwoUp)
		assert.Len(t, got.Reasons, 1)
		assert.Contains(t, got.Reasons[0], "no data")
	}
}

func TestAnalyzeWork_DefaultTwo(t *testing.T) {
	got := AnalyzeWork(printprofile.WorkLesson, []VariantInput{
		{VariantID: "A", Tasks: tasks(10, "What is 12 + 7?")},
		{VariantID: "B", Tasks: tasks(10, "What is 15 + 3?")},
	})
	assert.Equal(t, printprofile.LayoutTwo, got.RecommendedLayout)
	assert.True(t, got.AllowTwoUp)
	assert.Empty(t, got.Reasons)
	assert.Equal(t, 2, got.Metrics.VariantCount)
	assert.Equal(t, 10, got.Metrics.MaxTaskCount)
}

func TestAnalyzeWork_Disallow(t *testing.T) {
	tests := []struct {
		name   string
		tasks  []printable.Task
		reason string
	}{
		{"long task", tasks(1, strings.Repeat("a", 220)), "task of 220 characters"},
		{"total chars", tasks(14, strings.Repeat("a", 100)), "1400 characters of text"},
		{"task count", tasks(18, "1+1"), "18 tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeWork(printprofile.WorkQuiz, []VariantInput{{VariantID: "A", Tasks: tt.tasks}})
			assert.False(t, got.AllowTwoUp)
			assert.Equal(t, printprofile.LayoutSingle, got.RecommendedLayout)
			assert.Contains(t, strings.Join(got.Reasons, "\n"), tt.reason)
		})
	}
}

func TestAnalyzeWork_JustBelowThresholds(t *testing.T) {
	got := AnalyzeWork(printprofile.WorkQuiz, []VariantInput{
		{VariantID: "A", Tasks: tasks(17, strings.Repeat("a", 82))}, // 1394 chars
		{VariantID: "B", Tasks: tasks(1, strings.Repeat("b", 219))},
	})
	assert.True(t, got.AllowTwoUp)
	assert.Equal(t, printprofile.LayoutTwo, got.RecommendedLayout)
}

func TestAnalyzeWork_MathHeavySoftReason(t *testing.T) {
	got := AnalyzeWork(printprofile.WorkQuiz, []VariantInput{{VariantID: "A", Tasks: tasks(14, "Solve $x+1=2$")}})
	assert.True(t, got.AllowTwoUp)
	assert.Equal(t, printprofile.LayoutTwo, got.RecommendedLayout)
	assert.True(t, got.Metrics.MathHeavy)
	assert.Len(t, got.Reasons, 1)
	assert.Contains(t, got.Reasons[0], "math-heavy")

	// Math-heavy but short: no reason.
	got = AnalyzeWork(printprofile.WorkQuiz, []VariantInput{{VariantID: "A", Tasks: tasks(5, "Solve $x+1=2$")}})
	assert.Empty(t, got.Reasons)
}

func TestAnalyzeWork_WorkTypeOverride(t *testing.T) {
	for _, wt := range []printprofile.WorkType{printprofile.WorkTest, printprofile.WorkHomework} {
		got := AnalyzeWork(wt, []VariantInput{{VariantID: "A", Tasks: tasks(3, "1+1")}})
		assert.Equal(t, printprofile.LayoutSingle, got.RecommendedLayout)
		assert.True(t, got.AllowTwoUp, "override must not change AllowTwoUp")
		assert.Contains(t, got.Reasons[len(got.Reasons)-1], string(wt))
	}
}

func TestVerdict_Snapshot(t *testing.T) {
	v := AnalyzeWork(printprofile.WorkQuiz, []VariantInput{{VariantID: "A", Tasks: tasks(18, "1+1")}})
	snap := v.Snapshot()
	assert.Equal(t, printprofile.LayoutSingle, snap.RecommendedLayout)
	assert.False(t, snap.AllowTwoUp)
	assert.Equal(t, 18, snap.MaxTaskCount)
	assert.Equal(t, v.Reasons, snap.Reasons)
}
