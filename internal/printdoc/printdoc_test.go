package printdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/printprofile"
	"github.com/abhisek/worksheet/internal/taskbank"
	"github.com/abhisek/worksheet/internal/variantplan"
)

func testPool() *taskbank.Pool {
	return taskbank.MustPool([]taskbank.Task{
		{ID: "a", SkillID: "s", StatementMD: "Compute $\\frac{1}{2} + \\frac{1}{3}$.", Answer: taskbank.FractionAnswer(5, 6)},
		{ID: "b", SkillID: "s", StatementMD: "What is 2 + 2?", AnswerMD: "4"},
		{ID: "c", SkillID: "s", StatementMD: "Explain."},
	})
}

func TestNewVariant(t *testing.T) {
	v := variantplan.Variant{Title: "Variant 1", Tasks: []variantplan.VariantTask{
		{TaskID: "b", SectionLabel: "A", OrderIndex: 0},
		{TaskID: "a", SectionLabel: "B", OrderIndex: 1},
		{TaskID: "c", SectionLabel: "B", OrderIndex: 2},
	}}

	pv, err := NewVariant("v1", 1, v, testPool())
	require.NoError(t, err)
	assert.Equal(t, 3, pv.TasksCount)
	require.Len(t, pv.Tasks, 3)

	assert.Equal(t, "4", pv.Tasks[0].Answer)
	assert.Equal(t, "A", pv.Tasks[0].SectionLabel)
	assert.Equal(t, "5/6", pv.Tasks[1].Answer)
	assert.True(t, pv.Tasks[1].Print.HasFractionLike)
	assert.Equal(t, 1, pv.Tasks[1].OrderIndex)
	assert.False(t, pv.Tasks[2].HasAnswer)
}

func TestNewVariant_UnknownTask(t *testing.T) {
	v := variantplan.Variant{Tasks: []variantplan.VariantTask{{TaskID: "zzz"}}}
	_, err := NewVariant("v1", 1, v, testPool())
	assert.ErrorIs(t, err, taskbank.ErrTaskNotFound)
}

func TestDocument_Plan(t *testing.T) {
	v := variantplan.Variant{Tasks: []variantplan.VariantTask{{TaskID: "a"}, {TaskID: "b", OrderIndex: 1}}}
	pv, err := NewVariant("v1", 1, v, testPool())
	require.NoError(t, err)

	doc := Document{
		WorkID:   "w",
		WorkType: printprofile.WorkQuiz,
		Profile:  Profile{Layout: printprofile.LayoutTwo, Orientation: printprofile.OrientationPortrait},
		Variants: []Variant{pv},
	}
	assert.Equal(t, 2, doc.TaskCount())
	assert.Len(t, doc.FitInputs(), 1)

	plan, err := doc.Plan(nil, paginate.DefaultBudget())
	require.NoError(t, err)
	assert.Equal(t, printprofile.OrientationPortrait, plan.Orientation)
	require.Len(t, plan.Sides, 1)
	assert.Nil(t, plan.Sides[0].Right)
	assert.True(t, plan.Sides[0].Last)
}
