package variantplan

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheet/internal/taskbank"
)

// sixTaskPool has six s1 tasks t1..t6 with difficulties cycling 2,3,1.
func sixTaskPool() *taskbank.Pool {
	var tasks []taskbank.Task
	for i := 1; i <= 6; i++ {
		tasks = append(tasks, taskbank.Task{
			ID:          fmt.Sprintf("t%d", i),
			TopicID:     "topic",
			SkillID:     "s1",
			StatementMD: fmt.Sprintf("task %d", i),
			Difficulty:  i%3 + 1,
		})
	}
	return taskbank.MustPool(tasks)
}

// mixedPool has t01..t08 on skill "add" and t09..t12 on skill "mul".
func mixedPool() *taskbank.Pool {
	var tasks []taskbank.Task
	for i := 1; i <= 12; i++ {
		skill := "add"
		if i > 8 {
			skill = "mul"
		}
		tasks = append(tasks, taskbank.Task{
			ID:         fmt.Sprintf("t%02d", i),
			SkillID:    skill,
			Difficulty: i%3 + 1,
		})
	}
	return taskbank.MustPool(tasks)
}

func oneSection() Template {
	return Template{
		ID:    "tpl",
		Title: "Quiz",
		Sections: []Section{
			{Label: "A", Count: 5, Difficulty: DifficultyRange{1, 3}, SkillIDs: []string{"s1"}},
		},
	}
}

func twoSections() Template {
	return Template{
		Sections: []Section{
			{Label: "A", Count: 3, Difficulty: DifficultyRange{1, 3}, SkillIDs: []string{"add"}},
			{Label: "B", Count: 2, Difficulty: DifficultyRange{2, 3}, SkillIDs: []string{"add", "mul"}},
		},
	}
}

func TestBuildVariant_EndToEndExample(t *testing.T) {
	pool := sixTaskPool()
	b := NewBuilder(pool)

	v, err := b.BuildVariant(oneSection(), "x", 0, Options{})
	require.NoError(t, err)
	require.Len(t, v.Tasks, 5)

	for i, vt := range v.Tasks {
		task, err := pool.Get(vt.TaskID)
		require.NoError(t, err)
		assert.Equal(t, "s1", task.SkillID)
		assert.True(t, task.Difficulty >= 1 && task.Difficulty <= 3)
		assert.Equal(t, "A", vt.SectionLabel)
		assert.Equal(t, i, vt.OrderIndex)
	}

	again, err := b.BuildVariant(oneSection(), "x", 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, v.TaskIDs(), again.TaskIDs())
}

// Golden orders pin the PRNG stream so stored variants stay reproducible
// across releases.
func TestBuildVariant_Golden(t *testing.T) {
	b := NewBuilder(sixTaskPool())

	v0, err := b.BuildVariant(oneSection(), "x", 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t5", "t2", "t4", "t6"}, v0.TaskIDs())

	v1, err := b.BuildVariant(oneSection(), "x", 1, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t6", "t2", "t5", "t4"}, v1.TaskIDs())

	mb := NewBuilder(mixedPool())
	plain, err := mb.BuildVariant(twoSections(), "golden", 1, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"t05", "t03", "t04", "t10", "t07"}, plain.TaskIDs())

	shuffled, err := mb.BuildVariant(twoSections(), "golden", 1, Options{ShuffleOrder: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"t05", "t04", "t10", "t03", "t07"}, shuffled.TaskIDs())
	labels := map[string]string{}
	for _, vt := range shuffled.Tasks {
		labels[vt.TaskID] = vt.SectionLabel
	}
	assert.Equal(t, map[string]string{"t05": "A", "t04": "A", "t03": "A", "t10": "B", "t07": "B"}, labels)
}

func TestBuildVariant_PoolOrderIrrelevant(t *testing.T) {
	tasks := sixTaskPool().All()
	reversed := make([]taskbank.Task, len(tasks))
	for i, task := range tasks {
		reversed[len(tasks)-1-i] = task
	}

	a, err := NewBuilder(taskbank.MustPool(tasks)).BuildVariant(oneSection(), "seed", 3, Options{})
	require.NoError(t, err)
	b, err := NewBuilder(taskbank.MustPool(reversed)).BuildVariant(oneSection(), "seed", 3, Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildVariant_Insufficient(t *testing.T) {
	var tasks []taskbank.Task
	for i := 1; i <= 3; i++ {
		tasks = append(tasks, taskbank.Task{ID: fmt.Sprintf("t%d", i), SkillID: "s1", Difficulty: 2})
	}
	// Ineligible by skill and by difficulty.
	tasks = append(tasks,
		taskbank.Task{ID: "x1", SkillID: "s2", Difficulty: 2},
		taskbank.Task{ID: "x2", SkillID: "s1", Difficulty: 9},
	)

	_, err := NewBuilder(taskbank.MustPool(tasks)).BuildVariant(oneSection(), "x", 0, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientTasks))

	var ins *InsufficientTasksError
	require.True(t, errors.As(err, &ins))
	assert.Equal(t, "A", ins.SectionLabel)
	assert.Equal(t, 5, ins.RequiredCount)
	assert.Equal(t, 3, ins.AvailableCount)
	assert.Equal(t, DifficultyRange{1, 3}, ins.DifficultyRange)
	assert.Equal(t, []string{"s1"}, ins.SkillIDs)
}

func TestBuildVariant_NoReuseAcrossSections(t *testing.T) {
	// Both sections draw from the same five tasks; the second must see only
	// what the first left behind.
	tpl := Template{Sections: []Section{
		{Label: "A", Count: 3, Difficulty: DifficultyRange{1, 3}, SkillIDs: []string{"s1"}},
		{Label: "B", Count: 3, Difficulty: DifficultyRange{1, 3}, SkillIDs: []string{"s1"}},
	}}
	var tasks []taskbank.Task
	for i := 1; i <= 5; i++ {
		tasks = append(tasks, taskbank.Task{ID: fmt.Sprintf("t%d", i), SkillID: "s1", Difficulty: 1})
	}

	_, err := NewBuilder(taskbank.MustPool(tasks)).BuildVariant(tpl, "x", 0, Options{})
	var ins *InsufficientTasksError
	require.True(t, errors.As(err, &ins))
	assert.Equal(t, "B", ins.SectionLabel)
	assert.Equal(t, 2, ins.AvailableCount)
}

func TestBuildVariants_Properties(t *testing.T) {
	pool := mixedPool()
	tpl := twoSections()

	for _, seed := range []string{"a", "b", "lesson-7", ""} {
		for _, shuffle := range []bool{false, true} {
			variants, err := NewBuilder(pool).BuildVariants(tpl, seed, 8, Options{ShuffleOrder: shuffle})
			require.NoError(t, err)
			require.Len(t, variants, 8)

			for i, v := range variants {
				assert.Equal(t, i, v.Index)
				assert.Equal(t, seed, v.Seed)

				seen := map[string]bool{}
				for _, id := range v.TaskIDs() {
					assert.False(t, seen[id], "task %s repeated in variant %d", id, i)
					seen[id] = true
				}
				assert.Equal(t, map[string]int{"A": 3, "B": 2}, v.SectionCounts())

				for _, vt := range v.Tasks {
					task, err := pool.Get(vt.TaskID)
					require.NoError(t, err)
					sec := tpl.Sections[0]
					if vt.SectionLabel == "B" {
						sec = tpl.Sections[1]
					}
					assert.Contains(t, sec.SkillIDs, task.SkillID)
					assert.True(t, sec.Difficulty.Contains(task.Difficulty))
				}

				// Each variant can be regenerated on its own.
				single, err := NewBuilder(pool).BuildVariant(tpl, seed, i, Options{ShuffleOrder: shuffle})
				require.NoError(t, err)
				assert.Equal(t, v, single)
			}
		}
	}
}

func TestBuildVariants_Count(t *testing.T) {
	b := NewBuilder(sixTaskPool())
	for _, n := range []int{0, -1, MaxVariants + 1} {
		_, err := b.BuildVariants(oneSection(), "x", n, Options{})
		assert.ErrorIs(t, err, ErrInvalidCount)
	}
}

func TestBuildVariant_Titles(t *testing.T) {
	b := NewBuilder(sixTaskPool())
	v, err := b.BuildVariant(oneSection(), "x", 2, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Quiz. Variant 3", v.Title)

	tpl := oneSection()
	tpl.Title = ""
	v, err = b.BuildVariant(tpl, "x", 0, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Variant 1", v.Title)
}
