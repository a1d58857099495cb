package variantplan

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/worksheet/internal/taskbank"
)

// MaxVariants caps how many variants one call may assemble.
const MaxVariants = 64

// ErrInvalidCount is returned for a variant count outside [1, MaxVariants].
var ErrInvalidCount = errors.New("invalid variant count")

// Options tunes assembly.
type Options struct {
	// ShuffleOrder reshuffles the assembled tasks across sections. Each task
	// keeps its section label.
	ShuffleOrder bool
}

// Builder assembles variants from a task pool.
type Builder struct {
	pool *taskbank.Pool
}

// NewBuilder creates a Builder over pool.
func NewBuilder(pool *taskbank.Pool) *Builder {
	return &Builder{pool: pool}
}

// BuildVariants assembles count variants with indices 0..count-1.
func (b *Builder) BuildVariants(tpl Template, seed string, count int, opts Options) ([]Variant, error) {
	if count < 1 || count > MaxVariants {
		return nil, fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidCount, count, MaxVariants)
	}
	if err := Validate(tpl); err != nil {
		return nil, err
	}

	variants := make([]Variant, 0, count)
	for i := range count {
		v, err := b.build(tpl, seed, i, opts)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// BuildVariant assembles the variant at index.
func (b *Builder) BuildVariant(tpl Template, seed string, index int, opts Options) (Variant, error) {
	if index < 0 {
		return Variant{}, fmt.Errorf("variant index must be >= 0, got %d", index)
	}
	if err := Validate(tpl); err != nil {
		return Variant{}, err
	}
	return b.build(tpl, seed, index, opts)
}

// build runs selection for one variant. Sections draw in template order
// from eligible tasks not yet used by an earlier section.
func (b *Builder) build(tpl Template, seed string, index int, opts Options) (Variant, error) {
	r := newRNG(SubSeed(seed, index))
	used := make(map[string]bool, tpl.TotalCount())

	var tasks []VariantTask
	for _, sec := range tpl.Sections {
		eligible := b.eligible(sec, used)
		if len(eligible) < sec.Count {
			return Variant{}, &InsufficientTasksError{
				SectionLabel:    sec.Label,
				RequiredCount:   sec.Count,
				AvailableCount:  len(eligible),
				DifficultyRange: sec.Difficulty,
				SkillIDs:        slices.Clone(sec.SkillIDs),
				VariantIndex:    index,
			}
		}

		r.shuffle(len(eligible), func(i, j int) { eligible[i], eligible[j] = eligible[j], eligible[i] })
		for _, t := range eligible[:sec.Count] {
			used[t.ID] = true
			tasks = append(tasks, VariantTask{TaskID: t.ID, SectionLabel: sec.Label})
		}
	}

	if opts.ShuffleOrder {
		r.shuffle(len(tasks), func(i, j int) { tasks[i], tasks[j] = tasks[j], tasks[i] })
	}
	for i := range tasks {
		tasks[i].OrderIndex = i
	}

	return Variant{
		Title: VariantTitle(tpl, index),
		Seed:  seed,
		Index: index,
		Tasks: tasks,
	}, nil
}

// eligible returns the unused tasks of sec's skills within its difficulty
// band, in pool (ID) order.
func (b *Builder) eligible(sec Section, used map[string]bool) []taskbank.Task {
	skills := make(map[string]bool, len(sec.SkillIDs))
	for _, id := range sec.SkillIDs {
		skills[id] = true
	}

	var out []taskbank.Task
	for _, t := range b.pool.All() {
		if !skills[t.SkillID] || used[t.ID] || !sec.Difficulty.Contains(t.Difficulty) {
			continue
		}
		out = append(out, t)
	}
	return out
}
