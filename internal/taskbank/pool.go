package taskbank

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrTaskNotFound is returned when a task ID is not in the pool.
var ErrTaskNotFound = errors.New("task not found")

// Pool is an indexed, read-only collection of tasks.
type Pool struct {
	tasks   []Task
	byID    map[string]*Task
	bySkill map[string][]Task
	byTopic map[string][]Task
}

// NewPool validates tasks and builds the pool indices. Tasks are kept in
// ascending ID order so that every query is independent of the order the
// repository returned them in.
func NewPool(tasks []Task) (*Pool, error) {
	if err := validateTasks(tasks); err != nil {
		return nil, err
	}

	sorted := slices.Clone(tasks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	p := &Pool{
		tasks:   sorted,
		byID:    make(map[string]*Task, len(sorted)),
		bySkill: make(map[string][]Task),
		byTopic: make(map[string][]Task),
	}
	for i := range p.tasks {
		t := p.tasks[i]
		p.byID[t.ID] = &p.tasks[i]
		p.bySkill[t.SkillID] = append(p.bySkill[t.SkillID], t)
		p.byTopic[t.TopicID] = append(p.byTopic[t.TopicID], t)
	}
	return p, nil
}

// MustPool is NewPool for fixtures; it panics on invalid input.
func MustPool(tasks []Task) *Pool {
	p, err := NewPool(tasks)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of tasks in the pool.
func (p *Pool) Len() int { return len(p.tasks) }

// Get returns a task by ID.
func (p *Pool) Get(id string) (Task, error) {
	t, ok := p.byID[id]
	if !ok {
		return Task{}, fmt.Errorf("%w: %q", ErrTaskNotFound, id)
	}
	return *t, nil
}

// All returns every task in ID order.
func (p *Pool) All() []Task {
	return slices.Clone(p.tasks)
}

// BySkill returns the tasks for a skill in ID order.
func (p *Pool) BySkill(skillID string) []Task {
	return slices.Clone(p.bySkill[skillID])
}

// ByTopic returns the tasks for a topic in ID order.
func (p *Pool) ByTopic(topicID string) []Task {
	return slices.Clone(p.byTopic[topicID])
}

// Skills returns the distinct skill IDs present in the pool, sorted.
func (p *Pool) Skills() []string {
	ids := make([]string, 0, len(p.bySkill))
	for id := range p.bySkill {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Topics returns the distinct topic IDs present in the pool, sorted.
func (p *Pool) Topics() []string {
	ids := make([]string, 0, len(p.byTopic))
	for id := range p.byTopic {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ForTopics narrows the pool to the given topics. An empty list returns the
// pool unchanged.
func (p *Pool) ForTopics(topicIDs ...string) *Pool {
	if len(topicIDs) == 0 {
		return p
	}
	var tasks []Task
	seen := make(map[string]bool, len(topicIDs))
	for _, id := range topicIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		tasks = append(tasks, p.byTopic[id]...)
	}
	// Subsets of a valid pool are valid.
	return MustPool(tasks)
}
