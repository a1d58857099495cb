package variantplan

import "fmt"

// VariantTask places one bank task in a variant.
type VariantTask struct {
	TaskID       string `json:"taskId"`
	SectionLabel string `json:"sectionLabel"`
	OrderIndex   int    `json:"orderIndex"`
}

// Variant is one concrete, ordered assignment of tasks to a worksheet
// instance. Variants are immutable; edits produce a new variant.
type Variant struct {
	Title string        `json:"title"`
	Seed  string        `json:"seed"`
	Index int           `json:"index"`
	Tasks []VariantTask `json:"tasks"`
}

// TaskIDs returns the task IDs in print order.
func (v Variant) TaskIDs() []string {
	ids := make([]string, len(v.Tasks))
	for i, t := range v.Tasks {
		ids[i] = t.TaskID
	}
	return ids
}

// SectionCounts returns how many tasks each section contributed.
func (v Variant) SectionCounts() map[string]int {
	counts := make(map[string]int)
	for _, t := range v.Tasks {
		counts[t.SectionLabel]++
	}
	return counts
}

// VariantTitle is the display title of variant index of a template.
func VariantTitle(tpl Template, index int) string {
	if tpl.Title == "" {
		return fmt.Sprintf("Variant %d", index+1)
	}
	return fmt.Sprintf("%s. Variant %d", tpl.Title, index+1)
}
