// Package printdoc defines the printable document handed to renderers and
// measurement engines.
package printdoc

import (
	"fmt"

	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/printable"
	"github.com/abhisek/worksheet/internal/printfit"
	"github.com/abhisek/worksheet/internal/printprofile"
	"github.com/abhisek/worksheet/internal/taskbank"
	"github.com/abhisek/worksheet/internal/variantplan"
)

// Profile is the resolved layout of a print request.
type Profile struct {
	Layout      printprofile.Layout      `json:"layout"`
	Orientation printprofile.Orientation `json:"orientation"`
}

// Variant is one variant's printable tasks.
type Variant struct {
	VariantID  string           `json:"variantId"`
	VariantNo  int              `json:"variantNo"`
	Title      string           `json:"title"`
	TasksCount int              `json:"tasksCount"`
	Tasks      []printable.Task `json:"tasks"`
}

// Document is the contract both renderer backends accept.
type Document struct {
	WorkID   string                `json:"workId"`
	Locale   string                `json:"locale"`
	TopicID  string                `json:"topicId"`
	Title    string                `json:"title"`
	WorkType printprofile.WorkType `json:"workType"`
	Profile  Profile               `json:"profile"`
	Variants []Variant             `json:"variants"`
}

// NewVariant classifies the tasks of v against pool. Every task of the
// variant must exist in the pool.
func NewVariant(id string, no int, v variantplan.Variant, pool *taskbank.Pool) (Variant, error) {
	out := Variant{
		VariantID:  id,
		VariantNo:  no,
		Title:      v.Title,
		TasksCount: len(v.Tasks),
		Tasks:      make([]printable.Task, 0, len(v.Tasks)),
	}
	for _, vt := range v.Tasks {
		t, err := pool.Get(vt.TaskID)
		if err != nil {
			return Variant{}, fmt.Errorf("variant %s: %w", id, err)
		}
		out.Tasks = append(out.Tasks, printable.Classify(t, vt.OrderIndex, vt.SectionLabel))
	}
	return out, nil
}

// PaginateInputs converts the document into pagination input.
func (d Document) PaginateInputs() []paginate.Input {
	inputs := make([]paginate.Input, len(d.Variants))
	for i, v := range d.Variants {
		inputs[i] = paginate.Input{
			VariantID: v.VariantID,
			VariantNo: v.VariantNo,
			Title:     v.Title,
			Tasks:     v.Tasks,
		}
	}
	return inputs
}

// FitInputs converts the document into print-fit analyzer input.
func (d Document) FitInputs() []printfit.VariantInput {
	inputs := make([]printfit.VariantInput, len(d.Variants))
	for i, v := range d.Variants {
		inputs[i] = printfit.VariantInput{VariantID: v.VariantID, Tasks: v.Tasks}
	}
	return inputs
}

// TaskCount returns the number of tasks across all variants.
func (d Document) TaskCount() int {
	n := 0
	for _, v := range d.Variants {
		n += len(v.Tasks)
	}
	return n
}

// Plan paginates the document under its own profile. The result carries
// the document's orientation, which may override the layout default.
func (d Document) Plan(heights paginate.Heights, b paginate.Budget) (paginate.SheetPlan, error) {
	plan, err := paginate.Plan(d.PaginateInputs(), d.Profile.Layout, heights, b)
	if err != nil {
		return paginate.SheetPlan{}, err
	}
	if d.Profile.Orientation.Valid() {
		plan.Orientation = d.Profile.Orientation
	}
	return plan, nil
}
