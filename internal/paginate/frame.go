package paginate

import "github.com/abhisek/worksheet/internal/printable"

// Input is one variant's printable tasks, in print order.
type Input struct {
	VariantID string           `json:"variantId"`
	VariantNo int              `json:"variantNo"`
	Title     string           `json:"title"`
	Tasks     []printable.Task `json:"tasks"`
}

// Frame is a contiguous run of one variant's tasks that fits one side.
type Frame struct {
	VariantID string `json:"variantId"`
	VariantNo int    `json:"variantNo"`
	Title     string `json:"title"`

	// Number is 1 for the first frame of a variant and counts up from there.
	Number int `json:"number"`
	// StartNumber is the running number of the first task in the frame.
	StartNumber int `json:"startNumber"`

	Tasks []printable.Task `json:"tasks"`

	Unit     Unit    `json:"unit"`
	Cost     float64 `json:"cost"`
	Capacity float64 `json:"capacity"`
	// Oversized marks a lone task that exceeds the frame on its own.
	Oversized bool `json:"oversized,omitempty"`
}

// Continued reports whether the frame continues an earlier one.
func (f *Frame) Continued() bool { return f.Number > 1 }

// EndNumber is the running number of the last task, or StartNumber-1 for
// an empty frame.
func (f *Frame) EndNumber() int { return f.StartNumber + len(f.Tasks) - 1 }

// UnitFor picks the cost unit of a variant: points only when every task
// has a measured height, lines otherwise.
func UnitFor(in Input, heights Heights) Unit {
	if len(in.Tasks) == 0 || len(heights) == 0 {
		return UnitLines
	}
	for _, t := range in.Tasks {
		if _, ok := heights.Lookup(in.VariantID, t.OrderIndex); !ok {
			return UnitLines
		}
	}
	return UnitPoints
}

// TaskCost is the cost of one task in unit, including the per-item
// overhead.
func TaskCost(in Input, t printable.Task, unit Unit, heights Heights, b Budget) float64 {
	if unit == UnitPoints {
		h, _ := heights.Lookup(in.VariantID, t.OrderIndex)
		return h + b.ItemPoints
	}
	lines := t.Print.EstimatedLines
	if lines < 1 {
		lines = 1
	}
	return float64(lines) + b.ItemLines
}

// PaginateVariant packs a variant's tasks greedily into frames. A task is
// never split; one that does not fit even an empty frame gets a frame of
// its own. A variant without tasks yields one empty frame so its header
// still prints.
func PaginateVariant(in Input, heights Heights, b Budget) []Frame {
	unit := UnitFor(in, heights)

	newFrame := func(number, start int) Frame {
		return Frame{
			VariantID:   in.VariantID,
			VariantNo:   in.VariantNo,
			Title:       in.Title,
			Number:      number,
			StartNumber: start,
			Unit:        unit,
			Capacity:    b.Capacity(unit, number == 1),
		}
	}

	frames := []Frame{}
	cur := newFrame(1, 1)
	for i, t := range in.Tasks {
		cost := TaskCost(in, t, unit, heights, b)
		if len(cur.Tasks) > 0 && cur.Cost+cost > cur.Capacity {
			frames = append(frames, cur)
			cur = newFrame(cur.Number+1, i+1)
		}
		cur.Tasks = append(cur.Tasks, t)
		cur.Cost += cost
		if len(cur.Tasks) == 1 && cost > cur.Capacity {
			cur.Oversized = true
		}
	}
	return append(frames, cur)
}
