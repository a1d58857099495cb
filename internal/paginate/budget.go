// Package paginate packs printable tasks into frames that fit one physical
// page side, and arranges frames onto sheets for each print layout.
package paginate

import "fmt"

// Unit is the unit task costs are expressed in.
type Unit string

const (
	UnitLines  Unit = "lines"
	UnitPoints Unit = "points"
)

// Budget is the capacity model of one frame.
type Budget struct {
	PageLines          float64 `json:"pageLines"`
	FirstLinesOverhead float64 `json:"firstLinesOverhead"`
	ContLinesOverhead  float64 `json:"contLinesOverhead"`
	ItemLines          float64 `json:"itemLines"`

	PagePoints          float64 `json:"pagePoints"`
	FirstPointsOverhead float64 `json:"firstPointsOverhead"`
	ContPointsOverhead  float64 `json:"contPointsOverhead"`
	ItemPoints          float64 `json:"itemPoints"`
}

// DefaultBudget returns the standard page budget: 30 lines or 540pt per
// side, less the header on the first frame and the shorter "continued"
// header after it.
func DefaultBudget() Budget {
	return Budget{
		PageLines:          30,
		FirstLinesOverhead: 4,
		ContLinesOverhead:  3,
		ItemLines:          1,

		PagePoints:          540,
		FirstPointsOverhead: 38,
		ContPointsOverhead:  30,
		ItemPoints:          8,
	}
}

// Capacity is the space left for tasks in a frame.
func (b Budget) Capacity(unit Unit, first bool) float64 {
	if unit == UnitPoints {
		if first {
			return b.PagePoints - b.FirstPointsOverhead
		}
		return b.PagePoints - b.ContPointsOverhead
	}
	if first {
		return b.PageLines - b.FirstLinesOverhead
	}
	return b.PageLines - b.ContLinesOverhead
}

// ItemOverhead is the fixed per-task spacing cost.
func (b Budget) ItemOverhead(unit Unit) float64 {
	if unit == UnitPoints {
		return b.ItemPoints
	}
	return b.ItemLines
}

// Validate rejects budgets whose frames could never hold a task.
func (b Budget) Validate() error {
	for _, u := range []Unit{UnitLines, UnitPoints} {
		for _, first := range []bool{true, false} {
			if b.Capacity(u, first) <= 0 {
				return fmt.Errorf("paginate: %s budget leaves no room (first=%t)", u, first)
			}
		}
		if b.ItemOverhead(u) < 0 {
			return fmt.Errorf("paginate: negative %s item overhead", u)
		}
	}
	return nil
}

// Heights maps HeightKey(variantID, orderIndex) to a measured height in
// points.
type Heights map[string]float64

// HeightKey is the measurement key of one task in one variant.
func HeightKey(variantID string, orderIndex int) string {
	return fmt.Sprintf("%s:%d", variantID, orderIndex)
}

// Lookup returns the measured height of a task, if any. Non-positive
// heights count as unmeasured.
func (h Heights) Lookup(variantID string, orderIndex int) (float64, bool) {
	if h == nil {
		return 0, false
	}
	v, ok := h[HeightKey(variantID, orderIndex)]
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}
