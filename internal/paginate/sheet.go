package paginate

import (
	"fmt"

	"github.com/abhisek/worksheet/internal/printprofile"
)

// Face is the side of a physical sheet.
type Face string

const (
	FaceFront Face = "front"
	FaceBack  Face = "back"
)

// Side is one printed page side. Single-column layouts only use Left.
type Side struct {
	Page  int    `json:"page"`
	Sheet int    `json:"sheet"`
	Face  Face   `json:"face"`
	Left  *Frame `json:"left,omitempty"`
	Right *Frame `json:"right,omitempty"`
	// Blank marks a padding back side that keeps the next pair on a front.
	Blank bool `json:"blank,omitempty"`
	// Last marks the final side, after which no page break is emitted.
	Last bool `json:"last,omitempty"`
}

// SheetPlan is the print-ready arrangement of every frame of a work.
type SheetPlan struct {
	Layout      printprofile.Layout      `json:"layout"`
	Orientation printprofile.Orientation `json:"orientation"`
	Duplex      bool                     `json:"duplex"`
	Frames      map[string][]Frame       `json:"frames"`
	Sides       []Side                   `json:"sides"`
}

// SheetCount is the number of physical sheets.
func (p SheetPlan) SheetCount() int {
	if len(p.Sides) == 0 {
		return 0
	}
	return p.Sides[len(p.Sides)-1].Sheet
}

// FrameCount is the number of frames across all variants.
func (p SheetPlan) FrameCount() int {
	n := 0
	for _, fs := range p.Frames {
		n += len(fs)
	}
	return n
}

// Plan paginates every variant once and lays the frames out for layout.
// Orientation follows the layout default; callers with an explicit
// override replace it on the result.
func Plan(inputs []Input, layout printprofile.Layout, heights Heights, b Budget) (SheetPlan, error) {
	if !layout.Valid() {
		return SheetPlan{}, fmt.Errorf("paginate: unknown layout %q", layout)
	}
	if err := b.Validate(); err != nil {
		return SheetPlan{}, err
	}

	paged := make([][]Frame, len(inputs))
	byVariant := make(map[string][]Frame, len(inputs))
	for i, in := range inputs {
		paged[i] = PaginateVariant(in, heights, b)
		byVariant[in.VariantID] = paged[i]
	}

	var sides []Side
	switch layout {
	case printprofile.LayoutSingle:
		sides = singleSides(paged)
	case printprofile.LayoutTwo:
		sides = twoSides(paged)
	case printprofile.LayoutTwoDup:
		sides = dupSides(paged)
	case printprofile.LayoutTwoCut:
		sides = cutSides(paged)
	}
	number(sides, layout == printprofile.LayoutTwoCut)

	return SheetPlan{
		Layout:      layout,
		Orientation: layout.DefaultOrientation(),
		Duplex:      layout == printprofile.LayoutTwoCut,
		Frames:      byVariant,
		Sides:       sides,
	}, nil
}

func singleSides(paged [][]Frame) []Side {
	var sides []Side
	for _, frames := range paged {
		for i := range frames {
			sides = append(sides, Side{Left: &frames[i]})
		}
	}
	return sides
}

func dupSides(paged [][]Frame) []Side {
	var sides []Side
	for _, frames := range paged {
		for i := range frames {
			sides = append(sides, Side{Left: &frames[i], Right: &frames[i]})
		}
	}
	return sides
}

// pairs groups variants two by two in input order. A trailing lone variant
// is paired with nothing.
func pairs(paged [][]Frame) [][2][]Frame {
	var out [][2][]Frame
	for i := 0; i < len(paged); i += 2 {
		var p [2][]Frame
		p[0] = paged[i]
		if i+1 < len(paged) {
			p[1] = paged[i+1]
		}
		out = append(out, p)
	}
	return out
}

// zip places frame i of each variant in a pair side by side.
func zip(p [2][]Frame) []Side {
	n := max(len(p[0]), len(p[1]))
	sides := make([]Side, n)
	for i := range n {
		if i < len(p[0]) {
			sides[i].Left = &p[0][i]
		}
		if i < len(p[1]) {
			sides[i].Right = &p[1][i]
		}
	}
	return sides
}

func twoSides(paged [][]Frame) []Side {
	var sides []Side
	for _, p := range pairs(paged) {
		sides = append(sides, zip(p)...)
	}
	return sides
}

// cutSides is the two pairing with every back side mirrored, so each half
// of a cut duplex sheet carries one variant on both faces. Every pair
// starts on a fresh front.
func cutSides(paged [][]Frame) []Side {
	var sides []Side
	for _, p := range pairs(paged) {
		if len(sides)%2 == 1 {
			sides = append(sides, Side{Blank: true})
		}
		for i, s := range zip(p) {
			if i%2 == 1 {
				s.Left, s.Right = s.Right, s.Left
			}
			sides = append(sides, s)
		}
	}
	return sides
}

// number assigns page, sheet and face. Duplex plans put two sides on a
// sheet.
func number(sides []Side, duplex bool) {
	for i := range sides {
		sides[i].Page = i + 1
		if duplex {
			sides[i].Sheet = i/2 + 1
			if i%2 == 1 {
				sides[i].Face = FaceBack
			} else {
				sides[i].Face = FaceFront
			}
		} else {
			sides[i].Sheet = i + 1
			sides[i].Face = FaceFront
		}
	}
	if n := len(sides); n > 0 {
		sides[n-1].Last = true
	}
}
