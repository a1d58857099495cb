package render

import (
	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/printprofile"
)

// sheetView is the backend-neutral form of a job that both markup
// generators walk.
type sheetView struct {
	Title     string
	Landscape bool
	TwoUp     bool
	Sides     []sideView
}

type sideView struct {
	Blank   bool
	Last    bool
	Columns []columnView
}

type columnView struct {
	Empty     bool
	Title     string
	Continued bool
	// Offset is the number of tasks printed before this frame.
	Offset int
	Tasks  []taskView
}

type taskView struct {
	Number    int
	Section   string
	Statement string
	// Answer is the answer-space hint: inline, short or medium.
	Answer string
}

func newSheetView(job Job) sheetView {
	plan := job.Plan
	v := sheetView{
		Title:     job.Document.Title,
		Landscape: plan.Orientation == printprofile.OrientationLandscape,
		TwoUp:     plan.Layout.TwoUp(),
	}
	for _, s := range plan.Sides {
		sv := sideView{Blank: s.Blank, Last: s.Last}
		if !s.Blank {
			sv.Columns = append(sv.Columns, newColumnView(s.Left))
			if v.TwoUp {
				sv.Columns = append(sv.Columns, newColumnView(s.Right))
			}
		}
		v.Sides = append(v.Sides, sv)
	}
	return v
}

func newColumnView(f *paginate.Frame) columnView {
	if f == nil {
		return columnView{Empty: true}
	}
	c := columnView{
		Title:     f.Title,
		Continued: f.Continued(),
		Offset:    f.StartNumber - 1,
	}
	for i, t := range f.Tasks {
		c.Tasks = append(c.Tasks, taskView{
			Number:    f.StartNumber + i,
			Section:   t.SectionLabel,
			Statement: t.Statement,
			Answer:    string(t.Print.AnswerSpaceHint),
		})
	}
	return c
}
