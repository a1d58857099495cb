package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/ui/theme"
)

// PlanView renders a sheet plan as one card per printed side.
type PlanView struct {
	Plan  paginate.SheetPlan
	Width int
}

// NewPlanView creates a plan preview at the given terminal width.
func NewPlanView(plan paginate.SheetPlan, width int) PlanView {
	if width < 40 {
		width = 40
	}
	return PlanView{Plan: plan, Width: width}
}

// View renders the header and every side.
func (v PlanView) View() string {
	p := v.Plan
	var b strings.Builder

	mode := "simplex"
	if p.Duplex {
		mode = "duplex"
	}
	b.WriteString(theme.Title.Render(fmt.Sprintf("%s · %s · %s", p.Layout, p.Orientation, mode)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d frames on %d sides, %d sheets", p.FrameCount(), len(p.Sides), p.SheetCount())))
	b.WriteString("\n\n")

	for _, s := range p.Sides {
		b.WriteString(v.side(s))
		b.WriteString("\n")
	}
	return b.String()
}

func (v PlanView) side(s paginate.Side) string {
	heading := fmt.Sprintf("Page %d · sheet %d %s", s.Page, s.Sheet, s.Face)
	inner := v.Width - 4

	if s.Blank {
		return theme.BlankSide.Width(inner).Render(heading + "\n" + theme.Hint.Render("blank back"))
	}

	style := theme.Front
	if s.Face == paginate.FaceBack {
		style = theme.Back
	}

	var body string
	if v.Plan.Layout.TwoUp() {
		colWidth := (inner - 5) / 2
		sep := theme.CutLine.Render(strings.TrimRight(strings.Repeat("│\n", 4), "\n"))
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			column(s.Left, colWidth),
			sep,
			column(s.Right, colWidth),
		)
	} else {
		body = column(s.Left, inner-2)
	}
	return style.Width(inner).Render(theme.Subtitle.Render(heading) + "\n" + body)
}

func column(f *paginate.Frame, width int) string {
	style := theme.Column.Width(width)
	if f == nil {
		return style.Render(theme.Hint.Render("empty"))
	}

	title := f.Title
	if f.Continued() {
		title += " (cont.)"
	}
	var tasks string
	switch {
	case len(f.Tasks) == 0:
		tasks = "no tasks"
	case len(f.Tasks) == 1:
		tasks = fmt.Sprintf("task %d", f.StartNumber)
	default:
		tasks = fmt.Sprintf("tasks %d–%d", f.StartNumber, f.EndNumber())
	}

	lines := []string{
		theme.Body.Bold(true).Render(title),
		theme.Subtitle.Render(fmt.Sprintf("frame %d · %s", f.Number, tasks)),
		NewCapacityBar(string(f.Unit), f.Cost, f.Capacity, width-2).View(),
	}
	if f.Oversized {
		lines = append(lines, theme.Warning.Render("oversized task"))
	}
	return style.Render(strings.Join(lines, "\n"))
}
