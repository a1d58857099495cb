package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/printable"
	"github.com/abhisek/worksheet/internal/printdoc"
	"github.com/abhisek/worksheet/internal/printprofile"
)

func testJob(t *testing.T, layout printprofile.Layout) Job {
	t.Helper()
	mk := func(id, title string, n int) printdoc.Variant {
		v := printdoc.Variant{VariantID: id, Title: title, TasksCount: n}
		for i := range n {
			v.Tasks = append(v.Tasks, printable.Task{
				TaskID:     id + "-" + string(rune('a'+i)),
				OrderIndex: i,
				Statement:  title + " task 50% & $x_1^2$",
				Print:      printable.Metrics("short"),
			})
		}
		return v
	}
	doc := printdoc.Document{
		WorkID:   "w1",
		Title:    "Fractions",
		Profile:  printdoc.Profile{Layout: layout, Orientation: layout.DefaultOrientation()},
		Variants: []printdoc.Variant{mk("A", "Alpha", 7), mk("B", "Beta", 7)},
	}
	b := paginate.DefaultBudget()
	b.PageLines = 16
	plan, err := doc.Plan(nil, b)
	require.NoError(t, err)
	return Job{Document: doc, Plan: plan}
}

func TestEscapeTeX(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"50% & #1_a", `50\% \& \#1\_a`},
		{"cost $5 total", `cost \$5 total`},
		{"keep $x_1^2$ as is", "keep $x_1^2$ as is"},
		{"a\nb", `a\par b`},
		{"$$\\frac{a}{b}$$ {x}", `$$\frac{a}{b}$$ \{x\}`},
		{`back\slash`, `back\textbackslash{}slash`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeTeX(tt.in), "input %q", tt.in)
	}
}

func TestTeX_TwoCutColumnsSwapOnBack(t *testing.T) {
	src, err := TeX(testJob(t, printprofile.LayoutTwoCut))
	require.NoError(t, err)
	s := string(src)

	assert.Contains(t, s, "a4paper,landscape")
	assert.Equal(t, 1, strings.Count(s, `\newpage`))
	assert.Contains(t, s, `Alpha task 50\% \& $x_1^2$`)

	pages := strings.Split(s, `\newpage`)
	require.Len(t, pages, 2)
	assert.Less(t, strings.Index(pages[0], `\textbf{Alpha}`), strings.Index(pages[0], `\textbf{Beta}`))
	assert.Less(t, strings.Index(pages[1], `\textbf{Beta}`), strings.Index(pages[1], `\textbf{Alpha}`))
	assert.Contains(t, pages[1], `\setcounter{enumi}{6}`)
	assert.Contains(t, pages[1], `(continued)`)
}

func TestTeX_SinglePortrait(t *testing.T) {
	src, err := TeX(testJob(t, printprofile.LayoutSingle))
	require.NoError(t, err)
	s := string(src)
	assert.Contains(t, s, "a4paper,portrait")
	assert.NotContains(t, s, `\hfill`)
	assert.Equal(t, 3, strings.Count(s, `\newpage`))
}

func TestHTML_Escapes(t *testing.T) {
	job := testJob(t, printprofile.LayoutTwo)
	job.Document.Variants[0].Tasks[0].Statement = "<script>alert(1)</script>"
	plan, err := job.Document.Plan(nil, paginate.DefaultBudget())
	require.NoError(t, err)
	job.Plan = plan

	page, err := HTML(job)
	require.NoError(t, err)
	s := string(page)
	assert.NotContains(t, s, "<script>alert(1)</script>")
	assert.Contains(t, s, "size: A4 landscape")
	assert.Equal(t, 1, strings.Count(s, `class="side last"`))
	assert.Contains(t, s, `<ol start="1">`)
}

// blankBackJob is two_cut with variant A spanning three frames, so the
// A/B pair ends on a front and a blank back precedes the C pair.
func blankBackJob(t *testing.T) Job {
	t.Helper()
	mk := func(id string, n int) printdoc.Variant {
		v := printdoc.Variant{VariantID: id, Title: "Variant " + id, TasksCount: n}
		for i := range n {
			v.Tasks = append(v.Tasks, printable.Task{TaskID: id, OrderIndex: i, Statement: "task", Print: printable.Metrics("short")})
		}
		return v
	}
	doc := printdoc.Document{
		WorkID:   "w1",
		Profile:  printdoc.Profile{Layout: printprofile.LayoutTwoCut, Orientation: printprofile.OrientationLandscape},
		Variants: []printdoc.Variant{mk("A", 14), mk("B", 3), mk("C", 3)},
	}
	b := paginate.DefaultBudget()
	b.PageLines = 16
	plan, err := doc.Plan(nil, b)
	require.NoError(t, err)
	require.Len(t, plan.Sides, 5)
	require.True(t, plan.Sides[3].Blank)
	return Job{Document: doc, Plan: plan}
}

func TestTeX_BlankBackIsOwnPage(t *testing.T) {
	src, err := TeX(blankBackJob(t))
	require.NoError(t, err)

	pages := strings.Split(string(src), `\newpage`)
	require.Len(t, pages, 5)
	assert.Contains(t, pages[3], `\null`)
	assert.NotContains(t, pages[3], `\textbf`)
	assert.Contains(t, pages[4], `\textbf{Variant C}`)
}

func TestHTML_BlankBackIsOwnPage(t *testing.T) {
	src, err := HTML(blankBackJob(t))
	require.NoError(t, err)
	s := string(src)

	assert.Contains(t, s, ".side { display: flex; gap: 8mm; break-after: page; }")
	assert.Equal(t, 5, strings.Count(s, `<div class="side`))
	assert.Equal(t, 1, strings.Count(s, `<div class="side blank">&nbsp;</div>`))
	assert.Equal(t, 1, strings.Count(s, `<div class="side last">`))

	blank := strings.Index(s, `class="side blank"`)
	assert.Less(t, strings.LastIndex(s[:blank], "Variant A"), blank)
	assert.Greater(t, strings.Index(s[blank:], "Variant C"), 0)
}
