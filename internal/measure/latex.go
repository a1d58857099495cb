package measure

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"text/template"
	"time"

	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/printdoc"
	"github.com/abhisek/worksheet/internal/printprofile"
	"github.com/abhisek/worksheet/internal/render"
)

// LatexMeasurer typesets every task in a box as wide as its print column
// and reads the box heights back from the engine log.
type LatexMeasurer struct {
	path    string
	timeout time.Duration
}

// NewLatexMeasurer creates a measurer running the given LaTeX engine.
func NewLatexMeasurer(path string, timeout time.Duration) *LatexMeasurer {
	if path == "" {
		path = render.DefaultLatexPath
	}
	return &LatexMeasurer{path: path, timeout: timeout}
}

var measureLineRe = regexp.MustCompile(`(?m)^MEASURE:(\S+):([0-9.]+)pt$`)

type measureItem struct {
	Key       string
	Statement string
}

const measureTeX = `<<preamble .Landscape>>\newsavebox{\taskbox}
\begin{document}
<<- range .Items>>
\savebox{\taskbox}{\begin{minipage}[t]{<<$.Width>>}<<esc .Statement>>\end{minipage}}
\typeout{MEASURE:<<.Key>>:\the\dimexpr\ht\taskbox+\dp\taskbox\relax}
<<- end>>
\end{document}
`

var measureTemplate = template.Must(template.New("measure").Delims("<<", ">>").Funcs(template.FuncMap{
	"preamble": render.Preamble,
	"esc":      render.EscapeTeX,
}).Parse(measureTeX))

// Source returns the measuring document for doc.
func Source(doc printdoc.Document) ([]byte, error) {
	twoUp := doc.Profile.Layout.TwoUp()
	data := struct {
		Landscape bool
		Width     string
		Items     []measureItem
	}{
		Landscape: landscape(doc),
		Width:     render.ColumnWidth(twoUp),
	}
	for _, v := range doc.Variants {
		for _, t := range v.Tasks {
			data.Items = append(data.Items, measureItem{
				Key:       paginate.HeightKey(v.VariantID, t.OrderIndex),
				Statement: t.Statement,
			})
		}
	}
	var buf bytes.Buffer
	if err := measureTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func landscape(doc printdoc.Document) bool {
	o := doc.Profile.Orientation
	if !o.Valid() {
		o = doc.Profile.Layout.DefaultOrientation()
	}
	return o == printprofile.OrientationLandscape
}

// ParseLog extracts measured heights from engine output.
func ParseLog(log []byte) paginate.Heights {
	heights := paginate.Heights{}
	for _, m := range measureLineRe.FindAllSubmatch(log, -1) {
		h, err := strconv.ParseFloat(string(m[2]), 64)
		if err != nil {
			continue
		}
		heights[string(m[1])] = h
	}
	return heights
}

func (l *LatexMeasurer) Measure(ctx context.Context, doc printdoc.Document) (paginate.Heights, error) {
	if doc.TaskCount() == 0 {
		return paginate.Heights{}, nil
	}
	bin, err := render.LookPath(render.EngineLatex, l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMeasurementUnavailable, err)
	}

	src, err := Source(doc)
	if err != nil {
		return nil, err
	}
	dir, err := os.MkdirTemp("", "worksheet-measure-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, "measure.tex"), src, 0o600); err != nil {
		return nil, err
	}
	out, err := render.Run(ctx, render.Compile(bin, dir, "measure.tex", l.timeout))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMeasurementUnavailable, err)
	}
	return ParseLog(out), nil
}
