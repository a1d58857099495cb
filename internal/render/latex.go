package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultLatexPath is the engine used when none is configured.
const DefaultLatexPath = "pdflatex"

// LatexRenderer compiles the generated LaTeX document.
type LatexRenderer struct {
	path    string
	timeout time.Duration
}

// NewLatexRenderer creates a LaTeX backend.
func NewLatexRenderer(path string, timeout time.Duration) *LatexRenderer {
	if path == "" {
		path = DefaultLatexPath
	}
	return &LatexRenderer{path: path, timeout: timeout}
}

func (l *LatexRenderer) Engine() Engine { return EngineLatex }

func (l *LatexRenderer) Render(ctx context.Context, job Job) ([]byte, error) {
	bin, err := LookPath(EngineLatex, l.path)
	if err != nil {
		return nil, err
	}

	src, err := TeX(job)
	if err != nil {
		return nil, fmt.Errorf("building document: %w", err)
	}

	dir, err := os.MkdirTemp("", "worksheet-latex-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, "doc.tex"), src, 0o600); err != nil {
		return nil, err
	}

	_, err = Run(ctx, Compile(bin, dir, "doc.tex", l.timeout))
	if err != nil {
		return nil, err
	}
	return readPDF(EngineLatex, filepath.Join(dir, "doc.pdf"))
}

// Compile is the engine invocation for a document in dir. Log lines are
// not wrapped so that they can be parsed.
func Compile(bin, dir, file string, timeout time.Duration) Command {
	return Command{
		Engine:  EngineLatex,
		Path:    bin,
		Dir:     dir,
		Env:     []string{"max_print_line=10000"},
		Timeout: timeout,
		Args:    []string{"-interaction=nonstopmode", "-halt-on-error", "-output-directory=" + dir, file},
	}
}
