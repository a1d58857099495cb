// Package render turns a paginated printable document into a PDF. Two
// backends share one input contract: a headless browser printing an HTML
// view, and a LaTeX engine compiling a generated document. Pagination is
// done before a backend is chosen and never differs between them.
package render

import (
	"context"

	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/printdoc"
)

// Renderer produces a PDF for a job.
type Renderer interface {
	// Render returns the PDF bytes. Errors wrapping ErrRenderUnavailable
	// mean the backend could not run at all.
	Render(ctx context.Context, job Job) ([]byte, error)

	// Engine identifies the backend.
	Engine() Engine
}

// Job is one render request: the document and its sheet plan.
type Job struct {
	Document printdoc.Document
	Plan     paginate.SheetPlan
}
