// Package printjob runs one print request end to end: measure, paginate,
// render, verify and optionally export.
package printjob

import (
	"context"
	"fmt"

	"github.com/abhisek/worksheet/internal/export"
	"github.com/abhisek/worksheet/internal/logger"
	"github.com/abhisek/worksheet/internal/metrics"
	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/printdoc"
	"github.com/abhisek/worksheet/internal/render"
)

// HeightSource supplies measured heights. It never fails; an empty result
// means line estimates.
type HeightSource interface {
	Heights(ctx context.Context, doc printdoc.Document) paginate.Heights
}

// Runner holds the process-scoped collaborators of a print job.
type Runner struct {
	heights   HeightSource
	renderers *render.Registry
	sink      export.Sink
	budget    paginate.Budget
	log       *logger.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithHeights enables engine measurement.
func WithHeights(h HeightSource) Option { return func(r *Runner) { r.heights = h } }

// WithSink stores every rendered PDF.
func WithSink(s export.Sink) Option { return func(r *Runner) { r.sink = s } }

// WithBudget replaces the default page budget.
func WithBudget(b paginate.Budget) Option { return func(r *Runner) { r.budget = b } }

// New creates a Runner.
func New(renderers *render.Registry, log *logger.Logger, opts ...Option) *Runner {
	r := &Runner{renderers: renderers, budget: paginate.DefaultBudget(), log: log.Component("printjob")}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Result is the outcome of a print job.
type Result struct {
	Plan     paginate.SheetPlan
	Engine   render.Engine
	PDF      []byte
	Pages    int
	Location string
}

// Plan paginates a document, using measured heights when available.
func (r *Runner) Plan(ctx context.Context, doc printdoc.Document) (paginate.SheetPlan, error) {
	var heights paginate.Heights
	if r.heights != nil {
		heights = r.heights.Heights(ctx, doc)
	}
	plan, err := doc.Plan(heights, r.budget)
	if err != nil {
		return paginate.SheetPlan{}, err
	}
	metrics.ObservePlan(string(plan.Layout), len(plan.Sides))
	return plan, nil
}

// Run renders a document to PDF. engine is an optional per-request
// override. Errors matching render.ErrRenderUnavailable mean the caller
// should fall back to the printable plan.
func (r *Runner) Run(ctx context.Context, doc printdoc.Document, engine string) (*Result, error) {
	plan, err := r.Plan(ctx, doc)
	if err != nil {
		return nil, err
	}

	rr, err := r.renderers.Select(plan.Layout, engine)
	if err != nil {
		return nil, err
	}
	pdf, err := rr.Render(ctx, render.Job{Document: doc, Plan: plan})
	if err != nil {
		return nil, err
	}

	res := &Result{Plan: plan, Engine: rr.Engine(), PDF: pdf}
	log := r.log.With("work_id", doc.WorkID, "engine", string(rr.Engine()))

	if pages, err := render.PageCount(pdf); err != nil {
		log.Warn("could not read page count", "error", err)
	} else {
		res.Pages = pages
		if pages != len(plan.Sides) {
			log.Warn("page count differs from plan", "pages", pages, "sides", len(plan.Sides))
		}
	}

	if r.sink != nil {
		loc, err := r.sink.Put(ctx, export.FileName(doc.WorkID, string(plan.Layout)), pdf)
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		res.Location = loc
		log.Info("exported", "location", loc)
	}
	return res, nil
}
