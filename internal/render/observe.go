package render

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/worksheet/internal/logger"
	"github.com/abhisek/worksheet/internal/metrics"
)

// ObservedRenderer is a decorator that logs and records metrics for every
// render attempt.
type ObservedRenderer struct {
	inner Renderer
	log   *logger.Logger
}

// WithObservation wraps a Renderer with logging and metrics.
func WithObservation(r Renderer, log *logger.Logger) Renderer {
	return &ObservedRenderer{inner: r, log: log.With("engine", string(r.Engine()))}
}

func (o *ObservedRenderer) Render(ctx context.Context, job Job) ([]byte, error) {
	start := time.Now()
	pdf, err := o.inner.Render(ctx, job)
	dur := time.Since(start)

	result := "ok"
	switch {
	case errors.Is(err, ErrRenderUnavailable):
		result = "unavailable"
	case err != nil:
		result = "error"
	}
	metrics.ObserveRender(string(o.inner.Engine()), result, dur)

	kv := []interface{}{
		"work_id", job.Document.WorkID,
		"layout", string(job.Plan.Layout),
		"sides", len(job.Plan.Sides),
		"duration_ms", dur.Milliseconds(),
	}
	if err != nil {
		o.log.Warn("render failed", append(kv, "result", result, "error", err)...)
		return nil, err
	}
	o.log.Info("rendered", append(kv, "bytes", len(pdf))...)
	return pdf, nil
}

func (o *ObservedRenderer) Engine() Engine { return o.inner.Engine() }
