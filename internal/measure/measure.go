// Package measure obtains engine-measured task heights for pagination. It
// is an enhancement: every failure degrades to line-based estimation.
package measure

import (
	"context"
	"errors"

	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/printdoc"
)

// ErrMeasurementUnavailable means no heights could be measured.
var ErrMeasurementUnavailable = errors.New("measurement unavailable")

// Measurer measures the rendered height in points of every task of a
// document, keyed by paginate.HeightKey.
type Measurer interface {
	Measure(ctx context.Context, doc printdoc.Document) (paginate.Heights, error)
}

// Cache stores measured heights. Keys are already scoped by the caller.
type Cache interface {
	Get(ctx context.Context, keys []string) (map[string]float64, error)
	Put(ctx context.Context, heights map[string]float64) error
}

// Disabled is a Measurer that never measures.
type Disabled struct{}

func (Disabled) Measure(context.Context, printdoc.Document) (paginate.Heights, error) {
	return nil, ErrMeasurementUnavailable
}
