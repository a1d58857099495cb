package measure

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/worksheet/internal/logger"
	"github.com/abhisek/worksheet/internal/metrics"
	"github.com/abhisek/worksheet/internal/paginate"
	"github.com/abhisek/worksheet/internal/printdoc"
)

// Service resolves heights for a document from its caches, measuring only
// what they miss.
type Service struct {
	measurer Measurer
	caches   []Cache
	timeout  time.Duration
	log      *logger.Logger
}

// NewService creates a Service. Caches are consulted in order.
func NewService(m Measurer, timeout time.Duration, log *logger.Logger, caches ...Cache) *Service {
	return &Service{measurer: m, caches: caches, timeout: timeout, log: log.Component("measure")}
}

// scope keys heights by the column geometry they were measured at.
func scope(doc printdoc.Document) string {
	width := "full"
	if doc.Profile.Layout.TwoUp() {
		width = "half"
	}
	o := doc.Profile.Orientation
	if !o.Valid() {
		o = doc.Profile.Layout.DefaultOrientation()
	}
	return fmt.Sprintf("%s-%s:", width, o)
}

// Heights returns whatever heights could be obtained. It never fails:
// missing heights make pagination fall back to lines for that variant.
func (s *Service) Heights(ctx context.Context, doc printdoc.Document) paginate.Heights {
	prefix := scope(doc)
	var keys []string
	for _, v := range doc.Variants {
		for _, t := range v.Tasks {
			keys = append(keys, paginate.HeightKey(v.VariantID, t.OrderIndex))
		}
	}
	if len(keys) == 0 {
		return nil
	}

	heights := paginate.Heights{}
	for _, c := range s.caches {
		missing := missingKeys(keys, heights, prefix)
		if len(missing) == 0 {
			break
		}
		got, err := c.Get(ctx, missing)
		if err != nil {
			s.log.Warn("height cache read failed", "error", err)
			continue
		}
		for k, h := range got {
			heights[k[len(prefix):]] = h
		}
	}
	if len(missingKeys(keys, heights, prefix)) == 0 {
		metrics.IncMeasure("cached")
		return heights
	}

	mctx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		mctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	measured, err := s.measurer.Measure(mctx, doc)
	if err != nil {
		metrics.IncMeasure("fallback")
		s.log.Warn("measurement unavailable, using line estimates", "work_id", doc.WorkID, "error", err)
		return heights
	}
	metrics.IncMeasure("measured")

	fresh := make(map[string]float64, len(measured))
	for k, h := range measured {
		heights[k] = h
		fresh[prefix+k] = h
	}
	for _, c := range s.caches {
		if err := c.Put(ctx, fresh); err != nil {
			s.log.Warn("height cache write failed", "error", err)
		}
	}
	return heights
}

func missingKeys(keys []string, have paginate.Heights, prefix string) []string {
	var out []string
	for _, k := range keys {
		if _, ok := have[k]; !ok {
			out = append(out, prefix+k)
		}
	}
	return out
}
