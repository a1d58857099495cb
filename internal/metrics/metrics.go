// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	variantsBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worksheet",
			Name:      "variants_built_total",
			Help:      "Variant assembly attempts by result (ok, insufficient, invalid)",
		},
		[]string{"result"},
	)

	sidesPlanned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "worksheet",
			Name:      "plan_sides",
			Help:      "Printed sides per sheet plan by layout",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"layout"},
	)

	measureResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worksheet",
			Name:      "measurements_total",
			Help:      "Height measurement outcomes (measured, cached, fallback)",
		},
		[]string{"result"},
	)

	renderReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worksheet",
			Name:      "render_requests_total",
			Help:      "PDF render requests by engine and result",
		},
		[]string{"engine", "result"},
	)

	renderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "worksheet",
			Name:      "render_duration_seconds",
			Help:      "Duration of PDF renders by engine",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"engine"},
	)

	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "worksheet",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "worksheet",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	initOnce sync.Once
)

// Init registers collectors. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(variantsBuilt, sidesPlanned, measureResults, renderReqs, renderLatency, httpReqs, httpLatency)
	})
}

// Handler returns the http.Handler for /metrics
func Handler() http.Handler { return promhttp.Handler() }

func IncBuild(result string)               { variantsBuilt.WithLabelValues(result).Inc() }
func ObservePlan(layout string, sides int) { sidesPlanned.WithLabelValues(layout).Observe(float64(sides)) }
func IncMeasure(result string)             { measureResults.WithLabelValues(result).Inc() }

func ObserveRender(engine, result string, dur time.Duration) {
	renderReqs.WithLabelValues(engine, result).Inc()
	renderLatency.WithLabelValues(engine).Observe(dur.Seconds())
}

func ObserveHTTP(method, route string, status int, dur time.Duration) {
	httpReqs.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(route).Observe(dur.Seconds())
}
