package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/worksheet/internal/logger"
	"github.com/abhisek/worksheet/internal/printprofile"
)

// Config configures both backends.
type Config struct {
	// Engine is the process-wide override; empty keeps the layout
	// preference.
	Engine       string
	ChromiumPath string
	LatexPath    string
	Timeout      time.Duration
	Retry        RetryConfig
}

// DefaultConfig returns the standard render settings.
func DefaultConfig() Config {
	return Config{
		LatexPath: DefaultLatexPath,
		Timeout:   60 * time.Second,
		Retry:     DefaultRetryConfig(),
	}
}

// Registry holds one renderer per engine and applies the selection policy.
type Registry struct {
	mu          sync.RWMutex
	renderers   map[Engine]Renderer
	envOverride string
}

// NewRegistry builds both backends from configuration, each wrapped with
// middleware: caller → retry → observation → backend.
func NewRegistry(cfg Config, log *logger.Logger) *Registry {
	log = log.Component("render")
	r := &Registry{renderers: make(map[Engine]Renderer), envOverride: cfg.Engine}
	for _, base := range []Renderer{
		NewBrowserRenderer(cfg.ChromiumPath, cfg.Timeout),
		NewLatexRenderer(cfg.LatexPath, cfg.Timeout),
	} {
		r.Register(WithRetry(WithObservation(base, log), cfg.Retry))
	}
	return r
}

// NewEmptyRegistry creates a registry without backends.
func NewEmptyRegistry(envOverride string) *Registry {
	return &Registry{renderers: make(map[Engine]Renderer), envOverride: envOverride}
}

// Register adds or replaces the renderer for its engine.
func (r *Registry) Register(rr Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[rr.Engine()] = rr
}

// SetEnvOverride replaces the process-wide engine override.
func (r *Registry) SetEnvOverride(engine string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.envOverride = engine
}

// Select returns the renderer for a layout and optional query override.
func (r *Registry) Select(layout printprofile.Layout, queryOverride string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e := SelectEngine(layout, r.envOverride, queryOverride)
	rr, ok := r.renderers[e]
	if !ok {
		return nil, &UnavailableError{Engine: e, Err: fmt.Errorf("no %s renderer configured", e)}
	}
	return rr, nil
}
