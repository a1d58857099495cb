package render

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/avast/retry-go/v4"
)

// RetryConfig bounds retries of transient render failures.
type RetryConfig struct {
	Attempts uint
	Delay    time.Duration
}

// DefaultRetryConfig returns the standard retry settings.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{Attempts: 2, Delay: 500 * time.Millisecond}
}

// RetryRenderer is a decorator that retries transient render failures.
type RetryRenderer struct {
	inner  Renderer
	config RetryConfig
}

// WithRetry wraps a Renderer with retry logic.
func WithRetry(r Renderer, cfg RetryConfig) Renderer {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	return &RetryRenderer{inner: r, config: cfg}
}

func (r *RetryRenderer) Render(ctx context.Context, job Job) ([]byte, error) {
	var pdf []byte
	err := retry.Do(
		func() error {
			out, err := r.inner.Render(ctx, job)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.config.Attempts),
		retry.Delay(r.config.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(shouldRetry),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

func (r *RetryRenderer) Engine() Engine { return r.inner.Engine() }

// shouldRetry reports whether another attempt could succeed. Missing
// binaries and rejected documents fail the same way every time.
func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return false
	}
	var ce *CompileError
	return !errors.As(err, &ce)
}
