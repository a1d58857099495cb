package render

import (
	"context"
	"sync"
)

// MockResult is a canned result for the MockRenderer.
type MockResult struct {
	PDF []byte
	Err error
}

// MockRenderer is a deterministic Renderer for testing. It returns canned
// results in FIFO order and records all jobs.
type MockRenderer struct {
	mu      sync.Mutex
	engine  Engine
	results []MockResult
	Calls   []Job
}

// NewMockRenderer creates a MockRenderer with the given canned results.
func NewMockRenderer(engine Engine, results ...MockResult) *MockRenderer {
	return &MockRenderer{engine: engine, results: results}
}

// Render returns the next canned result, or an *UnavailableError when the
// queue is empty.
func (m *MockRenderer) Render(_ context.Context, job Job) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, job)

	if len(m.results) == 0 {
		return nil, &UnavailableError{Engine: m.engine}
	}
	res := m.results[0]
	m.results = m.results[1:]
	if res.Err != nil {
		return nil, res.Err
	}
	return res.PDF, nil
}

func (m *MockRenderer) Engine() Engine { return m.engine }

// CallCount returns the number of Render calls made.
func (m *MockRenderer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
