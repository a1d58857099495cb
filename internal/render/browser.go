package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BrowserRenderer prints the HTML view with headless Chromium.
type BrowserRenderer struct {
	path    string
	timeout time.Duration
}

// NewBrowserRenderer creates a browser backend. An empty path searches the
// usual Chromium binary names.
func NewBrowserRenderer(path string, timeout time.Duration) *BrowserRenderer {
	return &BrowserRenderer{path: path, timeout: timeout}
}

func (b *BrowserRenderer) Engine() Engine { return EngineBrowser }

func (b *BrowserRenderer) Render(ctx context.Context, job Job) ([]byte, error) {
	bin, err := b.binary()
	if err != nil {
		return nil, err
	}

	page, err := HTML(job)
	if err != nil {
		return nil, fmt.Errorf("building print view: %w", err)
	}

	dir, err := os.MkdirTemp("", "worksheet-browser-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	index := filepath.Join(dir, "index.html")
	if err := os.WriteFile(index, page, 0o600); err != nil {
		return nil, err
	}
	out := filepath.Join(dir, "out.pdf")

	_, err = Run(ctx, Command{
		Engine:  EngineBrowser,
		Path:    bin,
		Dir:     dir,
		Timeout: b.timeout,
		Args: []string{
			"--headless",
			"--disable-gpu",
			"--no-sandbox",
			"--no-pdf-header-footer",
			"--virtual-time-budget=5000",
			"--print-to-pdf=" + out,
			"file://" + index,
		},
	})
	if err != nil {
		return nil, err
	}
	return readPDF(EngineBrowser, out)
}

func (b *BrowserRenderer) binary() (string, error) {
	if b.path != "" {
		return LookPath(EngineBrowser, b.path)
	}
	return LookPath(EngineBrowser, "chromium", "chromium-browser", "google-chrome", "google-chrome-stable")
}
