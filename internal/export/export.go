// Package export stores rendered PDFs in a local directory or an S3
// bucket.
package export

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Sink stores one exported file and reports where it went.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// Open returns the sink for a destination: "s3://bucket/prefix" or a local
// directory path.
func Open(ctx context.Context, dest, region string) (Sink, error) {
	if strings.HasPrefix(dest, "s3://") {
		u, err := url.Parse(dest)
		if err != nil {
			return nil, fmt.Errorf("parse destination %q: %w", dest, err)
		}
		if u.Host == "" {
			return nil, fmt.Errorf("destination %q has no bucket", dest)
		}
		return NewS3Sink(ctx, u.Host, strings.Trim(u.Path, "/"), region)
	}
	return NewDirSink(dest)
}

// FileName is the export file name of a work.
func FileName(workID, layout string) string {
	return fmt.Sprintf("%s-%s.pdf", workID, layout)
}

// DirSink writes files into a local directory.
type DirSink struct {
	dir string
}

// NewDirSink creates the directory if needed.
func NewDirSink(dir string) (*DirSink, error) {
	if dir == "" {
		return nil, fmt.Errorf("export directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	return &DirSink{dir: dir}, nil
}

func (d *DirSink) Put(_ context.Context, name string, data []byte) (string, error) {
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid export name %q", name)
	}
	path := filepath.Join(d.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return path, nil
}
