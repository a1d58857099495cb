package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// maxOutput bounds the engine output kept for error reports.
const maxOutput = 4096

// Command is one external engine invocation.
type Command struct {
	Engine  Engine
	Path    string
	Args    []string
	Dir     string
	Env     []string
	Timeout time.Duration
}

// Run executes the command. A missing binary or a timeout is reported as an
// *UnavailableError; a non-zero exit as a *CompileError carrying the tail
// of the combined output.
func Run(ctx context.Context, c Command) ([]byte, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err == nil {
		return out.Bytes(), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, &UnavailableError{Engine: c.Engine, Err: ctxErr}
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return nil, &UnavailableError{Engine: c.Engine, Err: err}
	}
	return nil, &CompileError{Engine: c.Engine, Output: tail(out.Bytes()), Err: err}
}

// LookPath resolves the first available binary among candidates.
func LookPath(engine Engine, candidates ...string) (string, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if p, err := exec.LookPath(c); err == nil {
			return p, nil
		}
	}
	return "", &UnavailableError{Engine: engine, Err: fmt.Errorf("none of %v found: %w", candidates, exec.ErrNotFound)}
}

func readPDF(engine Engine, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CompileError{Engine: engine, Err: fmt.Errorf("reading output: %w", err)}
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, &CompileError{Engine: engine, Err: errors.New("output is not a PDF")}
	}
	return data, nil
}

func tail(b []byte) string {
	if len(b) > maxOutput {
		b = b[len(b)-maxOutput:]
	}
	return string(b)
}
