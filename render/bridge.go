package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/ffarhour/vegagraph/engine"
)

// ============================================================================
// RENDERER BRIDGE — Synchronous subprocess port
// ============================================================================
// The bridge is the pipeline's only external collaborator: it serializes
// the assembled spec, writes it to the compiler's stdin, and blocks until
// the process exits or the timeout elapses. No data transformation happens
// here.
//
// The Renderer interface is the substitution point — tests and embedders
// can swap the subprocess for anything that honors the contract.
// ============================================================================

// Renderer compiles a serialized intermediate chart spec into a renderable
// one.
type Renderer interface {
	Render(ctx context.Context, spec engine.Spec) ([]byte, error)
}

const (
	// DefaultCommand is the vega-lite → vega compiler from the vega-lite
	// npm package.
	DefaultCommand = "vl2vg"

	// DefaultTimeout bounds one compile call.
	DefaultTimeout = 30 * time.Second
)

// Command runs an external chart compiler as a synchronous subprocess.
type Command struct {
	path    string
	args    []string
	timeout time.Duration
}

// Option configures a Command.
type Option func(*Command)

// WithCommand overrides the compiler executable and its arguments.
func WithCommand(path string, args ...string) Option {
	return func(c *Command) {
		c.path = path
		c.args = args
	}
}

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Command) {
		c.timeout = d
	}
}

// NewCommand creates a Command with vl2vg defaults.
func NewCommand(opts ...Option) *Command {
	c := &Command{
		path:    DefaultCommand,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render serializes the spec, pipes it through the compiler, and returns
// the compiled bytes. Non-zero exit, empty output, and timeout all yield
// *engine.RenderError.
func (c *Command) Render(ctx context.Context, spec engine.Spec) ([]byte, error) {
	input, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.path, c.args...)
	cmd.Stdin = bytes.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, &engine.RenderError{Command: c.path, Err: context.DeadlineExceeded}
	}
	if runErr != nil {
		return nil, &engine.RenderError{
			Command: c.path,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     runErr,
		}
	}
	if stdout.Len() == 0 {
		return nil, &engine.RenderError{Command: c.path, Err: errors.New("no output")}
	}

	return stdout.Bytes(), nil
}
