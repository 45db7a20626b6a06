package engine

import "fmt"

// ============================================================================
// ERROR TAXONOMY
// ============================================================================
// Every pipeline stage fails fast and propagates one of these upward — the
// core performs no recovery, retry, or logging. A run either produces a
// complete assembled spec or aborts before any output is written.
// ============================================================================

// NotFoundError reports a missing input directory.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input directory not found: %s", e.Path)
}

// MalformedInputError reports a record file that is not valid JSON.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input file %s: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// ConfigNotFoundError reports a missing chart-type template resource.
type ConfigNotFoundError struct {
	ChartType string
	Path      string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("no config for chart type %q (looked for %s)", e.ChartType, e.Path)
}

// RenderError reports a renderer subprocess failure: non-zero exit, empty
// output, or timeout.
type RenderError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("renderer %q failed", e.Command)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *RenderError) Unwrap() error { return e.Err }
