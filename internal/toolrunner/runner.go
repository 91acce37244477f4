// Package toolrunner executes external chain tools and classifies how each
// invocation ended. A missing binary is a result, never a panic or abort:
// callers decide whether absence is fatal for their workflow.
package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
)

// Result captures one external tool invocation. It is a value, produced once
// and never mutated.
type Result struct {
	ToolFound          bool
	ExitedSuccessfully bool
	ExitCode           int
	Stdout             string
	Stderr             string
}

// Failure returns the most useful diagnostic text for a failed invocation:
// trimmed stderr when present, otherwise trimmed stdout.
func (r Result) Failure() string {
	if msg := strings.TrimSpace(r.Stderr); msg != "" {
		return msg
	}
	return strings.TrimSpace(r.Stdout)
}

// Runner abstracts command execution for testability.
type Runner interface {
	Run(ctx context.Context, binary string, args ...string) Result
}

// ExecRunner runs commands through os/exec, blocking until the process
// exits. There is deliberately no timeout at this layer: a hung tool hangs
// the workflow, and only context cancellation (operator interrupt) can
// unblock it.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, binary string, args ...string) Result {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		ToolFound: true,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
	}

	switch {
	case err == nil:
		result.ExitedSuccessfully = true
	case isNotFound(err):
		result.ToolFound = false
		result.ExitCode = -1
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			// Spawn failed after lookup (permissions, dead context).
			result.ToolFound = false
			result.ExitCode = -1
			if result.Stderr == "" {
				result.Stderr = err.Error()
			}
		}
	}
	return result
}

func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
