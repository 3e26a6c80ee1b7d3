package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// SubprocessExecutor runs external tools as subprocesses.
type SubprocessExecutor struct {
	// Timeout is the max execution time. Zero means no limit: a
	// hanging tool blocks the run.
	Timeout time.Duration

	// WorkDir is the working directory.
	WorkDir string

	// Env is additional environment variables.
	Env map[string]string
}

// NewSubprocessExecutor creates a new executor.
func NewSubprocessExecutor() *SubprocessExecutor {
	return &SubprocessExecutor{
		Env: make(map[string]string),
	}
}

// Run executes a command, streaming its combined stdout and stderr
// into sink, and returns the process exit code. A non-zero exit is a
// normal outcome (violations found), not an error; an error means the
// process could not be started at all.
func (e *SubprocessExecutor) Run(ctx context.Context, sink io.Writer, name string, args ...string) (int, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	if e.WorkDir != "" {
		cmd.Dir = e.WorkDir
	}

	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.envSlice()...)
	}

	// Tools write diagnostics to both streams; the caller gets one
	// ordered capture.
	cmd.Stdout = sink
	cmd.Stderr = sink

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("failed to execute %s: %w", name, err)
	}

	return 0, nil
}

// Output executes a command and returns its captured stdout. Used for
// tool installation steps where the output is inspected, not streamed.
func (e *SubprocessExecutor) Output(ctx context.Context, name string, args ...string) (string, int, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	if e.WorkDir != "" {
		cmd.Dir = e.WorkDir
	}

	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.envSlice()...)
	}

	stdout, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			out := string(stdout)
			if out == "" {
				out = string(exitErr.Stderr)
			}
			return out, exitErr.ExitCode(), nil
		}
		return "", 0, fmt.Errorf("failed to execute %s: %w", name, err)
	}

	return string(stdout), 0, nil
}

func (e *SubprocessExecutor) envSlice() []string {
	result := make([]string, 0, len(e.Env))
	for k, v := range e.Env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}
