package engine

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewSubprocessExecutor(t *testing.T) {
	executor := NewSubprocessExecutor()
	if executor == nil {
		t.Fatal("NewSubprocessExecutor() returned nil")
	}

	if executor.Timeout != 0 {
		t.Errorf("Default timeout = %v, want 0 (no limit)", executor.Timeout)
	}

	if executor.Env == nil {
		t.Error("Env map should be initialized")
	}
}

func TestRun_Success(t *testing.T) {
	executor := NewSubprocessExecutor()
	ctx := context.Background()

	var sink bytes.Buffer
	status, err := executor.Run(ctx, &sink, "echo", "hello")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}

	if !strings.Contains(sink.String(), "hello") {
		t.Errorf("sink = %q, want it to contain the tool output", sink.String())
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	executor := NewSubprocessExecutor()
	ctx := context.Background()

	var sink bytes.Buffer
	status, err := executor.Run(ctx, &sink, "sh", "-c", "echo violation; exit 3")
	if err != nil {
		t.Fatalf("Run failed: %v (non-zero exit is not an error)", err)
	}

	if status != 3 {
		t.Errorf("status = %d, want 3", status)
	}

	if !strings.Contains(sink.String(), "violation") {
		t.Errorf("sink = %q, want captured output even on failure", sink.String())
	}
}

func TestRun_StderrCaptured(t *testing.T) {
	executor := NewSubprocessExecutor()
	ctx := context.Background()

	var sink bytes.Buffer
	status, err := executor.Run(ctx, &sink, "sh", "-c", "echo oops >&2; exit 1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if status != 1 {
		t.Errorf("status = %d, want 1", status)
	}
	if !strings.Contains(sink.String(), "oops") {
		t.Errorf("sink = %q, want stderr in the capture", sink.String())
	}
}

func TestRun_CommandNotFound(t *testing.T) {
	executor := NewSubprocessExecutor()
	ctx := context.Background()

	var sink bytes.Buffer
	if _, err := executor.Run(ctx, &sink, "definitely-not-a-real-tool-xyz"); err == nil {
		t.Fatal("Run() error = nil, want error for a missing tool")
	}
}

func TestRun_WithWorkDir(t *testing.T) {
	executor := NewSubprocessExecutor()
	executor.WorkDir = t.TempDir()
	ctx := context.Background()

	var sink bytes.Buffer
	status, err := executor.Run(ctx, &sink, "pwd")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
	if !strings.Contains(sink.String(), executor.WorkDir) {
		t.Errorf("pwd = %q, want %q", sink.String(), executor.WorkDir)
	}
}

func TestRun_WithEnv(t *testing.T) {
	executor := NewSubprocessExecutor()
	executor.Env["PYBATCH_TEST_VAR"] = "battery"
	ctx := context.Background()

	var sink bytes.Buffer
	if _, err := executor.Run(ctx, &sink, "sh", "-c", "echo $PYBATCH_TEST_VAR"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(sink.String(), "battery") {
		t.Errorf("sink = %q, want the injected env value", sink.String())
	}
}

func TestOutput_CapturesStdout(t *testing.T) {
	executor := NewSubprocessExecutor()
	ctx := context.Background()

	out, status, err := executor.Output(ctx, "echo", "installed ok")
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
	if !strings.Contains(out, "installed ok") {
		t.Errorf("out = %q, want the command output", out)
	}
}

func TestOutput_NonZeroExit(t *testing.T) {
	executor := NewSubprocessExecutor()
	ctx := context.Background()

	out, status, err := executor.Output(ctx, "sh", "-c", "echo broken >&2; exit 2")
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if status != 2 {
		t.Errorf("status = %d, want 2", status)
	}
	if !strings.Contains(out, "broken") {
		t.Errorf("out = %q, want stderr fallback on failure", out)
	}
}
