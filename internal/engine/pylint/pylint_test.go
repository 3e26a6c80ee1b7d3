package pylint

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	e := New("", ".pylintrc")
	if e.ToolsDir == "" {
		t.Error("ToolsDir should default to the standard tools directory")
	}
	if e.Name() != "pylint" {
		t.Errorf("Name() = %q, want pylint", e.Name())
	}
}

func TestRun_EmptyFileList(t *testing.T) {
	e := New(t.TempDir(), ".pylintrc")

	var sink bytes.Buffer
	status, err := e.Run(context.Background(), &sink, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if status != 0 {
		t.Errorf("status = %d, want 0 for an empty batch", status)
	}
	if sink.Len() != 0 {
		t.Errorf("sink = %q, want no output for an empty batch", sink.String())
	}
}

func TestPy3k_View(t *testing.T) {
	e := New(t.TempDir(), ".pylintrc")
	p := e.Py3k()

	if p.Name() != "pylint-py3k" {
		t.Errorf("Name() = %q, want pylint-py3k", p.Name())
	}

	var sink bytes.Buffer
	status, err := p.Run(context.Background(), &sink, nil)
	if err != nil || status != 0 {
		t.Errorf("Run(empty) = (%d, %v), want (0, nil)", status, err)
	}
}

func TestCommand_FallsBackToVenvPath(t *testing.T) {
	e := New(t.TempDir(), "")
	// Nothing installed in the temp tools dir; PATH may or may not
	// carry pylint, so only check the override wins.
	e.PylintPath = "/custom/pylint"
	if got := e.command(); got != "/custom/pylint" {
		t.Errorf("command() = %q, want explicit override", got)
	}

	e.PylintPath = ""
	if got := e.command(); !strings.Contains(got, "pylint") {
		t.Errorf("command() = %q, want a pylint path", got)
	}
}
