package isort

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/lintkit/pybatch/internal/engine"
)

// Compile-time interface checks
var (
	_ engine.FileEngine = (*Engine)(nil)
	_ engine.Installer  = (*Engine)(nil)
)

// Engine wraps isort, queried one file at a time in check-only mode.
// It never rewrites a file; an unsorted file produces a diff on the
// sink and a false result.
type Engine struct {
	// ToolsDir is where the isort virtualenv is installed.
	// Default: ~/.pybatch/tools
	ToolsDir string

	// IsortPath is the path to the isort executable (optional override).
	IsortPath string

	// executor runs the isort subprocess
	executor *engine.SubprocessExecutor
}

// New creates a new isort engine.
func New(toolsDir string) *Engine {
	if toolsDir == "" {
		toolsDir = engine.DefaultToolsDir()
	}

	return &Engine{
		ToolsDir: toolsDir,
		executor: engine.NewSubprocessExecutor(),
	}
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return "isort"
}

// CheckAvailability checks if isort is installed.
func (e *Engine) CheckAvailability(ctx context.Context) error {
	localPath := e.venv().Bin("isort")
	if _, err := os.Stat(localPath); err == nil {
		return nil
	}

	cmd := exec.CommandContext(ctx, "isort", "--version")
	if err := cmd.Run(); err == nil {
		return nil
	}

	return fmt.Errorf("isort not found (checked: %s and global PATH)", localPath)
}

// Install installs isort via pip in a virtualenv.
func (e *Engine) Install(ctx context.Context, config engine.InstallConfig) error {
	if config.ToolsDir != "" {
		e.ToolsDir = config.ToolsDir
	}
	version := config.Version
	if version == "" {
		version = ">=4.0.0"
	}
	return engine.PipInstall(ctx, e.executor, e.venv(), "isort", "isort"+version)
}

// CheckFile reports whether the file's imports are already in isort's
// canonical order. The diff for an unsorted file is written to sink.
func (e *Engine) CheckFile(ctx context.Context, sink io.Writer, path string) (bool, error) {
	status, err := e.executor.Run(ctx, sink, e.command(), "--check-only", "--diff", path)
	if err != nil {
		return false, err
	}
	return status == 0, nil
}

// venv returns the isort virtualenv layout.
func (e *Engine) venv() engine.Venv {
	return engine.NewVenv(e.ToolsDir, "isort")
}

// command returns the isort command to use.
func (e *Engine) command() string {
	if e.IsortPath != "" {
		return e.IsortPath
	}

	if path := engine.FindTool(e.venv().Bin("isort"), "isort"); path != "" {
		return path
	}

	return e.venv().Bin("isort")
}
