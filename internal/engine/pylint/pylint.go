package pylint

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
	_ engine.BatchEngine = (*Engine)(nil)
	_ engine.Installer   = (*Engine)(nil)
)

// Engine wraps Pylint, the comprehensive Python convention linter.
//
// It is used in two modes: the default mode checks files against a
// project rcfile; the Py3k view runs Pylint's Python 3 porting
// checker instead.
//
// Note: Engine is goroutine-safe and stateless between runs. The
// working directory is determined by CWD at execution time.
type Engine struct {
	// ToolsDir is where the Pylint virtualenv is installed.
	// Default: ~/.pybatch/tools
	ToolsDir string

	// PylintPath is the path to the pylint executable (optional override).
	PylintPath string

	// RcFile is the path to the rcfile passed as --rcfile. Empty means
	// pylint's own config discovery applies.
	RcFile string

	// executor runs the pylint subprocess
	executor *engine.SubprocessExecutor
}

// New creates a new Pylint engine using rcfile for convention checks.
func New(toolsDir, rcfile string) *Engine {
	if toolsDir == "" {
		toolsDir = engine.DefaultToolsDir()
	}

	return &Engine{
		ToolsDir: toolsDir,
		RcFile:   rcfile,
		executor: engine.NewSubprocessExecutor(),
	}
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return "pylint"
}

// CheckAvailability checks if Pylint is installed.
func (e *Engine) CheckAvailability(ctx context.Context) error {
	localPath := e.venv().Bin("pylint")
	if _, err := os.Stat(localPath); err == nil {
		return nil // Found in tools dir
	}

	cmd := exec.CommandContext(ctx, "pylint", "--version")
	if err := cmd.Run(); err == nil {
		return nil // Found globally
	}

	return fmt.Errorf("pylint not found (checked: %s and global PATH)", localPath)
}

// Install installs Pylint via pip in a virtualenv.
func (e *Engine) Install(ctx context.Context, config engine.InstallConfig) error {
	if config.ToolsDir != "" {
		e.ToolsDir = config.ToolsDir
	}
	version := config.Version
	if version == "" {
		version = ">=2.0.0"
	}
	return engine.PipInstall(ctx, e.executor, e.venv(), "pylint", "pylint"+version)
}

// Run lints the given files in one pylint invocation against the
// configured rcfile. Diagnostics go to sink; the returned status is
// pylint's exit code (zero = clean).
func (e *Engine) Run(ctx context.Context, sink io.Writer, files []string) (int, error) {
	if len(files) == 0 {
		return 0, nil
	}

	args := make([]string, 0, len(files)+1)
	if e.RcFile != "" {
		args = append(args, "--rcfile="+e.RcFile)
	}
	args = append(args, files...)

	return e.executor.Run(ctx, sink, e.command(), args...)
}

// Py3k returns a view of the engine that runs Pylint's Python 3
// porting checker (--py3k) instead of the configured rcfile.
func (e *Engine) Py3k() engine.BatchEngine {
	return &py3kEngine{Engine: e}
}

// venv returns the Pylint virtualenv layout.
func (e *Engine) venv() engine.Venv {
	return engine.NewVenv(e.ToolsDir, "pylint")
}

// command returns the pylint command to use.
func (e *Engine) command() string {
	// If explicit path is set, use it
	if e.PylintPath != "" {
		return e.PylintPath
	}

	if path := engine.FindTool(e.venv().Bin("pylint"), "pylint"); path != "" {
		return path
	}

	// Fall back to local path (will fail with proper error)
	return e.venv().Bin("pylint")
}

// py3kEngine is the Python-3-compatibility view of a pylint Engine.
type py3kEngine struct {
	*Engine
}

func (p *py3kEngine) Name() string {
	return "pylint-py3k"
}

func (p *py3kEngine) Run(ctx context.Context, sink io.Writer, files []string) (int, error) {
	if len(files) == 0 {
		return 0, nil
	}

	args := make([]string, 0, len(files)+1)
	args = append(args, "--py3k")
	args = append(args, files...)

	return p.executor.Run(ctx, sink, p.command(), args...)
}
