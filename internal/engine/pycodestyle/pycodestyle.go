package pycodestyle

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

// Engine wraps pycodestyle, the PEP 8 style-guide checker.
type Engine struct {
	// ToolsDir is where the pycodestyle virtualenv is installed.
	// Default: ~/.pybatch/tools
	ToolsDir string

	// PycodestylePath is the path to the executable (optional override).
	PycodestylePath string

	// ConfigFile is the path passed as --config (typically tox.ini).
	// Empty means pycodestyle's own config discovery applies.
	ConfigFile string

	// executor runs the pycodestyle subprocess
	executor *engine.SubprocessExecutor
}

// New creates a new pycodestyle engine using configFile for style rules.
func New(toolsDir, configFile string) *Engine {
	if toolsDir == "" {
		toolsDir = engine.DefaultToolsDir()
	}

	return &Engine{
		ToolsDir:   toolsDir,
		ConfigFile: configFile,
		executor:   engine.NewSubprocessExecutor(),
	}
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return "pycodestyle"
}

// CheckAvailability checks if pycodestyle is installed.
func (e *Engine) CheckAvailability(ctx context.Context) error {
	localPath := e.venv().Bin("pycodestyle")
	if _, err := os.Stat(localPath); err == nil {
		return nil
	}

	cmd := exec.CommandContext(ctx, "pycodestyle", "--version")
	if err := cmd.Run(); err == nil {
		return nil
	}

	return fmt.Errorf("pycodestyle not found (checked: %s and global PATH)", localPath)
}

// Install installs pycodestyle via pip in a virtualenv.
func (e *Engine) Install(ctx context.Context, config engine.InstallConfig) error {
	if config.ToolsDir != "" {
		e.ToolsDir = config.ToolsDir
	}
	version := config.Version
	if version == "" {
		version = ">=2.0.0"
	}
	return engine.PipInstall(ctx, e.executor, e.venv(), "pycodestyle", "pycodestyle"+version)
}

// Run checks the given files in one pycodestyle invocation. The
// returned status is the tool's exit code (zero = clean).
func (e *Engine) Run(ctx context.Context, sink io.Writer, files []string) (int, error) {
	if len(files) == 0 {
		return 0, nil
	}

	args := make([]string, 0, len(files)+1)
	if e.ConfigFile != "" {
		args = append(args, "--config="+e.ConfigFile)
	}
	args = append(args, files...)

	return e.executor.Run(ctx, sink, e.command(), args...)
}

// venv returns the pycodestyle virtualenv layout.
func (e *Engine) venv() engine.Venv {
	return engine.NewVenv(e.ToolsDir, "pycodestyle")
}

// command returns the pycodestyle command to use.
func (e *Engine) command() string {
	if e.PycodestylePath != "" {
		return e.PycodestylePath
	}

	if path := engine.FindTool(e.venv().Bin("pycodestyle"), "pycodestyle"); path != "" {
		return path
	}

	return e.venv().Bin("pycodestyle")
}
