package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ===== Path/Directory Helpers =====

// DefaultToolsDir returns the standard tools directory (~/.pybatch/tools).
// Used by all engines for consistent tool installation location.
func DefaultToolsDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pybatch", "tools")
}

// EnsureDir creates directory if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FindTool locates a tool binary, checking local path first, then global PATH.
// Returns empty string if not found.
func FindTool(localPath, globalName string) string {
	if localPath != "" {
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}
	if path, err := exec.LookPath(globalName); err == nil {
		return path
	}
	return ""
}

// PythonCommand returns the Python interpreter command to use.
func PythonCommand() string {
	// Try python3 first, then python
	if _, err := exec.LookPath("python3"); err == nil {
		return "python3"
	}
	return "python"
}

// ===== Virtualenv Helpers =====

// Venv describes a tool-specific virtualenv under the tools directory.
type Venv struct {
	// Root is the virtualenv directory, e.g. ~/.pybatch/tools/pylint-venv.
	Root string
}

// NewVenv returns the virtualenv layout for a tool under toolsDir.
func NewVenv(toolsDir, tool string) Venv {
	return Venv{Root: filepath.Join(toolsDir, tool+"-venv")}
}

// Bin returns the path of an executable inside the virtualenv.
func (v Venv) Bin(name string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(v.Root, "Scripts", name+".exe")
	}
	return filepath.Join(v.Root, "bin", name)
}

// Pip returns the path to pip in the virtualenv.
func (v Venv) Pip() string {
	return v.Bin("pip")
}

// Python returns the path to the interpreter in the virtualenv.
func (v Venv) Python() string {
	return v.Bin("python")
}

// Exists reports whether the virtualenv directory is present.
func (v Venv) Exists() bool {
	_, err := os.Stat(v.Root)
	return err == nil
}

// PipInstall creates the virtualenv if needed and installs pkgSpec
// (e.g. "pylint>=2.0.0") into it. Incomplete virtualenvs (missing pip
// or the expected tool binary) are removed and rebuilt.
func PipInstall(ctx context.Context, executor *SubprocessExecutor, v Venv, tool, pkgSpec string) error {
	if err := EnsureDir(filepath.Dir(v.Root)); err != nil {
		return fmt.Errorf("failed to create tools dir: %w", err)
	}

	pythonCmd := PythonCommand()
	if _, err := exec.LookPath(pythonCmd); err != nil {
		return fmt.Errorf("python not found: please install Python first")
	}

	// If the venv exists but is incomplete, remove it
	if v.Exists() {
		_, pipErr := os.Stat(v.Pip())
		_, toolErr := os.Stat(v.Bin(tool))
		if pipErr != nil || toolErr != nil {
			if err := os.RemoveAll(v.Root); err != nil {
				return fmt.Errorf("failed to remove incomplete venv: %w", err)
			}
		}
	}

	if !v.Exists() {
		out, status, err := executor.Output(ctx, pythonCmd, "-m", "venv", v.Root)
		if err != nil {
			return fmt.Errorf("failed to create virtualenv: %w", err)
		}
		if status != 0 {
			if out == "" {
				out = "venv creation failed (no error message)"
			}
			if strings.Contains(out, "ensurepip") || strings.Contains(out, "python3-venv") {
				return fmt.Errorf("failed to create virtualenv: python3-venv package not installed. " +
					"On Debian/Ubuntu, run: sudo apt install python3-venv")
			}
			return fmt.Errorf("failed to create virtualenv: %s", out)
		}
	}

	// Some Linux distros don't include pip in a fresh venv
	if _, err := os.Stat(v.Pip()); os.IsNotExist(err) {
		out, status, err := executor.Output(ctx, v.Python(), "-m", "ensurepip", "--upgrade")
		if err != nil {
			return fmt.Errorf("failed to install pip via ensurepip: %w", err)
		}
		if status != 0 {
			return fmt.Errorf("failed to install pip via ensurepip: %s", out)
		}
	}

	out, status, err := executor.Output(ctx, v.Pip(), "install", pkgSpec)
	if err != nil {
		return fmt.Errorf("pip install failed: %w", err)
	}
	if status != 0 {
		return fmt.Errorf("pip install failed: %s", out)
	}

	return nil
}
