package engine

import (
	"context"
	"io"
)

// BatchEngine wraps an external checker that accepts many files per
// invocation (pylint, pycodestyle).
//
// Design:
// - Engines handle tool lookup, installation, and execution
// - The lint manager delegates to engines and never spawns processes itself
// - Diagnostics go to the caller-supplied sink, so captured text stays
// scoped to one call
type BatchEngine interface {
	// Name returns the engine name (e.g., "pylint").
	Name() string

	// CheckAvailability checks if the tool is installed and usable.
	// Returns nil if available, error with details if not.
	CheckAvailability(ctx context.Context) error

	// Run checks the given files in one tool invocation, writing all
	// tool output to sink. The returned status is the tool's exit
	// code: zero means no violations were found. A non-nil error means
	// the tool could not run at all.
	Run(ctx context.Context, sink io.Writer, files []string) (int, error)
}

// FileEngine wraps an external checker queried one file at a time in
// check-only mode (isort).
type FileEngine interface {
	// Name returns the engine name (e.g., "isort").
	Name() string

	// CheckAvailability checks if the tool is installed and usable.
	CheckAvailability(ctx context.Context) error

	// CheckFile reports whether path already satisfies the tool's
	// canonical ordering. Diagnostic text for an unsatisfied file is
	// written to sink; the file itself is never modified.
	CheckFile(ctx context.Context, sink io.Writer, path string) (bool, error)
}

// Installer is implemented by engines that can install their
// underlying tool.
type Installer interface {
	// Install installs the tool if not available.
	Install(ctx context.Context, config InstallConfig) error
}

// InstallConfig holds tool installation settings.
type InstallConfig struct {
	// ToolsDir is where to install the tool.
	// Default: ~/.pybatch/tools
	ToolsDir string

	// Version is the tool version to install.
	// Empty = latest
	Version string

	// Force reinstalls even if already installed.
	Force bool
}
