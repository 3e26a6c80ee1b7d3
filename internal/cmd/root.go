package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verbose is a global flag for verbose output
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pybatch",
	Short: "pybatch - batched lint orchestration for Python codebases",
	Long: `pybatch runs third-party Python static-analysis tools over large file
lists in bounded batches and aggregates their results.

Checker categories:
  - Import order (isort, check-only)
  - Style and convention (pylint + pycodestyle)
  - Python 3 compatibility (pylint --py3k)

All lint rules belong to the external tools; pybatch only batches the
invocations, captures their output, and reports SUCCESS/FAILED per
category.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
