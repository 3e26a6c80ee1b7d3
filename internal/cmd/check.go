package cmd

import (
	"fmt"
	"os"
	"regexp"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/lintkit/pybatch/internal/config"
	"github.com/lintkit/pybatch/internal/engine/isort"
	"github.com/lintkit/pybatch/internal/engine/pycodestyle"
	"github.com/lintkit/pybatch/internal/engine/pylint"
	"github.com/lintkit/pybatch/internal/lint"
	"github.com/lintkit/pybatch/internal/report"
	"github.com/lintkit/pybatch/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Run all lint checks over the given Python files",
	Long: `Runs the import-order, style/convention, and Python 3 compatibility
checks over the given files. Directory arguments are walked for *.py
files. Exits non-zero if any checker category failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		workDir, err := os.Getwd()
		if err != nil {
			workDir = "."
		}

		cfg, err := config.Load(workDir)
		if err != nil {
			return err
		}

		fromFile, _ := cmd.Flags().GetString("from-file")
		batchSize, _ := cmd.Flags().GetInt("batch-size")
		reportPath, _ := cmd.Flags().GetString("report")
		openReport, _ := cmd.Flags().GetBool("open")

		var files []string
		if fromFile != "" {
			files, err = readFileList(fromFile)
		} else {
			files, err = collectFiles(args)
		}
		if err != nil {
			return err
		}

		mgr, err := newManager(files, cfg)
		if err != nil {
			return err
		}
		if batchSize > 0 {
			mgr.SetBatchSize(batchSize)
		}

		summaries, err := mgr.PerformAllChecks(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println()
		for _, line := range summaries {
			fmt.Println(ui.Summary(line))
		}

		if reportPath != "" {
			rep := report.New(mgr.Results(), summaries)
			if err := report.Write(reportPath, rep); err != nil {
				return err
			}
			ui.PrintOK("Report written: " + reportPath)
			if openReport {
				if err := browser.OpenFile(reportPath); err != nil {
					ui.PrintWarn("Could not open browser: " + err.Error())
				}
			}
		}

		// Exit-code policy lives here, not in the lint core.
		if lint.Failed(summaries) {
			os.Exit(1)
		}
		return nil
	},
}

// newManager resolves the engine capabilities from config and injects
// them into a lint manager.
func newManager(files []string, cfg *config.Config) (*lint.Manager, error) {
	pl := pylint.New(cfg.ToolsDir, cfg.PylintRc)
	engines := lint.Engines{
		Convention:  pl,
		Style:       pycodestyle.New(cfg.ToolsDir, cfg.PycodestyleConfig),
		Py3Compat:   pl.Py3k(),
		ImportOrder: isort.New(cfg.ToolsDir),
	}

	mgr := lint.NewManager(files, engines, verbose)
	mgr.SetBatchSize(cfg.BatchSize)

	if cfg.NoShimExclusion {
		mgr.SetShimPattern(nil)
	} else if cfg.ShimPattern != "" {
		re, err := regexp.Compile(cfg.ShimPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid shim_pattern in config: %w", err)
		}
		mgr.SetShimPattern(re)
	}

	return mgr, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("from-file", "", "read the file list from a newline-separated file")
	checkCmd.Flags().Int("batch-size", 0, "files per external-tool invocation (default from config, 50)")
	checkCmd.Flags().String("report", "", "write an HTML report to the given path")
	checkCmd.Flags().Bool("open", false, "open the HTML report in a browser (requires --report)")
}
