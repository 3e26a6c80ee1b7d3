package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/lintkit/pybatch/internal/config"
	"github.com/lintkit/pybatch/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create the project configuration",
	Long:  `Creates .pybatch/config.json in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		workDir, err := os.Getwd()
		if err != nil {
			return err
		}

		cfg := config.Default(workDir)

		rcPrompt := promptui.Prompt{
			Label:   "Path to pylint rcfile",
			Default: cfg.PylintRc,
		}
		if cfg.PylintRc, err = rcPrompt.Run(); err != nil {
			fmt.Println("\nSetup cancelled")
			return nil
		}

		stylePrompt := promptui.Prompt{
			Label:   "Path to pycodestyle config (tox.ini)",
			Default: cfg.PycodestyleConfig,
		}
		if cfg.PycodestyleConfig, err = stylePrompt.Run(); err != nil {
			fmt.Println("\nSetup cancelled")
			return nil
		}

		sizePrompt := promptui.Prompt{
			Label:   "Batch size (files per tool invocation)",
			Default: strconv.Itoa(cfg.BatchSize),
			Validate: func(input string) error {
				n, err := strconv.Atoi(input)
				if err != nil || n <= 0 {
					return fmt.Errorf("batch size must be a positive integer")
				}
				return nil
			},
		}
		sizeStr, err := sizePrompt.Run()
		if err != nil {
			fmt.Println("\nSetup cancelled")
			return nil
		}
		cfg.BatchSize, _ = strconv.Atoi(sizeStr)

		templates := &promptui.SelectTemplates{
			Label:    "{{ . }}?",
			Active:   "▸ {{ . | cyan }}",
			Inactive: "  {{ . }}",
			Selected: "✓ {{ . | green }}",
		}

		shimSelect := promptui.Select{
			Label: "Exclude compatibility-shim files from the Python 3 check",
			Items: []string{
				"Yes, exclude python_utils*.py (recommended)",
				"No, check every file",
			},
			Templates: templates,
			Size:      2,
		}
		index, _, err := shimSelect.Run()
		if err != nil {
			fmt.Println("\nSetup cancelled")
			return nil
		}
		if index == 1 {
			cfg.ShimPattern = ""
			cfg.NoShimExclusion = true
		}

		if err := config.Save(workDir, cfg); err != nil {
			return err
		}

		ui.PrintOK("Configuration written: " + config.Path(workDir))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
