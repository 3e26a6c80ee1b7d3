package cmd

import (
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lintkit/pybatch/internal/config"
	"github.com/lintkit/pybatch/internal/engine"
	"github.com/lintkit/pybatch/internal/ui"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the external lint tools (pylint, pycodestyle, isort)",
	Long: `Installs each registered tool into its own virtualenv under the tools
directory (default ~/.pybatch/tools). Requires a Python interpreter
with the venv module.`,
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

		force, _ := cmd.Flags().GetBool("force")

		installers := engine.Global().Installers()
		names := make([]string, 0, len(installers))
		for name := range installers {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			ui.PrintInfo("Installing " + name + "...")
			err := installers[name].Install(cmd.Context(), engine.InstallConfig{
				ToolsDir: cfg.ToolsDir,
				Force:    force,
			})
			if err != nil {
				ui.PrintError(name + ": " + err.Error())
				return err
			}
			ui.PrintOK(name + " installed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().Bool("force", false, "reinstall tools even if already installed")
}
