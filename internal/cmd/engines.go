package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lintkit/pybatch/internal/engine"
	"github.com/lintkit/pybatch/internal/ui"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List registered lint engines and their availability",
	Run: func(cmd *cobra.Command, args []string) {
		reg := engine.Global()
		for _, name := range reg.Names() {
			r, err := reg.Get(name)
			if err != nil {
				continue
			}

			var availErr error
			switch {
			case r.Batch != nil:
				availErr = r.Batch.CheckAvailability(cmd.Context())
			case r.File != nil:
				availErr = r.File.CheckAvailability(cmd.Context())
			}

			if availErr != nil {
				ui.PrintError(name)
				fmt.Println(ui.Indent(availErr.Error()))
				continue
			}
			ui.PrintOK(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}
