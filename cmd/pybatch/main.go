package main

import (
	"github.com/lintkit/pybatch/internal/cmd"

	// Bootstrap: register all engines
	_ "github.com/lintkit/pybatch/internal/bootstrap"
)

// Version is set by build -ldflags "-X main.Version=x.y.z"
var Version = "dev"

func main() {
	// Set version for version command
	cmd.SetVersion(Version)

	cmd.Execute()
}
