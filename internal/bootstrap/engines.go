package bootstrap

import (
	// Import engines for registration side-effects.
	// Each engine's register.go file contains an init() function
	// that registers the engine with the global registry.
	_ "github.com/lintkit/pybatch/internal/engine/isort"
	_ "github.com/lintkit/pybatch/internal/engine/pycodestyle"
	_ "github.com/lintkit/pybatch/internal/engine/pylint"
)

// This package only imports engine packages for their init() side-effects.
// Import this package from main.go to ensure all engines are registered.
