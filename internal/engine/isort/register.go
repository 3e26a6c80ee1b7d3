package isort

import (
	"github.com/lintkit/pybatch/internal/engine"
)

func init() {
	_ = engine.Global().Register(&engine.Registration{
		File: New(engine.DefaultToolsDir()),
	})
}
