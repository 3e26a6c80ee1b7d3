package pylint

import (
	"github.com/lintkit/pybatch/internal/engine"
)

func init() {
	_ = engine.Global().Register(&engine.Registration{
		Batch: New(engine.DefaultToolsDir(), ""),
	})
}
