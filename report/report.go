// Package report implements demo report writers: FactoryWriter
// implementations that serialize the opaque ApplicationItems handed to
// Transfer as a human-readable summary (Markdown, JSON, or PDF) rather
// than real CAD geometry. They give the export path, and its
// third-party rendering dependencies, something concrete to exercise
// without a geometry kernel behind them.
package report

import (
	"fmt"
	"time"

	"github.com/cadio-project/cadio/core"
)

// entitySummary is the flattened, serializable view of one
// core.ApplicationItem this package's writers render. The item itself
// stays opaque to the core; summarize is the one place report looks at
// its string form.
type entitySummary struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

func summarize(items []core.ApplicationItem) []entitySummary {
	summaries := make([]entitySummary, len(items))
	for i, item := range items {
		summaries[i] = entitySummary{Index: i, Text: fmt.Sprintf("%v", item)}
	}
	return summaries
}

// reportHeader is shared by every report format: a title plus a
// generation timestamp field. ApplyProperties sets only Title; Generated
// is never set or rendered (this package never calls time.Now() itself,
// so report generation stays deterministic in tests).
type reportHeader struct {
	Title     string
	Generated time.Time
}
