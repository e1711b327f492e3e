package report

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/messenger"
)

// Properties configures a report writer's header. Passed to
// ApplyProperties as a core.PropertyGroup; writers that don't recognize
// the concrete type render without a title. Only Title is read: no
// writer reads or renders Generated.
type Properties struct {
	Title     string
	Generated string
}

// MarkdownWriter serializes transferred items as a Markdown bullet list.
type MarkdownWriter struct {
	header  reportHeader
	sink    core.Messenger
	summary []entitySummary
}

// NewMarkdownWriter returns a fresh, single-use MarkdownWriter.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{sink: messenger.Null}
}

func (w *MarkdownWriter) ApplyProperties(params core.PropertyGroup) {
	if props, ok := params.(Properties); ok {
		w.header.Title = props.Title
	}
}

func (w *MarkdownWriter) SetMessenger(sink core.Messenger) {
	w.sink = messenger.OrNull(sink)
}

func (w *MarkdownWriter) Transfer(ctx context.Context, items []core.ApplicationItem, progress core.ProgressHandle) (bool, error) {
	w.summary = summarize(items)
	progress.SetValue(100)
	return true, nil
}

func (w *MarkdownWriter) WriteFile(ctx context.Context, path string, progress core.ProgressHandle) (bool, error) {
	var b strings.Builder
	if w.header.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", w.header.Title)
	}
	for _, entry := range w.summary {
		fmt.Fprintf(&b, "- %s\n", entry.Text)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		messenger.EmitError(w.sink, fmt.Sprintf("writing markdown report: %v", err))
		return false, err
	}
	progress.SetValue(100)
	return true, nil
}

// MarkdownFactory advertises core.FormatMDReport and constructs
// MarkdownWriter values.
type MarkdownFactory struct{}

func (MarkdownFactory) Formats() []core.Format { return []core.Format{core.FormatMDReport} }
func (MarkdownFactory) CreateWriter(core.Format) core.Writer { return NewMarkdownWriter() }
