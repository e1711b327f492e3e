package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/messenger"
)

// jsonReportDocument is the serialized shape produced by JSONWriter: a
// metadata section (title, count) plus a content section (entities).
type jsonReportDocument struct {
	Title    string          `json:"title,omitempty"`
	Count    int             `json:"count"`
	Entities []entitySummary `json:"entities"`
}

// JSONWriter serializes transferred items as indented JSON.
type JSONWriter struct {
	header  reportHeader
	sink    core.Messenger
	summary []entitySummary
}

func NewJSONWriter() *JSONWriter {
	return &JSONWriter{sink: messenger.Null}
}

func (w *JSONWriter) ApplyProperties(params core.PropertyGroup) {
	if props, ok := params.(Properties); ok {
		w.header.Title = props.Title
	}
}

func (w *JSONWriter) SetMessenger(sink core.Messenger) {
	w.sink = messenger.OrNull(sink)
}

func (w *JSONWriter) Transfer(ctx context.Context, items []core.ApplicationItem, progress core.ProgressHandle) (bool, error) {
	w.summary = summarize(items)
	progress.SetValue(100)
	return true, nil
}

func (w *JSONWriter) WriteFile(ctx context.Context, path string, progress core.ProgressHandle) (bool, error) {
	doc := jsonReportDocument{
		Title:    w.header.Title,
		Count:    len(w.summary),
		Entities: w.summary,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		messenger.EmitError(w.sink, fmt.Sprintf("marshaling json report: %v", err))
		return false, err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		messenger.EmitError(w.sink, fmt.Sprintf("writing json report: %v", err))
		return false, err
	}
	progress.SetValue(100)
	return true, nil
}

// JSONFactory advertises core.FormatJSONReport and constructs JSONWriter
// values.
type JSONFactory struct{}

func (JSONFactory) Formats() []core.Format { return []core.Format{core.FormatJSONReport} }
func (JSONFactory) CreateWriter(core.Format) core.Writer { return NewJSONWriter() }
