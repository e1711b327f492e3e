package report

import (
	"context"
	"fmt"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/messenger"
	"github.com/jung-kurt/gofpdf"
)

// PDFWriter renders transferred items as a styled PDF: a title heading
// followed by a bulleted list of entity summaries.
type PDFWriter struct {
	header  reportHeader
	sink    core.Messenger
	summary []entitySummary
}

func NewPDFWriter() *PDFWriter {
	return &PDFWriter{sink: messenger.Null}
}

func (w *PDFWriter) ApplyProperties(params core.PropertyGroup) {
	if props, ok := params.(Properties); ok {
		w.header.Title = props.Title
	}
}

func (w *PDFWriter) SetMessenger(sink core.Messenger) {
	w.sink = messenger.OrNull(sink)
}

func (w *PDFWriter) Transfer(ctx context.Context, items []core.ApplicationItem, progress core.ProgressHandle) (bool, error) {
	w.summary = summarize(items)
	progress.SetValue(100)
	return true, nil
}

func (w *PDFWriter) WriteFile(ctx context.Context, path string, progress core.ProgressHandle) (bool, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if w.header.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, w.header.Title, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, fmt.Sprintf("%d entities", len(w.summary)), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range w.summary {
		pdf.MultiCell(0, 5, "• "+entry.Text, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		messenger.EmitError(w.sink, fmt.Sprintf("writing pdf report: %v", err))
		return false, err
	}
	progress.SetValue(100)
	return true, nil
}

// PDFFactory advertises core.FormatPDFReport and constructs PDFWriter
// values.
type PDFFactory struct{}

func (PDFFactory) Formats() []core.Format { return []core.Format{core.FormatPDFReport} }
func (PDFFactory) CreateWriter(core.Format) core.Writer { return NewPDFWriter() }
