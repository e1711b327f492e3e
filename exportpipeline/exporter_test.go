package exportpipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/core/registry"
	"github.com/cadio-project/cadio/exportpipeline"
)

type fakeWriter struct {
	failTransfer bool
	failWrite    bool
	transferred  []core.ApplicationItem
	written      string
}

func (w *fakeWriter) ApplyProperties(core.PropertyGroup) {}
func (w *fakeWriter) SetMessenger(core.Messenger)        {}
func (w *fakeWriter) Transfer(ctx context.Context, items []core.ApplicationItem, progress core.ProgressHandle) (bool, error) {
	progress.SetValue(100)
	w.transferred = items
	return !w.failTransfer, nil
}
func (w *fakeWriter) WriteFile(ctx context.Context, path string, progress core.ProgressHandle) (bool, error) {
	progress.SetValue(100)
	w.written = path
	return !w.failWrite, nil
}

type fakeFactoryWriter struct {
	format core.Format
	writer *fakeWriter
}

func (f *fakeFactoryWriter) Formats() []core.Format { return []core.Format{f.format} }
func (f *fakeFactoryWriter) CreateWriter(core.Format) core.Writer { return f.writer }

func TestExportSuccess(t *testing.T) {
	writer := &fakeWriter{}
	reg := registry.New()
	reg.AddFactoryWriter(&fakeFactoryWriter{format: core.FormatSTEP, writer: writer})

	ok := exportpipeline.NewExport(reg).
		TargetFile("out.step").
		TargetFormat(core.FormatSTEP).
		WithItems([]core.ApplicationItem{"part-1"}).
		Execute(context.Background())

	require.True(t, ok)
	assert.Equal(t, "out.step", writer.written)
	assert.Len(t, writer.transferred, 1)
}

func TestExportNoSupportingWriter(t *testing.T) {
	reg := registry.New()

	ok := exportpipeline.NewExport(reg).
		TargetFile("out.step").
		TargetFormat(core.FormatSTEP).
		Execute(context.Background())

	assert.False(t, ok)
}

func TestExportTransferFailure(t *testing.T) {
	writer := &fakeWriter{failTransfer: true}
	reg := registry.New()
	reg.AddFactoryWriter(&fakeFactoryWriter{format: core.FormatSTL, writer: writer})

	ok := exportpipeline.NewExport(reg).
		TargetFile("out.stl").
		TargetFormat(core.FormatSTL).
		Execute(context.Background())

	assert.False(t, ok)
	assert.Empty(t, writer.written)
}

func TestExportWriteFailure(t *testing.T) {
	writer := &fakeWriter{failWrite: true}
	reg := registry.New()
	reg.AddFactoryWriter(&fakeFactoryWriter{format: core.FormatSTL, writer: writer})

	ok := exportpipeline.NewExport(reg).
		TargetFile("out.stl").
		TargetFormat(core.FormatSTL).
		Execute(context.Background())

	assert.False(t, ok)
}
