package importpipeline_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/core/probe"
	"github.com/cadio-project/cadio/core/registry"
	"github.com/cadio-project/cadio/importpipeline"
	"github.com/cadio-project/cadio/messenger"
	"github.com/cadio-project/cadio/progress"
)

type fakeDocument struct {
	mu      sync.Mutex
	entities []core.EntityHandle
}

func (d *fakeDocument) AddEntityTreeNode(entity core.EntityHandle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entities = append(d.entities, entity)
}

type fakeReader struct {
	failRead     bool
	failTransfer bool
	entityCount  int
}

func (r *fakeReader) ApplyProperties(core.PropertyGroup) {}
func (r *fakeReader) SetMessenger(core.Messenger)        {}
func (r *fakeReader) ReadFile(ctx context.Context, path string, progress core.ProgressHandle) (bool, error) {
	progress.SetValue(100)
	return !r.failRead, nil
}
func (r *fakeReader) Transfer(ctx context.Context, doc core.Document, progress core.ProgressHandle) ([]core.EntityHandle, error) {
	progress.SetValue(100)
	if r.failTransfer {
		return nil, nil
	}
	entities := make([]core.EntityHandle, r.entityCount)
	for i := range entities {
		entities[i] = fmt.Sprintf("entity-%d", i)
	}
	return entities, nil
}

type fakeFactoryReader struct {
	format core.Format
	reader *fakeReader
}

func (f *fakeFactoryReader) Formats() []core.Format { return []core.Format{f.format} }
func (f *fakeFactoryReader) CreateReader(core.Format) core.Reader { return f.reader }

func newTestRegistry(t *testing.T, format core.Format, reader *fakeReader) *registry.Registry {
	t.Helper()
	reg := registry.New()
	reg.AddFactoryReader(&fakeFactoryReader{format: format, reader: reader})
	return reg
}

func TestImportSingleFileSuccess(t *testing.T) {
	reg := newTestRegistry(t, core.FormatSTL, &fakeReader{entityCount: 2})
	doc := &fakeDocument{}

	ok := importpipeline.NewImport(reg).
		TargetDocument(doc).
		WithFilepath("model.stl").
		Execute(context.Background())

	require.True(t, ok)
	assert.Len(t, doc.entities, 2)
}

func TestImportSingleFileUnknownFormat(t *testing.T) {
	reg := registry.New()
	doc := &fakeDocument{}

	ok := importpipeline.NewImport(reg).
		TargetDocument(doc).
		WithFilepath("model.unknownext").
		Execute(context.Background())

	assert.False(t, ok)
	assert.Empty(t, doc.entities)
}

func TestImportSingleFileNoSupportingReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0.0 1.0 2.0\n"), 0o644))

	reg := registry.New()
	reg.AddFormatProbe(probe.OBJ)
	reg.AddFactoryReader(&fakeFactoryReader{format: core.FormatSTL, reader: &fakeReader{}})
	doc := &fakeDocument{}

	var errs []string
	sink := messenger.Func(func(level messenger.Level, text string) {
		if level == messenger.Error {
			errs = append(errs, text)
		}
	})

	ok := importpipeline.NewImport(reg).
		TargetDocument(doc).
		WithFilepath(path).
		WithMessenger(sink).
		Execute(context.Background())

	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "No supporting reader")
}

func TestImportMultiFilePartialFailure(t *testing.T) {
	reg := registry.New()
	reg.AddFactoryReader(&fakeFactoryReader{format: core.FormatSTL, reader: &fakeReader{entityCount: 1}})
	doc := &fakeDocument{}

	ok := importpipeline.NewImport(reg).
		TargetDocument(doc).
		WithFilepaths([]string{"a.stl", "b.stl", "c.unknownext"}).
		Execute(context.Background())

	assert.False(t, ok)
	assert.Len(t, doc.entities, 2)
}

func TestImportMultiFileAllSucceed(t *testing.T) {
	reg := newTestRegistry(t, core.FormatSTL, &fakeReader{entityCount: 1})
	doc := &fakeDocument{}

	ok := importpipeline.NewImport(reg).
		TargetDocument(doc).
		WithFilepaths([]string{"a.stl", "b.stl", "c.stl"}).
		Execute(context.Background())

	require.True(t, ok)
	assert.Len(t, doc.entities, 3)
}

func TestImportEntityPostProcessRunsPerEntity(t *testing.T) {
	reg := newTestRegistry(t, core.FormatSTL, &fakeReader{entityCount: 3})
	doc := &fakeDocument{}

	var processed []core.EntityHandle
	var mu sync.Mutex

	ok := importpipeline.NewImport(reg).
		TargetDocument(doc).
		WithFilepath("model.stl").
		WithEntityPostProcessRequiredIf(func(core.Format) bool { return true }).
		WithEntityPostProcessInfoProgress(20, "Post-processing").
		WithEntityPostProcess(func(ctx context.Context, entity core.EntityHandle, node *progress.Node) {
			mu.Lock()
			processed = append(processed, entity)
			mu.Unlock()
			node.SetValue(100)
		}).
		Execute(context.Background())

	require.True(t, ok)
	assert.Len(t, processed, 3)
}
