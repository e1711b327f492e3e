package rawreader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/progress"
	"github.com/cadio-project/cadio/rawreader"
)

type nopDocument struct{}

func (nopDocument) AddEntityTreeNode(core.EntityHandle) {}

func TestReaderReadsRawBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.stl")
	require.NoError(t, os.WriteFile(path, []byte("solid cube\nendsolid cube\n"), 0o644))

	factory := rawreader.New(core.FormatSTL)
	reader := factory.CreateReader(core.FormatSTL)
	root := progress.NewRoot()

	ok, err := reader.ReadFile(context.Background(), path, root)
	require.NoError(t, err)
	require.True(t, ok)

	entities, err := reader.Transfer(context.Background(), nopDocument{}, root)
	require.NoError(t, err)
	require.Len(t, entities, 1)

	entity, ok := entities[0].(rawreader.Entity)
	require.True(t, ok)
	assert.Equal(t, core.FormatSTL, entity.Format)
	assert.Contains(t, string(entity.Content), "solid cube")
}

func TestReaderReadFileMissing(t *testing.T) {
	factory := rawreader.New(core.FormatOBJ)
	reader := factory.CreateReader(core.FormatOBJ)
	root := progress.NewRoot()

	ok, err := reader.ReadFile(context.Background(), "/nonexistent/model.obj", root)
	assert.False(t, ok)
	assert.Error(t, err)
}
