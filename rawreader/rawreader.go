// Package rawreader provides a demo core.FactoryReader/core.Reader pair
// for every CAD format this module's probers recognize. It performs no
// geometric interpretation whatsoever — this module specifies no
// particular CAD geometric format — and instead
// treats a successfully-probed file as a single opaque entity carrying
// its raw bytes and detected format. This exists so importpipeline has
// something real to drive end-to-end (probe, read, transfer, attach)
// without a geometry kernel backing it; report's demo writers then give
// those entities somewhere to go on export.
package rawreader

import (
	"context"
	"os"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/messenger"
)

// Entity is what Transfer hands to the target Document: the raw file
// content plus the format it was probed as.
type Entity struct {
	Format  core.Format
	Path    string
	Content []byte
}

// Reader reads one file's raw bytes without interpreting them.
type Reader struct {
	sink    core.Messenger
	format  core.Format
	content []byte
}

func newReader(format core.Format) *Reader {
	return &Reader{sink: messenger.Null, format: format}
}

func (r *Reader) ApplyProperties(core.PropertyGroup) {}

func (r *Reader) SetMessenger(sink core.Messenger) {
	r.sink = messenger.OrNull(sink)
}

func (r *Reader) ReadFile(ctx context.Context, path string, progress core.ProgressHandle) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		messenger.EmitError(r.sink, "rawreader: "+err.Error())
		return false, err
	}
	r.content = content
	progress.SetValue(100)
	return true, nil
}

func (r *Reader) Transfer(ctx context.Context, doc core.Document, progress core.ProgressHandle) ([]core.EntityHandle, error) {
	entity := Entity{Format: r.format, Content: r.content}
	progress.SetValue(100)
	return []core.EntityHandle{entity}, nil
}

// Factory advertises every format passed to New and constructs a Reader
// bound to whichever of those formats CreateReader is asked for.
type Factory struct {
	formats []core.Format
}

// New returns a Factory covering formats.
func New(formats ...core.Format) *Factory {
	return &Factory{formats: formats}
}

func (f *Factory) Formats() []core.Format { return f.formats }

func (f *Factory) CreateReader(format core.Format) core.Reader {
	return newReader(format)
}
