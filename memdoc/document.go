// Package memdoc provides a minimal in-memory core.Document, used by the
// CLI harness as the real (if trivial) aggregate target for
// importpipeline.Import.
package memdoc

import "github.com/cadio-project/cadio/core"

// Document accumulates entities in attachment order. Not safe for
// concurrent use: importpipeline.Import only ever calls
// AddEntityTreeNode from its single serial drain goroutine, and callers
// should wait for Import to return before reading Entities.
type Document struct {
	entities []core.EntityHandle
}

// New returns an empty Document.
func New() *Document {
	return &Document{}
}

func (d *Document) AddEntityTreeNode(entity core.EntityHandle) {
	d.entities = append(d.entities, entity)
}

// Entities returns every entity attached so far, in attachment order.
func (d *Document) Entities() []core.EntityHandle {
	return append([]core.EntityHandle(nil), d.entities...)
}

// Len reports how many entities have been attached.
func (d *Document) Len() int {
	return len(d.entities)
}
