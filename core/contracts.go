package core

import (
	"context"

	"github.com/cadio-project/cadio/messenger"
)

// Messenger is the diagnostic sink Reader and Writer implementations emit
// through. Aliased from package messenger rather than redeclared so core
// collaborators can pass a messenger.Sink (for example a *messenger.ZapSink)
// directly wherever a core.Messenger is expected.
type Messenger = messenger.Sink

// EntityHandle is an opaque reference to a top-level object inside a
// Document, produced by Reader.Transfer and consumed by post-processing
// and tree attachment. The core never looks inside it.
type EntityHandle any

// PropertyGroup is an opaque bag of reader/writer configuration handed to
// ApplyProperties. Its contents are owned by whatever reader or writer
// interprets them; the core only plumbs it through.
type PropertyGroup any

// ApplicationItem is an opaque reference to something a Writer can
// serialize (a document node, a selection, ...). Like EntityHandle, the
// core never inspects it.
type ApplicationItem any

// ParametersProvider resolves reader configuration by format. A provider
// may have no parameters for a given format, which is not an error.
type ParametersProvider interface {
	FindReaderParameters(format Format) (PropertyGroup, bool)
}

// Document is the shared, external aggregate that accumulates entities.
// It is not assumed to be safe for concurrent mutation: the import
// orchestrator guarantees AddEntityTreeNode and Reader.Transfer are only
// ever invoked from one goroutine at a time for a given Document.
type Document interface {
	AddEntityTreeNode(entity EntityHandle)
}

// Reader is a per-file, single-use collaborator. Its lifecycle is strict:
// ApplyProperties and SetMessenger (if called at all) happen before
// ReadFile, ReadFile must succeed before Transfer is ever called, and
// Transfer targets exactly one Document instance.
type Reader interface {
	ApplyProperties(params PropertyGroup)
	SetMessenger(sink Messenger)
	// ReadFile parses path without mutating any Document. It may run
	// concurrently with ReadFile calls for other files and other readers.
	ReadFile(ctx context.Context, path string, progress ProgressHandle) (bool, error)
	// Transfer grafts the parsed content into doc. Transfer calls across
	// different Reader instances targeting the same Document must never
	// overlap in time; the import orchestrator is solely responsible for
	// guaranteeing that.
	Transfer(ctx context.Context, doc Document, progress ProgressHandle) ([]EntityHandle, error)
}

// Writer is a per-file, single-use collaborator with the mirror-image
// lifecycle of Reader: gather (Transfer) then serialize (WriteFile).
type Writer interface {
	ApplyProperties(params PropertyGroup)
	SetMessenger(sink Messenger)
	Transfer(ctx context.Context, items []ApplicationItem, progress ProgressHandle) (bool, error)
	WriteFile(ctx context.Context, path string, progress ProgressHandle) (bool, error)
}

// FactoryReader advertises a finite set of formats and constructs
// caller-owned, single-use Reader values on demand.
type FactoryReader interface {
	Formats() []Format
	CreateReader(format Format) Reader
}

// FactoryWriter is the writer-side mirror of FactoryReader.
type FactoryWriter interface {
	Formats() []Format
	CreateWriter(format Format) Writer
}

// ProgressHandle is the narrow view of a progress.Node the core
// interfaces need, declared here so that core does not import package
// progress; *progress.Node satisfies it. See package progress for the
// concrete implementation.
type ProgressHandle = ProgressNode

// ProgressNode is the minimal hierarchical-progress contract Reader and
// Writer implementations can observe: report sub-progress and check for
// cooperative cancellation. The concrete tree lives in package progress;
// this interface lets core, and anything that implements Reader/Writer,
// depend only on the shape it needs.
type ProgressNode interface {
	SetValue(percent int)
	IsAbortRequested() bool
}
