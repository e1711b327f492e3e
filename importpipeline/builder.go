package importpipeline

import (
	"context"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/core/registry"
	"github.com/cadio-project/cadio/progress"
	"github.com/cadio-project/cadio/task"
)

// Builder is the fluent construction API for an Import call.
type Builder struct {
	reg  *registry.Registry
	args Args
}

// NewImport starts building an import against reg.
func NewImport(reg *registry.Registry) *Builder {
	return &Builder{reg: reg}
}

func (b *Builder) TargetDocument(doc core.Document) *Builder {
	b.args.TargetDocument = doc
	return b
}

func (b *Builder) WithFilepaths(filepaths []string) *Builder {
	b.args.Filepaths = filepaths
	return b
}

func (b *Builder) WithFilepath(filepath string) *Builder {
	return b.WithFilepaths([]string{filepath})
}

func (b *Builder) WithParametersProvider(provider core.ParametersProvider) *Builder {
	b.args.ParametersProvider = provider
	return b
}

func (b *Builder) WithMessenger(sink core.Messenger) *Builder {
	b.args.Messenger = sink
	return b
}

func (b *Builder) WithTaskProgress(node *progress.Node) *Builder {
	b.args.Progress = node
	return b
}

// WithMetrics instruments the many-files worker pool with m. A nil m
// (the default) disables Prometheus instrumentation.
func (b *Builder) WithMetrics(m *task.Metrics) *Builder {
	b.args.Metrics = m
	return b
}

func (b *Builder) WithEntityPostProcess(fn EntityPostProcessFunc) *Builder {
	b.args.EntityPostProcess = fn
	return b
}

func (b *Builder) WithEntityPostProcessRequiredIf(fn EntityPostProcessRequiredIfFunc) *Builder {
	b.args.EntityPostProcessRequiredIf = fn
	return b
}

func (b *Builder) WithEntityPostProcessInfoProgress(progressSize int, progressStep string) *Builder {
	b.args.EntityPostProcessProgressSize = progressSize
	b.args.EntityPostProcessProgressStep = progressStep
	return b
}

// Execute runs the import built up so far.
func (b *Builder) Execute(ctx context.Context) bool {
	return Import(ctx, b.reg, b.args)
}
