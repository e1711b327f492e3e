package exportpipeline

import (
	"context"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/core/registry"
	"github.com/cadio-project/cadio/progress"
)

// Builder is the fluent construction API for an Export call.
type Builder struct {
	reg  *registry.Registry
	args Args
}

// NewExport starts building an export against reg.
func NewExport(reg *registry.Registry) *Builder {
	return &Builder{reg: reg}
}

func (b *Builder) TargetFile(filepath string) *Builder {
	b.args.TargetFilepath = filepath
	return b
}

func (b *Builder) TargetFormat(format core.Format) *Builder {
	b.args.TargetFormat = format
	return b
}

func (b *Builder) WithItems(items []core.ApplicationItem) *Builder {
	b.args.ApplicationItems = items
	return b
}

func (b *Builder) WithParameters(params core.PropertyGroup) *Builder {
	b.args.Parameters = params
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

// Execute runs the export built up so far.
func (b *Builder) Execute(ctx context.Context) bool {
	return Export(ctx, b.reg, b.args)
}
