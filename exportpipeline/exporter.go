// Package exportpipeline implements the export orchestrator: look up a
// writer by format, transfer application items into it, then serialize
// to a file.
package exportpipeline

import (
	"context"
	"fmt"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/core/registry"
	"github.com/cadio-project/cadio/messenger"
	"github.com/cadio-project/cadio/progress"
)

// Args is the full parameter set for one Export call.
type Args struct {
	TargetFilepath   string
	TargetFormat     core.Format
	ApplicationItems []core.ApplicationItem
	Parameters       core.PropertyGroup
	Messenger        core.Messenger
	Progress         *progress.Node
}

// Export runs the export orchestration described above against reg,
// reporting failures through the messenger with an "Error during export
// to ..." prefix distinct from the import path's wording.
func Export(ctx context.Context, reg *registry.Registry, args Args) bool {
	rootProgress := args.Progress
	if rootProgress == nil {
		rootProgress = progress.Null()
	}
	sink := messenger.OrNull(args.Messenger)

	fail := func(errMsg string) bool {
		messenger.EmitError(sink, fmt.Sprintf("Error during export to '%s'\n%s", args.TargetFilepath, errMsg))
		return false
	}

	writer := reg.CreateWriter(args.TargetFormat)
	if writer == nil {
		return fail("No supporting writer")
	}
	writer.SetMessenger(sink)
	writer.ApplyProperties(args.Parameters)

	transferProgress := rootProgress.NewChild(40, "Transfer")
	transferOK, err := writer.Transfer(ctx, args.ApplicationItems, transferProgress)
	transferProgress.Finish()
	if !transferOK {
		msg := "File transfer problem"
		if err != nil {
			msg = fmt.Sprintf("%s: %v", msg, err)
		}
		return fail(msg)
	}

	writeProgress := rootProgress.NewChild(60, "Write")
	writeOK, err := writer.WriteFile(ctx, args.TargetFilepath, writeProgress)
	writeProgress.Finish()
	if !writeOK {
		msg := "File write problem"
		if err != nil {
			msg = fmt.Sprintf("%s: %v", msg, err)
		}
		return fail(msg)
	}

	return true
}
