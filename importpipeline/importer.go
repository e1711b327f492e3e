// Package importpipeline implements the import orchestrator: probe each
// file's format, read it, serialize the transfer into the target
// Document, and run an optional entity post-process step.
package importpipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/core/registry"
	"github.com/cadio-project/cadio/messenger"
	"github.com/cadio-project/cadio/progress"
	"github.com/cadio-project/cadio/task"
)

// pollInterval is how often the serial transfer loop checks each
// in-flight read task for completion in the many-files case.
const pollInterval = 25 * time.Millisecond

// EntityPostProcessFunc is invoked once per transferred entity, after
// Transfer and before the entity is attached to the target Document's
// tree. Its progress node spans a sub-portion of
// Args.EntityPostProcessProgressSize.
type EntityPostProcessFunc func(ctx context.Context, entity core.EntityHandle, progress *progress.Node)

// EntityPostProcessRequiredIfFunc decides, per file format, whether
// EntityPostProcess should run for files of that format at all.
type EntityPostProcessRequiredIfFunc func(format core.Format) bool

// Args is the full parameter set for one Import call.
type Args struct {
	TargetDocument     core.Document
	Filepaths          []string
	ParametersProvider core.ParametersProvider
	Messenger          core.Messenger
	Progress           *progress.Node

	// Metrics instruments the worker pool used for the many-files path.
	// Nil disables Prometheus instrumentation entirely.
	Metrics *task.Metrics

	EntityPostProcess              EntityPostProcessFunc
	EntityPostProcessRequiredIf    EntityPostProcessRequiredIfFunc
	EntityPostProcessProgressSize  int
	EntityPostProcessProgressStep  string
}

func (a Args) entityPostProcessRequired(format core.Format) bool {
	if a.EntityPostProcess != nil && a.EntityPostProcessRequiredIf != nil {
		return a.EntityPostProcessRequiredIf(format)
	}
	return false
}

type taskData struct {
	reader               core.Reader
	filepath             string
	fileFormat           core.Format
	node                 *progress.Node
	taskID               task.ID
	transferredEntities  []core.EntityHandle
	readSuccess          bool
	transferred          bool
}

// Import runs the import orchestration described above against reg,
// returning false if any file failed to fully import. Failures are
// reported through args.Messenger (or discarded if none was set), not
// through a returned error: the bool result tells the caller whether to
// inspect the messenger's emitted diagnostics.
func Import(ctx context.Context, reg *registry.Registry, args Args) bool {
	rootProgress := args.Progress
	if rootProgress == nil {
		rootProgress = progress.Null()
	}
	sink := messenger.OrNull(args.Messenger)

	var failureMu sync.Mutex
	ok := true
	addError := func(filepath, errMsg string) {
		failureMu.Lock()
		ok = false
		failureMu.Unlock()
		messenger.EmitError(sink, fmt.Sprintf("Error during import of '%s'\n%s", filepath, errMsg))
	}
	readFileError := func(filepath, errMsg string) bool {
		addError(filepath, errMsg)
		return false
	}

	readFile := func(td *taskData) bool {
		td.fileFormat = reg.ProbeFormat(td.filepath)
		if td.fileFormat == core.FormatUnknown {
			return readFileError(td.filepath, "Unknown format")
		}

		portionSize := 40.0
		if args.entityPostProcessRequired(td.fileFormat) {
			portionSize *= float64(100-args.EntityPostProcessProgressSize) / 100.0
		}

		childProgress := td.node.NewChild(portionSize, "Reading file")
		defer childProgress.Finish()

		reader := reg.CreateReader(td.fileFormat)
		if reader == nil {
			return readFileError(td.filepath, "No supporting reader")
		}
		reader.SetMessenger(sink)
		if args.ParametersProvider != nil {
			if params, has := args.ParametersProvider.FindReaderParameters(td.fileFormat); has {
				reader.ApplyProperties(params)
			}
		}

		readOK, err := reader.ReadFile(ctx, td.filepath, childProgress)
		if !readOK {
			msg := "File read problem"
			if err != nil {
				msg = fmt.Sprintf("%s: %v", msg, err)
			}
			return readFileError(td.filepath, msg)
		}
		td.reader = reader
		return true
	}

	transfer := func(td *taskData) {
		portionSize := 60.0
		if args.entityPostProcessRequired(td.fileFormat) {
			portionSize *= float64(100-args.EntityPostProcessProgressSize) / 100.0
		}

		childProgress := td.node.NewChild(portionSize, "Transferring file")
		defer childProgress.Finish()

		if td.reader != nil && !childProgress.IsAbortRequested() {
			entities, err := td.reader.Transfer(ctx, args.TargetDocument, childProgress)
			if len(entities) == 0 {
				msg := "File transfer problem"
				if err != nil {
					msg = fmt.Sprintf("%s: %v", msg, err)
				}
				addError(td.filepath, msg)
			}
			td.transferredEntities = entities
		}
		td.transferred = true
	}

	postProcess := func(td *taskData) {
		if !args.entityPostProcessRequired(td.fileFormat) {
			return
		}
		if len(td.transferredEntities) == 0 {
			return
		}

		stepProgress := td.node.NewChild(float64(args.EntityPostProcessProgressSize), args.EntityPostProcessProgressStep)
		defer stepProgress.Finish()

		subPortionSize := 100.0 / float64(len(td.transferredEntities))
		for _, entity := range td.transferredEntities {
			subProgress := stepProgress.NewChild(subPortionSize, "")
			args.EntityPostProcess(ctx, entity, subProgress)
			subProgress.Finish()
		}
	}

	addModelTreeEntities := func(td *taskData) {
		for _, entity := range td.transferredEntities {
			args.TargetDocument.AddEntityTreeNode(entity)
		}
	}

	if len(args.Filepaths) == 1 {
		td := &taskData{filepath: args.Filepaths[0], node: rootProgress}
		td.readSuccess = readFile(td)
		if td.readSuccess {
			transfer(td)
			postProcess(td)
			addModelTreeEntities(td)
		}
		if !td.readSuccess {
			ok = false
		}
		return ok
	}

	vecTaskData := make([]*taskData, len(args.Filepaths))
	childTaskManager := task.NewPoolManager(args.Metrics)
	childTaskManager.OnProgressChanged(func(task.ID, int) {
		rootProgress.SetValue(childTaskManager.GlobalProgress())
	})

	for i, filepath := range args.Filepaths {
		td := &taskData{filepath: filepath}
		vecTaskData[i] = td
		td.taskID = childTaskManager.NewTask(func(node *progress.Node) {
			td.node = node
			td.readSuccess = readFile(td)
		})
	}

	for _, td := range vecTaskData {
		childTaskManager.Run(td.taskID, task.AutoDestroyOff)
	}

	remaining := len(vecTaskData)
	for remaining > 0 && !rootProgress.IsAbortRequested() {
		var next *taskData
		for _, td := range vecTaskData {
			if !td.transferred && childTaskManager.WaitForDone(td.taskID, pollInterval) {
				next = td
				break
			}
		}
		if next == nil {
			continue
		}

		if next.readSuccess {
			transfer(next)
			postProcess(next)
			addModelTreeEntities(next)
		} else {
			next.transferred = true
		}
		remaining--
	}

	return ok
}
