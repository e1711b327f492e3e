package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadio-project/cadio/progress"
)

func TestChildValueRollsIntoParentByPortion(t *testing.T) {
	root := progress.NewRoot()
	child := root.NewChild(50, "")

	child.SetValue(100)

	assert.Equal(t, 50, root.Value())
}

func TestFinishCompletesTheChildsPortion(t *testing.T) {
	root := progress.NewRoot()
	child := root.NewChild(25, "")

	child.Finish()

	assert.Equal(t, 25, root.Value())
}

func TestStepBubblesFromLeafToRoot(t *testing.T) {
	root := progress.NewRoot()
	child := root.NewChild(40, "")
	grandchild := child.NewChild(50, "")

	var lastStep string
	root.OnStepChanged(func(step string) { lastStep = step })

	grandchild.SetStep("Reading file")

	require.Equal(t, "Reading file", lastStep)
	assert.Equal(t, "Reading file", root.Step())
}

func TestRequestAbortIsVisibleFromAnyDescendant(t *testing.T) {
	root := progress.NewRoot()
	child := root.NewChild(100, "")
	grandchild := child.NewChild(100, "")

	grandchild.RequestAbort()

	assert.True(t, root.IsAbortRequested())
	assert.True(t, child.IsAbortRequested())
}

func TestSetValueIgnoredAfterAbort(t *testing.T) {
	root := progress.NewRoot()
	root.RequestAbort()

	root.SetValue(80)

	assert.Equal(t, 0, root.Value())
}
