// Package progress implements a hierarchical, weighted, cancellable
// progress tree ("TaskProgress"): a node rolls its value into its
// parent scaled by its declared portion of the parent's 100%, and
// cancellation is a flag read through from the root by every descendant.
package progress

import (
	"math"
	"sync"
)

// AbortSignal is shared by every node in one tree; RequestAbort on any
// node (conventionally the root) is visible to all of them immediately.
type AbortSignal struct {
	mu       sync.Mutex
	aborted  bool
}

// RequestAbort marks the signal aborted. Idempotent.
func (s *AbortSignal) RequestAbort() {
	s.mu.Lock()
	s.aborted = true
	s.mu.Unlock()
}

func (s *AbortSignal) isAborted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aborted
}

// Node is one element of the progress tree. A Node with no parent is a
// root; roots own an AbortSignal that every descendant shares.
type Node struct {
	mu          sync.Mutex
	parent      *Node
	signal      *AbortSignal
	portionSize float64 // percent of parent's 100%, clamped to [0,100]
	value       int     // current value, clamped to [0,100]
	step        string

	onRootValueChanged func(value int)
	onStepChanged      func(step string)
}

// NewRoot creates a top-level Node with its own abort signal. A nil root
// is never needed by callers: use NewRoot and pass its pointer, or use
// Null() for a no-op root when no progress reporting is wanted.
func NewRoot() *Node {
	return &Node{signal: &AbortSignal{}}
}

// Null returns a fresh, disconnected root suitable as a default when a
// caller supplies no progress node. It is not a shared global because
// each Null() has its own independent AbortSignal; callers that don't
// care about progress also don't care about sharing one.
func Null() *Node {
	return NewRoot()
}

// NewChild creates a child of n with the given portion of n's 100% and an
// optional step label. portionSize is clamped to [0,100].
func (n *Node) NewChild(portionSize float64, step string) *Node {
	if portionSize < 0 {
		portionSize = 0
	}
	if portionSize > 100 {
		portionSize = 100
	}
	child := &Node{
		parent:      n,
		signal:      n.signal,
		portionSize: portionSize,
	}
	if step != "" {
		child.SetStep(step)
	}
	return child
}

// SetValue clamps pct to [0,100] and, if it changed (a call that leaves
// the value at 0 always counts as a change and propagates a zero delta),
// rolls the delta into the parent scaled by this node's portion. Silently ignored once
// abort has been requested.
func (n *Node) SetValue(pct int) {
	n.mu.Lock()
	if n.signal != nil && n.signal.isAborted() {
		n.mu.Unlock()
		return
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	valueOnEntry := n.value
	n.value = pct
	unchanged := n.value == valueOnEntry && n.value != 0
	parent := n.parent
	portionSize := n.portionSize
	onRootValueChanged := n.onRootValueChanged
	newValue := n.value
	n.mu.Unlock()

	if unchanged {
		return
	}

	if parent != nil {
		delta := int(math.Ceil(float64(newValue-valueOnEntry) * (portionSize / 100.0)))
		parent.SetValue(parent.Value() + delta)
	} else if onRootValueChanged != nil {
		onRootValueChanged(newValue)
	}
}

// Value returns the node's current percentage, [0,100].
func (n *Node) Value() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.value
}

// Finish sets the node's value to 100, rolling its full portion into its
// parent. Callers should defer Finish() at the top of any stage that
// creates a child Node, so an early return on error still completes the
// child's contribution rather than leaving the tree at a stale partial
// value. Finish on a root node (no parent) is a no-op: the root's value
// is left unchanged.
func (n *Node) Finish() {
	n.mu.Lock()
	hasParent := n.parent != nil
	n.mu.Unlock()
	if hasParent {
		n.SetValue(100)
	}
}

// SetStep records a human-readable label for the current stage (e.g.
// "Reading file") and, like SetValue, bubbles it up through every
// ancestor so a root-level observer sees whichever descendant's step
// most recently changed.
func (n *Node) SetStep(step string) {
	n.mu.Lock()
	n.step = step
	parent := n.parent
	onStepChanged := n.onStepChanged
	n.mu.Unlock()

	if parent != nil {
		parent.SetStep(step)
	} else if onStepChanged != nil {
		onStepChanged(step)
	}
}

// Step returns the most recently set step label.
func (n *Node) Step() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.step
}

// IsAbortRequested reports whether this tree's abort signal has fired.
func (n *Node) IsAbortRequested() bool {
	if n == nil || n.signal == nil {
		return false
	}
	return n.signal.isAborted()
}

// RequestAbort requests cancellation for the whole tree this node
// belongs to. Idempotent; safe to call from any goroutine.
func (n *Node) RequestAbort() {
	if n == nil || n.signal == nil {
		return
	}
	n.signal.RequestAbort()
}

// OnRootValueChanged registers a callback invoked whenever a root node's
// value changes. Used by the task manager to bridge a root Node's
// progress into its ProgressChanged notification.
func (n *Node) OnRootValueChanged(fn func(value int)) {
	n.mu.Lock()
	n.onRootValueChanged = fn
	n.mu.Unlock()
}

// OnStepChanged registers a callback invoked whenever a root node's step
// label changes.
func (n *Node) OnStepChanged(fn func(step string)) {
	n.mu.Lock()
	n.onStepChanged = fn
	n.mu.Unlock()
}
