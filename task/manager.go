// Package task implements a minimal scheduler contract ("Task manager":
// NewTask, Run, WaitForDone, GlobalProgress, ProgressChanged) as a
// bounded goroutine pool. Any scheduler satisfying Manager — a different
// pool, a work-stealing queue, cooperative tasks — is a legal
// substitute; the import orchestrator depends only on the interface.
package task

import (
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cadio-project/cadio/progress"
)

// ID identifies one task within a Manager. Backed by a UUID rather than a
// sequential counter because tasks are created concurrently and nothing
// in the contract requires creation order to be observable.
type ID = uuid.UUID

// AutoDestroy controls whether a Manager forgets a task's bookkeeping as
// soon as it completes.
type AutoDestroy bool

const (
	AutoDestroyOff AutoDestroy = false
	AutoDestroyOn  AutoDestroy = true
)

// Manager is the scheduler contract the import orchestrator depends on.
type Manager interface {
	// NewTask registers fn to run later under a fresh root progress.Node
	// owned by that task, and returns its ID.
	NewTask(fn func(*progress.Node)) ID
	// Run starts the task identified by id on the pool.
	Run(id ID, autoDestroy AutoDestroy)
	// WaitForDone blocks up to timeout for the task to finish, returning
	// whether it had finished by the deadline.
	WaitForDone(id ID, timeout time.Duration) bool
	// GlobalProgress returns the average of every task's progress,
	// [0,100], each task counting equally.
	GlobalProgress() int
	// OnProgressChanged registers a callback invoked with (id, percent)
	// whenever any task's progress changes.
	OnProgressChanged(fn func(id ID, percent int))
	// OnStepChanged registers a callback invoked with (id, step) whenever
	// any task's step label changes.
	OnStepChanged(fn func(id ID, step string))
}

type taskRecord struct {
	node    *progress.Node
	fn      func(*progress.Node)
	done    chan struct{}
	started bool
}

// PoolManager is a goroutine-per-task Manager bounded by a semaphore sized
// to runtime.GOMAXPROCS(0), so it supports at least as many concurrent
// tasks as the hardware allows. Correctness of the import pipeline never
// depends on the exact bound, only liveness does.
type PoolManager struct {
	mu    sync.Mutex
	tasks map[ID]*taskRecord
	sem   chan struct{}

	onProgress func(id ID, percent int)
	onStep     func(id ID, step string)

	metrics *Metrics
}

// NewPoolManager creates a PoolManager. If metrics is nil, no Prometheus
// instrumentation is recorded.
func NewPoolManager(metrics *Metrics) *PoolManager {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	return &PoolManager{
		tasks:   make(map[ID]*taskRecord),
		sem:     make(chan struct{}, workers),
		metrics: metrics,
	}
}

func (m *PoolManager) NewTask(fn func(*progress.Node)) ID {
	id := uuid.New()
	node := progress.NewRoot()
	node.OnRootValueChanged(func(percent int) {
		m.mu.Lock()
		cb := m.onProgress
		m.mu.Unlock()
		if cb != nil {
			cb(id, percent)
		}
	})
	node.OnStepChanged(func(step string) {
		m.mu.Lock()
		cb := m.onStep
		m.mu.Unlock()
		if cb != nil {
			cb(id, step)
		}
	})

	m.mu.Lock()
	m.tasks[id] = &taskRecord{node: node, fn: fn, done: make(chan struct{})}
	m.mu.Unlock()
	return id
}

func (m *PoolManager) Run(id ID, autoDestroy AutoDestroy) {
	m.mu.Lock()
	rec, ok := m.tasks[id]
	if !ok || rec.started {
		m.mu.Unlock()
		return
	}
	rec.started = true
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.TasksActive.Inc()
	}
	start := time.Now()

	go func() {
		m.sem <- struct{}{}
		defer func() { <-m.sem }()
		defer close(rec.done)
		defer func() {
			if m.metrics != nil {
				m.metrics.TasksActive.Dec()
				m.metrics.TaskDuration.Observe(time.Since(start).Seconds())
			}
			if autoDestroy {
				m.mu.Lock()
				delete(m.tasks, id)
				m.mu.Unlock()
			}
		}()
		rec.fn(rec.node)
	}()
}

func (m *PoolManager) WaitForDone(id ID, timeout time.Duration) bool {
	m.mu.Lock()
	rec, ok := m.tasks[id]
	m.mu.Unlock()
	if !ok {
		return true
	}

	select {
	case <-rec.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (m *PoolManager) GlobalProgress() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.tasks) == 0 {
		return 100
	}
	total := 0
	for _, rec := range m.tasks {
		total += rec.node.Value()
	}
	return total / len(m.tasks)
}

func (m *PoolManager) OnProgressChanged(fn func(id ID, percent int)) {
	m.mu.Lock()
	m.onProgress = fn
	m.mu.Unlock()
}

func (m *PoolManager) OnStepChanged(fn func(id ID, step string)) {
	m.mu.Lock()
	m.onStep = fn
	m.mu.Unlock()
}
