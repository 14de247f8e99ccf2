package cells

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
)

const defaultMaxFlushOps = 10_000

// OnErrorFunc receives effect and cleanup failures raised while draining the
// queue. When nil, Flush returns the joined errors instead and a drain
// triggered by a bare Set panics with them once the drain has finished.
type OnErrorFunc func(from Node, err error)

// ReactiveSystem owns one dependency graph: the tracking stack, the batch
// depth and the pending effect queue. Systems are fully independent of each
// other; all access to a single system must happen on one goroutine.
type ReactiveSystem struct {
	frames      []*trackFrame
	pauseDepth  int
	batchDepth  int
	queue       []*Effect
	queued      mapset.Set[*Effect]
	flushing    bool
	maxFlushOps int
	onError     OnErrorFunc
}

func NewReactiveSystem(onError OnErrorFunc) *ReactiveSystem {
	return &ReactiveSystem{
		queued:      mapset.NewThreadUnsafeSet[*Effect](),
		maxFlushOps: defaultMaxFlushOps,
		onError:     onError,
	}
}

// SetMaxFlushOps changes the number of effect runs a single drain may perform
// before it is aborted as a runaway feedback loop.
func (rs *ReactiveSystem) SetMaxFlushOps(n int) {
	rs.maxFlushOps = n
}

// StartBatch suspends queue draining until the matching EndBatch.
func (rs *ReactiveSystem) StartBatch() {
	rs.batchDepth++
}

// EndBatch closes the innermost batch. The outermost EndBatch drains the
// queue, so N writes inside a batch collapse into at most one run per effect.
func (rs *ReactiveSystem) EndBatch() {
	rs.batchDepth--
	if rs.batchDepth == 0 {
		rs.autoFlush()
	}
}

// Batch runs fn with draining suspended. Batches nest; only the outermost
// triggers the drain.
func (rs *ReactiveSystem) Batch(fn func()) {
	rs.StartBatch()
	defer rs.EndBatch()
	fn()
}

// Flush synchronously drains the pending effect queue. Hosts that need
// deterministic timing call this instead of relying on the drain a bare Set
// performs. With no error handler installed the joined failures are returned.
func (rs *ReactiveSystem) Flush() error {
	return rs.drain()
}

// PauseTracking stops attributing reads to the active node until
// ResumeTracking. Calls nest.
func (rs *ReactiveSystem) PauseTracking() {
	rs.pauseDepth++
}

func (rs *ReactiveSystem) ResumeTracking() {
	rs.pauseDepth--
}

// Untracked runs fn with tracking paused, so reads inside do not subscribe
// the currently running computed or effect.
func (rs *ReactiveSystem) Untracked(fn func()) {
	rs.PauseTracking()
	defer rs.ResumeTracking()
	fn()
}

func (rs *ReactiveSystem) enqueue(e *Effect) {
	if rs.queued.Contains(e) {
		return
	}
	rs.queued.Add(e)
	rs.queue = append(rs.queue, e)
}

func (rs *ReactiveSystem) dequeue(e *Effect) {
	if !rs.queued.Contains(e) {
		return
	}
	rs.queued.Remove(e)
	for i, q := range rs.queue {
		if q == e {
			rs.queue = append(rs.queue[:i], rs.queue[i+1:]...)
			return
		}
	}
}

// autoFlush is the drain performed at the end of an unbatched write or the
// outermost EndBatch. Failures that have no handler surface as a panic here,
// after the drain has completed, so one failing effect cannot swallow the
// rest of the queue.
func (rs *ReactiveSystem) autoFlush() {
	if err := rs.drain(); err != nil {
		panic(err)
	}
}

// drain executes queued effects in insertion order. Writes performed by a
// running effect append to this same queue and the loop keeps going, bounded
// by maxFlushOps. A re-entrant call while already draining is a no-op; the
// outer loop picks up whatever was enqueued.
func (rs *ReactiveSystem) drain() error {
	if rs.flushing || rs.batchDepth > 0 {
		return nil
	}
	rs.flushing = true
	defer func() { rs.flushing = false }()

	var errs []error
	ops := 0
	for len(rs.queue) > 0 {
		ops++
		if ops > rs.maxFlushOps {
			e := rs.queue[0]
			rs.queue = rs.queue[:0]
			rs.queued.Clear()
			rs.report(e, &RunawayFlushError{Ops: rs.maxFlushOps}, &errs)
			break
		}
		e := rs.queue[0]
		rs.queue = rs.queue[1:]
		rs.queued.Remove(e)
		if err := e.run(); err != nil {
			rs.report(e, err, &errs)
		}
	}
	return errors.Join(errs...)
}

func (rs *ReactiveSystem) report(from Node, err error, errs *[]error) {
	if rs.onError != nil {
		rs.onError(from, err)
		return
	}
	*errs = append(*errs, err)
}

// reportOutOfFlush routes a failure raised outside a drain, such as a cleanup
// error during Dispose.
func (rs *ReactiveSystem) reportOutOfFlush(from Node, err error) error {
	if rs.onError != nil {
		rs.onError(from, err)
		return nil
	}
	return err
}

// afterWrite finishes a cell write: outside a batch and outside a running
// drain the queue is drained before the write returns.
func (rs *ReactiveSystem) afterWrite() {
	if rs.batchDepth > 0 || rs.flushing {
		return
	}
	rs.autoFlush()
}
