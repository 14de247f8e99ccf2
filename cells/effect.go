package cells

import "errors"

// CleanupFunc undoes the side effects of one effect run. It is invoked
// exactly once, either right before the next run or at disposal.
type CleanupFunc func() error

// Effect is a side-effecting subscriber. It runs once synchronously at
// creation; after that a dependency change enqueues it and the system's
// drain re-runs it. Each re-run first invokes the cleanup returned by the
// previous run.
type Effect struct {
	rs       *ReactiveSystem
	fn       func() (CleanupFunc, error)
	cleanup  CleanupFunc
	deps     []depEntry
	disposed bool
	running  bool
}

// NewEffect declares fn and runs it immediately. The first run's error is
// returned directly instead of going through the system's error handler.
func NewEffect(rs *ReactiveSystem, fn func() (CleanupFunc, error)) (*Effect, error) {
	e := &Effect{rs: rs, fn: fn}
	if err := e.execute(); err != nil {
		return e, err
	}
	return e, nil
}

// run is invoked by the drain loop. A queued effect whose dependencies all
// settled back to their pinned versions skips its body entirely, which is
// what makes equal-value recomputation invisible downstream.
func (e *Effect) run() error {
	if e.disposed {
		return nil
	}
	if len(e.deps) > 0 && depsSettledUnchanged(e.deps) {
		return nil
	}
	return e.execute()
}

func (e *Effect) execute() error {
	var errs []error
	if e.cleanup != nil {
		cl := e.cleanup
		e.cleanup = nil
		if err := cl(); err != nil {
			errs = append(errs, &CleanupError{Err: err})
		}
	}

	e.running = true
	defer func() { e.running = false }()
	var next CleanupFunc
	var runErr error
	e.rs.runTracked(e, func() {
		next, runErr = e.fn()
	})
	if runErr != nil {
		errs = append(errs, runErr)
	}

	if e.disposed {
		// Disposed during its own run: there is no future run to claim
		// the fresh cleanup, so invoke it now and drop the edges the run
		// just committed.
		if next != nil {
			if err := next(); err != nil {
				errs = append(errs, &CleanupError{Err: err})
			}
		}
		e.unsubscribe()
	} else {
		e.cleanup = next
	}
	return errors.Join(errs...)
}

// Dispose runs the pending cleanup, removes all subscriptions and leaves
// the effect permanently inert. Disposing twice is a no-op, as is a stale
// queue entry for a disposed effect.
func (e *Effect) Dispose() error {
	if e.disposed {
		return nil
	}
	e.disposed = true
	e.rs.dequeue(e)
	if e.running {
		// execute finishes the teardown once fn returns.
		return nil
	}
	var err error
	if e.cleanup != nil {
		cl := e.cleanup
		e.cleanup = nil
		if clErr := cl(); clErr != nil {
			err = e.rs.reportOutOfFlush(e, &CleanupError{Err: clErr})
		}
	}
	e.unsubscribe()
	return err
}

func (e *Effect) unsubscribe() {
	for _, d := range e.deps {
		d.dep.removeSub(e)
	}
	e.deps = nil
}

func (e *Effect) isNode() {}

func (e *Effect) markStale() {
	if e.disposed {
		return
	}
	e.rs.enqueue(e)
}

func (e *Effect) depList() []depEntry {
	return e.deps
}

func (e *Effect) setDepList(deps []depEntry) {
	e.deps = deps
}
