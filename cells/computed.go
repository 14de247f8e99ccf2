package cells

import "fmt"

// Computed is a cached derived value. Staleness propagates through it
// eagerly, but the derive function only re-runs when the value is actually
// read, and only if some dependency's version advanced since the last run.
// Dependencies are whatever the last run actually read.
type Computed[T any] struct {
	rs             *ReactiveSystem
	derive         func(oldValue T) (T, error)
	val            T
	ver            uint32
	state          state
	deps           []depEntry
	subs           []subscriber
	equals         func(a, b T) bool
	everRan        bool
	runFailed      bool
	disposed       bool
	staleDuringRun bool
}

type ComputedOption[T any] func(*Computed[T])

// WithComputedEquals overrides the cutoff check: a re-derived value equal to
// the cached one keeps the old version, so downstream nodes settle clean
// without re-deriving.
func WithComputedEquals[T any](eq func(a, b T) bool) ComputedOption[T] {
	return func(c *Computed[T]) {
		c.equals = eq
	}
}

// NewComputed declares a derived value. derive receives the previously
// cached value (the zero value on the first run) and nothing runs until the
// first read.
func NewComputed[T any](rs *ReactiveSystem, derive func(oldValue T) (T, error), opts ...ComputedOption[T]) *Computed[T] {
	c := &Computed[T]{
		rs:     rs,
		derive: derive,
		state:  stateDirty,
		equals: defaultEquals[T],
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Value settles the node and returns the cached result, registering a
// dependency edge for the active tracked node. On a cycle or derive failure
// the node stays dirty, the stale cached value is returned alongside the
// error, and the next read retries.
func (c *Computed[T]) Value() (T, error) {
	err := c.settle()
	c.rs.recordRead(c)
	return c.val, err
}

// Peek settles and returns the value without registering a dependency.
func (c *Computed[T]) Peek() (T, error) {
	err := c.settle()
	return c.val, err
}

// MustValue is Value for derivations that cannot fail; it panics on error.
func (c *Computed[T]) MustValue() T {
	v, err := c.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Computed[T]) settle() error {
	switch c.state {
	case stateClean:
		return nil
	case stateComputing:
		return &CycleError{Node: c}
	}
	if c.disposed {
		c.state = stateClean
		return nil
	}
	// a failed run pins its read-set at the versions it saw, so the
	// bailout must never trust it: every read after a failure re-derives
	if c.everRan && !c.runFailed && depsSettledUnchanged(c.deps) {
		c.state = stateClean
		return nil
	}
	return c.run()
}

func (c *Computed[T]) run() error {
	c.state = stateComputing
	defer func() {
		// A panic or derive error lands here with the state still
		// computing; restore dirty so a later read retries.
		if c.state == stateComputing {
			c.state = stateDirty
			c.runFailed = true
		}
	}()

	var runErr error
	c.rs.runTracked(c, func() {
		oldVal := c.val
		newVal, err := c.derive(oldVal)
		if err != nil {
			runErr = fmt.Errorf("derive: %w", err)
			return
		}
		if !c.everRan || !c.equals(oldVal, newVal) {
			c.val = newVal
			c.ver++
		}
		c.everRan = true
		c.runFailed = false
		c.state = stateClean
	})

	if c.staleDuringRun {
		c.staleDuringRun = false
		// whether the run ended clean or failed, downstream must hear
		// about the mid-run write
		if c.state == stateClean {
			c.state = stateDirty
		}
		c.notifySubs()
	}
	return runErr
}

// Dispose unsubscribes from all dependencies. Later reads return the cached
// value without recomputing or resubscribing.
func (c *Computed[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	for _, e := range c.deps {
		e.dep.removeSub(c)
	}
	c.deps = nil
	c.state = stateClean
}

// Version advances only when a run produced a value the cutoff check
// considers different.
func (c *Computed[T]) Version() uint32 {
	return c.ver
}

func (c *Computed[T]) notifySubs() {
	for _, sub := range c.subs {
		sub.markStale()
	}
}

func (c *Computed[T]) isNode() {}

func (c *Computed[T]) version() uint32 {
	return c.ver
}

func (c *Computed[T]) addSub(s subscriber) {
	c.subs = append(c.subs, s)
}

func (c *Computed[T]) removeSub(s subscriber) {
	for i, sub := range c.subs {
		if sub == s {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}

// markStale dirties this node and forwards staleness to its own subscribers
// immediately. Already-dirty nodes absorb the notification; a notification
// arriving mid-run is applied once the run finishes.
func (c *Computed[T]) markStale() {
	switch c.state {
	case stateDirty:
		return
	case stateComputing:
		c.staleDuringRun = true
		return
	}
	c.state = stateDirty
	c.notifySubs()
}

func (c *Computed[T]) depList() []depEntry {
	return c.deps
}

func (c *Computed[T]) setDepList(deps []depEntry) {
	c.deps = deps
}

// read satisfies Readable for the generated combinators.
func (c *Computed[T]) read() (T, error) {
	return c.Value()
}
