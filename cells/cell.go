package cells

// Cell is observable single-value storage. Reads made inside a running
// computed or effect subscribe that node to the cell; a write that changes
// the value (per the configured equality) bumps the version and marks every
// subscriber stale.
type Cell[T any] struct {
	rs     *ReactiveSystem
	val    T
	ver    uint32
	subs   []subscriber
	equals func(a, b T) bool
}

type CellOption[T any] func(*Cell[T])

// WithEquals overrides the change check used by Set. The default compares
// common scalar kinds directly and falls back to deep structural equality;
// pass NeverEqual to notify on every top-level replacement.
func WithEquals[T any](eq func(a, b T) bool) CellOption[T] {
	return func(c *Cell[T]) {
		c.equals = eq
	}
}

func NewCell[T any](rs *ReactiveSystem, initial T, opts ...CellOption[T]) *Cell[T] {
	c := &Cell[T]{
		rs:     rs,
		val:    initial,
		ver:    1,
		equals: defaultEquals[T],
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Value returns the current value and registers a dependency edge when a
// node is being tracked.
func (c *Cell[T]) Value() T {
	c.rs.recordRead(c)
	return c.val
}

// Peek reads without registering a dependency.
func (c *Cell[T]) Peek() T {
	return c.val
}

// Set stores v. Equal values are a no-op. A changed value notifies
// subscribers and, outside a batch, drains the effect queue before
// returning.
func (c *Cell[T]) Set(v T) {
	if c.equals(c.val, v) {
		return
	}
	c.val = v
	c.ver++
	for _, sub := range c.subs {
		sub.markStale()
	}
	c.rs.afterWrite()
}

// Update applies fn to the current value and Sets the result.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.val))
}

// Version returns the write counter; it advances only on changes that
// passed the equality check.
func (c *Cell[T]) Version() uint32 {
	return c.ver
}

func (c *Cell[T]) isNode() {}

func (c *Cell[T]) version() uint32 {
	return c.ver
}

func (c *Cell[T]) addSub(s subscriber) {
	c.subs = append(c.subs, s)
}

func (c *Cell[T]) removeSub(s subscriber) {
	for i, sub := range c.subs {
		if sub == s {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}

// read satisfies Readable for the generated combinators.
func (c *Cell[T]) read() (T, error) {
	return c.Value(), nil
}
