package cells

// Node is implemented by every reactive primitive in a system. It exists so
// error handlers can report which node a failure came from.
type Node interface {
	isNode()
}

// dependency is a value source other nodes can subscribe to. Cells and
// computeds are dependencies; effects are not.
type dependency interface {
	Node
	addSub(subscriber)
	removeSub(subscriber)
	version() uint32
}

// subscriber is a node that consumes dependencies. Computeds and effects are
// subscribers; cells are not.
type subscriber interface {
	Node
	markStale()
	depList() []depEntry
	setDepList([]depEntry)
}

// settler is a dependency whose value may be stale and needs settling before
// its version can be trusted. Only computeds settle.
type settler interface {
	settle() error
}

// depEntry is one edge of a subscriber's read-set, pinned to the version the
// dependency had when it was read.
type depEntry struct {
	dep dependency
	ver uint32
}

type state uint8

const (
	stateClean state = iota
	stateDirty
	stateComputing
)
