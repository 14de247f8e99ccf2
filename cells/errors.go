package cells

import "fmt"

// CycleError reports a computed whose derivation read itself, directly or
// through other computeds. The node stays dirty so a corrected read can
// retry.
type CycleError struct {
	Node Node
}

func (e *CycleError) Error() string {
	return "cellgraph: cycle detected, computed depends on itself"
}

// RunawayFlushError reports a drain that exceeded the system's operation
// cap, which indicates an infinite update feedback loop. The queue is
// cleared when this is raised.
type RunawayFlushError struct {
	Ops int
}

func (e *RunawayFlushError) Error() string {
	return fmt.Sprintf("cellgraph: flush aborted after %d operations, runaway update loop", e.Ops)
}

// CleanupError wraps a failure from an effect's cleanup callback. It is
// reported but never prevents the next run from executing.
type CleanupError struct {
	Err error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("cellgraph: effect cleanup failed: %v", e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}
