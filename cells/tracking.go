package cells

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// trackFrame captures one tracked run: the node being evaluated and the
// read-set it accumulates. Frames form an explicit stack on the system so
// nested evaluation attributes each read to the innermost node.
type trackFrame struct {
	sub  subscriber
	deps []depEntry
	seen mapset.Set[dependency]
}

func (rs *ReactiveSystem) activeFrame() *trackFrame {
	if rs.pauseDepth > 0 || len(rs.frames) == 0 {
		return nil
	}
	return rs.frames[len(rs.frames)-1]
}

// recordRead attributes a dependency read to the active frame, pinning the
// version observed. Duplicate reads within one run record once.
func (rs *ReactiveSystem) recordRead(dep dependency) {
	f := rs.activeFrame()
	if f == nil {
		return
	}
	if sub, ok := dep.(subscriber); ok && sub == f.sub {
		// a self-read during a cycle never becomes an edge
		return
	}
	if f.seen.Contains(dep) {
		return
	}
	f.seen.Add(dep)
	f.deps = append(f.deps, depEntry{dep: dep, ver: dep.version()})
}

// runTracked evaluates fn with sub as the active node, then replaces sub's
// read-set with what fn actually read: edges no longer read are unsubscribed,
// new ones subscribed. The pop and the edge commit run in a defer so the
// stack and the graph stay consistent even when fn panics.
func (rs *ReactiveSystem) runTracked(sub subscriber, fn func()) {
	f := &trackFrame{
		sub:  sub,
		seen: mapset.NewThreadUnsafeSet[dependency](),
	}
	rs.frames = append(rs.frames, f)
	defer func() {
		rs.frames = rs.frames[:len(rs.frames)-1]
		old := sub.depList()
		commitEdges(sub, old, f.deps)
		sub.setDepList(f.deps)
	}()
	fn()
}

func commitEdges(sub subscriber, old, fresh []depEntry) {
	if len(old) > 0 {
		freshSet := mapset.NewThreadUnsafeSet[dependency]()
		for _, e := range fresh {
			freshSet.Add(e.dep)
		}
		for _, e := range old {
			if !freshSet.Contains(e.dep) {
				e.dep.removeSub(sub)
			}
		}
	}

	oldSet := mapset.NewThreadUnsafeSet[dependency]()
	for _, e := range old {
		oldSet.Add(e.dep)
	}
	for _, e := range fresh {
		if !oldSet.Contains(e.dep) {
			e.dep.addSub(sub)
		}
	}
}

// depsSettledUnchanged settles any computed dependencies and reports whether
// every dependency still carries the version pinned at the last read. A
// settle failure counts as changed so the owning node re-runs and surfaces
// the error through its own read.
func depsSettledUnchanged(deps []depEntry) bool {
	for _, e := range deps {
		if s, ok := e.dep.(settler); ok {
			if err := s.settle(); err != nil {
				return false
			}
		}
		if e.dep.version() != e.ver {
			return false
		}
	}
	return true
}
