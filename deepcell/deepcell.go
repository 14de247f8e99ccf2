// Package deepcell wraps nested map[string]any payloads so mutation at any
// depth is observable through the cells engine. A plain cell is the shallow
// variant: it notifies on top-level replacement only. Wrap is the deep
// variant: every key gets its own cell and nested maps become child Maps,
// created once and handed back by identity on every Get.
//
// Payloads that reference themselves are not supported; wrapping such a map
// does not terminate and the behavior is undefined.
package deepcell

import (
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/cellgraph/cells"
)

// tombstone is written to a deleted key's cell before the entry is removed.
// Callers can never store one, so the write always counts as a change and
// key readers hear the delete even when the stored value was already nil.
type tombstone struct{}

// Map is a deeply reactive string-keyed map.
type Map struct {
	rs        *cells.ReactiveSystem
	entries   map[string]*cells.Cell[any]
	children  map[string]*Map
	structure *cells.Cell[uint64]
}

// Wrap builds a Map from src. Nested map[string]any values are wrapped
// recursively; all other values are stored as-is.
func Wrap(rs *cells.ReactiveSystem, src map[string]any) *Map {
	m := &Map{
		rs:        rs,
		entries:   map[string]*cells.Cell[any]{},
		children:  map[string]*Map{},
		structure: cells.NewCell(rs, uint64(0)),
	}
	rs.Batch(func() {
		for k, v := range src {
			m.Set(k, v)
		}
	})
	return m
}

// Shallow stores src as an opaque value: every Set notifies, nested
// mutation is invisible.
func Shallow(rs *cells.ReactiveSystem, src map[string]any) *cells.Cell[map[string]any] {
	return cells.NewCell(rs, src, cells.WithEquals(cells.NeverEqual[map[string]any]))
}

// Get reads the value under key, registering a dependency for the active
// tracked node. Nested maps come back as *Map, the same instance on every
// call. A miss subscribes to the key set, so a later Set of this key
// notifies the reader.
func (m *Map) Get(key string) (any, bool) {
	c, ok := m.entries[key]
	if !ok {
		m.structure.Value()
		return nil, false
	}
	return c.Value(), true
}

// Set stores v under key. A map value is absorbed into the existing child
// Map when one is already there, so wrapped sub-maps keep their identity.
func (m *Map) Set(key string, v any) {
	m.rs.Batch(func() {
		if sub, ok := v.(map[string]any); ok {
			child, exists := m.children[key]
			if exists {
				child.replace(sub)
			} else {
				child = Wrap(m.rs, sub)
				m.children[key] = child
			}
			v = child
		} else {
			delete(m.children, key)
		}

		c, ok := m.entries[key]
		if !ok {
			m.entries[key] = cells.NewCell(m.rs, v, cells.WithEquals(entryEquals))
			m.structure.Set(m.fingerprint())
			return
		}
		c.Set(v)
	})
}

// Delete removes key. Readers of the key observe nil before the entry goes
// away; readers of the key set are notified.
func (m *Map) Delete(key string) {
	c, ok := m.entries[key]
	if !ok {
		return
	}
	m.rs.Batch(func() {
		c.Set(tombstone{})
		delete(m.entries, key)
		delete(m.children, key)
		m.structure.Set(m.fingerprint())
	})
}

// Len is reactive: a tracked reader re-runs when keys are added or removed,
// not when values change.
func (m *Map) Len() int {
	m.structure.Value()
	return len(m.entries)
}

// Keys returns the sorted key set, reactively like Len.
func (m *Map) Keys() []string {
	m.structure.Value()
	return m.sortedKeys()
}

// Snapshot deep-copies the current contents into plain maps without
// registering any dependencies.
func (m *Map) Snapshot() map[string]any {
	out := make(map[string]any, len(m.entries))
	for k, c := range m.entries {
		if child, ok := c.Peek().(*Map); ok {
			out[k] = child.Snapshot()
		} else {
			out[k] = c.Peek()
		}
	}
	return out
}

// replace reconciles this Map's contents to src key by key, keeping cells
// and child Maps alive across the swap.
func (m *Map) replace(src map[string]any) {
	m.rs.Batch(func() {
		for _, k := range m.sortedKeys() {
			if _, ok := src[k]; !ok {
				m.Delete(k)
			}
		}
		for k, v := range src {
			m.Set(k, v)
		}
	})
}

func (m *Map) sortedKeys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fingerprint hashes the sorted key set; the structure cell holds it so key
// additions and removals are observable independent of the values.
func (m *Map) fingerprint() uint64 {
	h := xxhash.New()
	for _, k := range m.sortedKeys() {
		h.WriteString(k)
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// entryEquals compares child Maps by identity so a reconciled sub-map does
// not look like a change, and everything else by the default equality.
func entryEquals(a, b any) bool {
	if am, ok := a.(*Map); ok {
		bm, ok := b.(*Map)
		return ok && am == bm
	}
	if _, ok := b.(*Map); ok {
		return false
	}
	return cells.Equal(a, b)
}
