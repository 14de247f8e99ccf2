package deepcell_test

import (
	"testing"

	"github.com/delaneyj/cellgraph/cells"
	"github.com/delaneyj/cellgraph/deepcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSystem(t *testing.T) *cells.ReactiveSystem {
	t.Helper()
	return cells.NewReactiveSystem(func(from cells.Node, err error) {
		assert.FailNow(t, err.Error())
	})
}

func TestWrapAndGet(t *testing.T) {
	rs := newTestSystem(t)

	m := deepcell.Wrap(rs, map[string]any{
		"name": "grace",
		"address": map[string]any{
			"city": "london",
		},
	})

	v, ok := m.Get("name")
	require.True(t, ok)
	assert.Equal(t, "grace", v)

	_, ok = m.Get("missing")
	assert.False(t, ok)

	child, ok := m.Get("address")
	require.True(t, ok)
	city, ok := child.(*deepcell.Map).Get("city")
	require.True(t, ok)
	assert.Equal(t, "london", city)
}

func TestNestedMutationIsObservable(t *testing.T) {
	rs := newTestSystem(t)

	m := deepcell.Wrap(rs, map[string]any{
		"address": map[string]any{"city": "london"},
	})

	seen := []string{}
	_, err := cells.NewEffect(rs, func() (cells.CleanupFunc, error) {
		child, ok := m.Get("address")
		if !ok {
			return nil, nil
		}
		city, _ := child.(*deepcell.Map).Get("city")
		seen = append(seen, city.(string))
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"london"}, seen)

	addr, _ := m.Get("address")
	addr.(*deepcell.Map).Set("city", "paris")
	assert.Equal(t, []string{"london", "paris"}, seen)
}

func TestChildIdentityIsStable(t *testing.T) {
	rs := newTestSystem(t)

	m := deepcell.Wrap(rs, map[string]any{
		"address": map[string]any{"city": "london"},
	})

	first, _ := m.Get("address")
	second, _ := m.Get("address")
	assert.Same(t, first, second)

	// replacing the sub-map reconciles into the same wrapper
	m.Set("address", map[string]any{"city": "tokyo"})
	third, _ := m.Get("address")
	assert.Same(t, first, third)

	city, _ := third.(*deepcell.Map).Get("city")
	assert.Equal(t, "tokyo", city)
}

func TestLenAndKeysAreReactive(t *testing.T) {
	rs := newTestSystem(t)

	m := deepcell.Wrap(rs, map[string]any{"a": 1})
	lens := []int{}
	_, err := cells.NewEffect(rs, func() (cells.CleanupFunc, error) {
		lens = append(lens, m.Len())
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, lens)

	// value change without a key change stays invisible to Len readers
	m.Set("a", 2)
	assert.Equal(t, []int{1}, lens)

	m.Set("b", 3)
	assert.Equal(t, []int{1, 2}, lens)
	assert.Equal(t, []string{"a", "b"}, m.Keys())

	m.Delete("a")
	assert.Equal(t, []int{1, 2, 1}, lens)
}

func TestMissingKeyReadersHearTheSet(t *testing.T) {
	rs := newTestSystem(t)

	m := deepcell.Wrap(rs, map[string]any{})
	seen := []any{}
	_, err := cells.NewEffect(rs, func() (cells.CleanupFunc, error) {
		v, ok := m.Get("pending")
		if !ok {
			seen = append(seen, nil)
			return nil, nil
		}
		seen = append(seen, v)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []any{nil}, seen)

	m.Set("pending", "arrived")
	assert.Equal(t, []any{nil, "arrived"}, seen)
}

func TestDeleteNotifiesValueReaders(t *testing.T) {
	rs := newTestSystem(t)

	m := deepcell.Wrap(rs, map[string]any{"x": 1})
	seen := []any{}
	_, err := cells.NewEffect(rs, func() (cells.CleanupFunc, error) {
		v, _ := m.Get("x")
		seen = append(seen, v)
		return nil, nil
	})
	require.NoError(t, err)

	m.Delete("x")
	require.GreaterOrEqual(t, len(seen), 2)
	assert.Nil(t, seen[len(seen)-1])
}

// Deleting a key whose stored value is already nil must still reach readers
// of that key; presence has to flip even though the value does not.
func TestDeleteOfNilValuedKeyNotifiesReaders(t *testing.T) {
	rs := newTestSystem(t)

	m := deepcell.Wrap(rs, map[string]any{})
	m.Set("k", nil)

	present := []bool{}
	_, err := cells.NewEffect(rs, func() (cells.CleanupFunc, error) {
		_, ok := m.Get("k")
		present = append(present, ok)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, present)

	m.Delete("k")
	assert.Equal(t, []bool{true, false}, present)
}

func TestSnapshotUnwrapsChildren(t *testing.T) {
	rs := newTestSystem(t)

	src := map[string]any{
		"name": "grace",
		"address": map[string]any{
			"city": "london",
		},
	}
	m := deepcell.Wrap(rs, src)
	assert.Equal(t, src, m.Snapshot())
}

func TestShallowIgnoresNestedMutation(t *testing.T) {
	rs := newTestSystem(t)

	payload := map[string]any{"count": 1}
	c := deepcell.Shallow(rs, payload)
	runs := 0
	_, err := cells.NewEffect(rs, func() (cells.CleanupFunc, error) {
		c.Value()
		runs++
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, runs)

	// nested mutation is invisible to a shallow cell
	payload["count"] = 2
	assert.Equal(t, 1, runs)

	// top-level replacement always notifies, even with equal contents
	c.Set(map[string]any{"count": 2})
	assert.Equal(t, 2, runs)
}
