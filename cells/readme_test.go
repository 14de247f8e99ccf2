package cells_test

import (
	"testing"

	"github.com/delaneyj/cellgraph/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The canonical shape: a cell feeds a computed feeds an effect. The effect
// logs once on creation and once per meaningful write, and the computed
// derives at most once per flush.
func TestCellComputedEffectScenario(t *testing.T) {
	rs := newTestSystem(t)

	a := cells.NewCell(rs, 1)
	derives := 0
	b := cells.NewComputed(rs, func(oldValue int) (int, error) {
		derives++
		return a.Value() * 2, nil
	})

	logged := []int{}
	e, err := cells.NewEffect(rs, func() (cells.CleanupFunc, error) {
		v, err := b.Value()
		if err != nil {
			return nil, err
		}
		logged = append(logged, v)
		return nil, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []int{2}, logged)
	assert.Equal(t, 1, derives)

	a.Set(3)
	assert.Equal(t, []int{2, 6}, logged)
	assert.Equal(t, 2, derives)

	require.NoError(t, e.Dispose())
	a.Set(10)
	assert.Equal(t, []int{2, 6}, logged)
	// not recomputed until someone reads it again
	assert.Equal(t, 2, derives)
	assert.Equal(t, 20, b.MustValue())
	assert.Equal(t, 3, derives)
}

// Within one flush a computed settles before the effect that reads it, and
// a single upstream write produces exactly one derive and one run.
func TestTopologyOrderWithinOneFlush(t *testing.T) {
	rs := newTestSystem(t)

	a := cells.NewCell(rs, 1)
	order := []string{}
	b := cells.NewComputed(rs, func(oldValue int) (int, error) {
		order = append(order, "derive")
		return a.Value() + 1, nil
	})
	_, err := cells.NewEffect(rs, func() (cells.CleanupFunc, error) {
		if _, err := b.Value(); err != nil {
			return nil, err
		}
		order = append(order, "run")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"derive", "run"}, order)

	order = order[:0]
	a.Set(2)
	assert.Equal(t, []string{"derive", "run"}, order)
}
