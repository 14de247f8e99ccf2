package cells_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/delaneyj/cellgraph/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputedCachesBetweenReads(t *testing.T) {
	rs := newTestSystem(t)

	a := cells.NewCell(rs, 7)
	derives := 0
	b := cells.NewComputed(rs, func(oldValue int) (int, error) {
		derives++
		return a.Value() + 1, nil
	})

	assert.Equal(t, 8, b.MustValue())
	assert.Equal(t, 8, b.MustValue())
	assert.Equal(t, 1, derives)
}

func TestComputedObservesLatestWrite(t *testing.T) {
	rs := newTestSystem(t)

	a := cells.NewCell(rs, 1)
	derives := 0
	b := cells.NewComputed(rs, func(oldValue int) (int, error) {
		derives++
		return a.Value() * 2, nil
	})

	assert.Equal(t, 2, b.MustValue())

	a.Set(3)
	assert.Equal(t, 6, b.MustValue())
	assert.Equal(t, 2, derives)
}

func TestEqualWriteDoesNotDirtyDownstream(t *testing.T) {
	rs := newTestSystem(t)

	a := cells.NewCell(rs, 5)
	derives := 0
	b := cells.NewComputed(rs, func(oldValue int) (int, error) {
		derives++
		return a.Value() * 10, nil
	})
	assert.Equal(t, 50, b.MustValue())

	a.Set(5)
	assert.Equal(t, 50, b.MustValue())
	assert.Equal(t, 1, derives)
}

func TestDeriveReceivesPreviousValue(t *testing.T) {
	rs := newTestSystem(t)

	a := cells.NewCell(rs, 1)
	history := []int{}
	b := cells.NewComputed(rs, func(oldValue int) (int, error) {
		history = append(history, oldValue)
		return a.Value(), nil
	})

	b.MustValue()
	a.Set(2)
	b.MustValue()

	assert.Equal(t, []int{0, 1}, history)
}

// s feeds both sides of a diamond; the join must derive once per write even
// though it hears about the change twice.
func TestDiamondDerivesOncePerWrite(t *testing.T) {
	rs := newTestSystem(t)

	s := cells.NewCell(rs, 1)
	left := cells.NewComputed(rs, func(oldValue int) (int, error) {
		return s.Value() + 1, nil
	})
	right := cells.NewComputed(rs, func(oldValue int) (int, error) {
		return s.Value() * 100, nil
	})
	sumDerives := 0
	sum := cells.NewComputed(rs, func(oldValue int) (int, error) {
		sumDerives++
		l, err := left.Value()
		if err != nil {
			return 0, err
		}
		r, err := right.Value()
		if err != nil {
			return 0, err
		}
		return l + r, nil
	})

	assert.Equal(t, 102, sum.MustValue())
	assert.Equal(t, 1, sumDerives)

	s.Set(2)
	assert.Equal(t, 203, sum.MustValue())
	assert.Equal(t, 2, sumDerives)
}

// A middle computed that keeps producing the same value must absorb the
// change: the leaf neither re-derives nor reruns its effect.
func TestEqualMiddleValueStopsPropagation(t *testing.T) {
	rs := newTestSystem(t)

	a := cells.NewCell(rs, 1)
	middleDerives := 0
	middle := cells.NewComputed(rs, func(oldValue int) (int, error) {
		middleDerives++
		a.Value()
		return 42, nil
	})
	leafDerives := 0
	leaf := cells.NewComputed(rs, func(oldValue int) (int, error) {
		leafDerives++
		v, err := middle.Value()
		return v + 1, err
	})
	effectRuns := 0
	_, err := cells.NewEffect(rs, func() (cells.CleanupFunc, error) {
		if _, err := leaf.Value(); err != nil {
			return nil, err
		}
		effectRuns++
		return nil, nil
	})
	require.NoError(t, err)

	assert.Equal(t, 43, leaf.MustValue())
	assert.Equal(t, 1, effectRuns)

	a.Set(2)
	assert.Equal(t, 43, leaf.MustValue())
	assert.Equal(t, 2, middleDerives)
	assert.Equal(t, 1, leafDerives)
	assert.Equal(t, 1, effectRuns)
}

// Dependencies are whatever the last run actually read: after the switch
// flips, writes to the abandoned branch are invisible.
func TestOnlyDependsOnWhatWasRead(t *testing.T) {
	rs := newTestSystem(t)

	useFirst := cells.NewCell(rs, true)
	first := cells.NewCell(rs, "first")
	second := cells.NewCell(rs, "second")
	derives := 0
	pick := cells.NewComputed(rs, func(oldValue string) (string, error) {
		derives++
		if useFirst.Value() {
			return first.Value(), nil
		}
		return second.Value(), nil
	})

	assert.Equal(t, "first", pick.MustValue())
	second.Set("second changed")
	assert.Equal(t, "first", pick.MustValue())
	assert.Equal(t, 1, derives)

	useFirst.Set(false)
	assert.Equal(t, "second changed", pick.MustValue())
	assert.Equal(t, 2, derives)

	first.Set("first changed")
	assert.Equal(t, "second changed", pick.MustValue())
	assert.Equal(t, 2, derives)
}

func TestDirectCycleIsAnError(t *testing.T) {
	rs := newTestSystem(t)

	var c *cells.Computed[int]
	c = cells.NewComputed(rs, func(oldValue int) (int, error) {
		v, err := c.Value()
		return v + 1, err
	})

	_, err := c.Value()
	var cycleErr *cells.CycleError
	require.ErrorAs(t, err, &cycleErr)
}

func TestIndirectCycleIsAnError(t *testing.T) {
	rs := newTestSystem(t)

	var x, y *cells.Computed[int]
	x = cells.NewComputed(rs, func(oldValue int) (int, error) {
		v, err := y.Value()
		return v + 1, err
	})
	y = cells.NewComputed(rs, func(oldValue int) (int, error) {
		v, err := x.Value()
		return v + 1, err
	})

	_, err := x.Value()
	var cycleErr *cells.CycleError
	require.ErrorAs(t, err, &cycleErr)
}

func TestCycleErrorLeavesNodeRetryable(t *testing.T) {
	rs := newTestSystem(t)

	useSelf := cells.NewCell(rs, true)
	a := cells.NewCell(rs, 10)
	var c *cells.Computed[int]
	c = cells.NewComputed(rs, func(oldValue int) (int, error) {
		if useSelf.Value() {
			v, err := c.Value()
			return v, err
		}
		return a.Value(), nil
	})

	_, err := c.Value()
	var cycleErr *cells.CycleError
	require.ErrorAs(t, err, &cycleErr)

	// corrected read retries instead of serving a poisoned cache
	useSelf.Set(false)
	assert.Equal(t, 10, c.MustValue())
}

func TestDeriveErrorStaysDirtyAndRetries(t *testing.T) {
	rs := newTestSystem(t)

	shouldFail := true
	a := cells.NewCell(rs, 1)
	derives := 0
	c := cells.NewComputed(rs, func(oldValue int) (int, error) {
		derives++
		if shouldFail {
			return 0, errors.New("boom")
		}
		return a.Value(), nil
	})

	_, err := c.Value()
	require.ErrorContains(t, err, "boom")
	_, err = c.Value()
	require.Error(t, err)
	assert.Equal(t, 2, derives)

	shouldFail = false
	assert.Equal(t, 1, c.MustValue())
	assert.Equal(t, 3, derives)
}

// A failure on a node that already succeeded once must not let the cached
// value leak out: the node stays dirty and the very next read re-derives.
func TestDeriveErrorAfterSuccessRetries(t *testing.T) {
	rs := newTestSystem(t)

	a := cells.NewCell(rs, 1)
	failNext := false
	derives := 0
	c := cells.NewComputed(rs, func(oldValue int) (int, error) {
		derives++
		v := a.Value()
		if failNext {
			return 0, errors.New("transient")
		}
		return v * 10, nil
	})
	assert.Equal(t, 10, c.MustValue())

	failNext = true
	a.Set(2)
	_, err := c.Value()
	require.ErrorContains(t, err, "transient")

	failNext = false
	v, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, 20, v)
	assert.Equal(t, 3, derives)
}

// Writing a dependency from inside a derive that then fails must still
// propagate, so dependents settle against the final values within the same
// flush.
func TestMidDeriveWriteRecoversInTheSameFlush(t *testing.T) {
	var reported []error
	rs := cells.NewReactiveSystem(func(from cells.Node, err error) {
		reported = append(reported, err)
	})

	a := cells.NewCell(rs, 1)
	b := cells.NewCell(rs, 10)
	failNext := false
	c := cells.NewComputed(rs, func(oldValue int) (int, error) {
		av := a.Value()
		bv := b.Value()
		if failNext {
			failNext = false
			b.Set(99)
			return 0, errors.New("interrupted")
		}
		return av + bv, nil
	})

	seen := []int{}
	_, err := cells.NewEffect(rs, func() (cells.CleanupFunc, error) {
		v, err := c.Value()
		if err != nil {
			return nil, err
		}
		seen = append(seen, v)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{11}, seen)

	failNext = true
	a.Set(2)

	assert.Equal(t, []int{11, 101}, seen)
	assert.Empty(t, reported)
}

func TestGraphStaysConsistentWhenDerivePanics(t *testing.T) {
	rs := newTestSystem(t)

	a := cells.NewCell(rs, 1)
	c := cells.NewComputed(rs, func(oldValue int) (int, error) {
		v := a.Value()
		if v == 2 {
			panic(fmt.Sprintf("bad value %d", v))
		}
		return v * 10, nil
	})

	assert.Equal(t, 10, c.MustValue())

	a.Set(2)
	assert.Panics(t, func() { c.MustValue() })
	// the panicked run is not trusted as a cache, a re-read retries
	assert.Panics(t, func() { c.MustValue() })

	// subscriptions survived the panic, so the node still hears writes
	a.Set(3)
	assert.Equal(t, 30, c.MustValue())
}

func TestDisposedComputedKeepsItsCache(t *testing.T) {
	rs := newTestSystem(t)

	a := cells.NewCell(rs, 4)
	derives := 0
	c := cells.NewComputed(rs, func(oldValue int) (int, error) {
		derives++
		return a.Value() * 2, nil
	})
	assert.Equal(t, 8, c.MustValue())

	c.Dispose()
	a.Set(100)
	assert.Equal(t, 8, c.MustValue())
	assert.Equal(t, 1, derives)
}

func TestPeekDoesNotSubscribe(t *testing.T) {
	rs := newTestSystem(t)

	a := cells.NewCell(rs, 1)
	b := cells.NewComputed(rs, func(oldValue int) (int, error) {
		return a.Value() + 1, nil
	})
	runs := 0
	_, err := cells.NewEffect(rs, func() (cells.CleanupFunc, error) {
		if _, err := b.Peek(); err != nil {
			return nil, err
		}
		runs++
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, runs)

	a.Set(2)
	assert.Equal(t, 1, runs)
}
