package deque

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/segdeque/internal/testutil"
	"github.com/joshuapare/segdeque/seq/alloc"
)

// newWide creates a deque of Wide (4 per buffer) holding 0..n-1.
func newWide(t *testing.T, n int, opts *Options[testutil.Wide]) *Deque[testutil.Wide] {
	t.Helper()
	d, err := New(opts)
	require.NoError(t, err)
	for i := range n {
		require.NoError(t, d.PushBack(testutil.W(i)))
	}
	t.Cleanup(d.Close)
	return d
}

// values returns the payloads of a Wide deque, front to back.
func values(d *Deque[testutil.Wide]) []int {
	return testutil.WideValues(d.Slice())
}

// counted returns options whose allocators record every call.
func counted[T any]() (*Options[T], *alloc.Counting[T], *alloc.Counting[Handle]) {
	elems := alloc.NewCounting[T](nil)
	index := alloc.NewCounting[Handle](nil)
	return &Options[T]{Elements: elems, Index: index}, elems, index
}

// checkLayout asserts the structural invariants of d.
func checkLayout[T any](t *testing.T, d *Deque[T]) {
	t.Helper()
	slots := d.lay.slots

	require.GreaterOrEqual(t, d.lo, 1, "no slack before the allocated range")
	require.LessOrEqual(t, d.hi, len(slots)-1, "no slack after the allocated range")
	require.LessOrEqual(t, d.lo, d.head.slot)
	require.Less(t, d.tail.slot, d.hi)
	require.True(t, d.head.LessEq(d.tail), "head after tail")
	require.Less(t, d.tail.off, d.lay.bufCap)

	for s, h := range slots {
		if s >= d.lo && s < d.hi {
			require.True(t, d.lay.live(h), "slot %d in [%d, %d) holds no buffer", s, d.lo, d.hi)
			require.Len(t, d.lay.data(h), d.lay.bufCap)
		} else {
			require.True(t, h.IsNil(), "slot %d outside [%d, %d) holds a buffer", s, d.lo, d.hi)
		}
	}
}
