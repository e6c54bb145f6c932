package deque

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/segdeque/internal/testutil"
	"github.com/joshuapare/segdeque/seq/alloc"
)

// Test_PushPop_RoundTrip tests that a push followed by a pop on the same end
// restores the deque.
func Test_PushPop_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 3, 4, 7, 8} {
		d := newWide(t, n, nil)
		before := values(d)

		require.NoError(t, d.PushBack(testutil.W(100)))
		require.Equal(t, int64(100), d.PopBack().V)
		require.Equal(t, before, values(d))

		require.NoError(t, d.PushFront(testutil.W(-100)))
		require.Equal(t, int64(-100), d.PopFront().V)
		require.Equal(t, before, values(d))
		checkLayout(t, d)
	}
}

// Test_Push_Alternating tests interleaved pushes on both ends.
func Test_Push_Alternating(t *testing.T) {
	d := newWide(t, 0, nil)
	for i := range 10 {
		if i%2 == 0 {
			require.NoError(t, d.PushBack(testutil.W(i)))
		} else {
			require.NoError(t, d.PushFront(testutil.W(i)))
		}
		checkLayout(t, d)
	}
	require.Equal(t, []int{9, 7, 5, 3, 1, 0, 2, 4, 6, 8}, values(d))
}

// Test_Push_Many tests ordering across thousands of buffer crossings and
// repeated index growth on both sides.
func Test_Push_Many(t *testing.T) {
	opts, elems, index := counted[testutil.Wide]()
	d := newWide(t, 0, opts)

	for i := range 10000 {
		require.NoError(t, d.PushBack(testutil.W(i)))
	}
	require.Equal(t, 10000, d.Len())
	require.Equal(t, 2501, d.BufferCount())
	for i := range 10000 {
		require.Equal(t, int64(i), d.At(i).V)
	}
	checkLayout(t, d)

	for i := range 5000 {
		require.NoError(t, d.PushFront(testutil.W(-1 - i)))
	}
	require.Equal(t, 15000, d.Len())
	require.Equal(t, int64(-5000), d.Front().V)
	require.Equal(t, int64(9999), d.Back().V)
	require.Greater(t, index.Stats().Allocs, 5)
	checkLayout(t, d)

	i := -5000
	for v := range d.Values() {
		require.Equal(t, int64(i), v.V)
		i++
	}

	for range 15000 {
		d.PopFront()
	}
	require.True(t, d.Empty())
	require.Equal(t, 1, elems.Stats().LiveBlocks)
	checkLayout(t, d)
}

// Test_Push_Rollback tests that a push that cannot get a buffer leaves the
// deque exactly as it was.
func Test_Push_Rollback(t *testing.T) {
	budget := alloc.NewBudget[testutil.Wide](alloc.NewHeap[testutil.Wide](), 8)
	d := newWide(t, 7, &Options[testutil.Wide]{Elements: budget})
	c := d.Begin().Add(6)

	err := d.PushBack(testutil.W(7))
	require.ErrorIs(t, err, alloc.ErrNoSpace)
	require.Equal(t, testutil.Seq(0, 7), values(d))
	require.Equal(t, 2, d.BufferCount())
	require.True(t, c.Valid())

	err = d.PushFront(testutil.W(-1))
	require.ErrorIs(t, err, alloc.ErrNoSpace)
	require.Equal(t, testutil.Seq(0, 7), values(d))
	checkLayout(t, d)

	// Freeing a buffer makes room again.
	for range 4 {
		d.PopFront()
	}
	require.NoError(t, d.PushBack(testutil.W(7)))
	require.Equal(t, []int{4, 5, 6, 7}, values(d))
}

// Test_PushWith tests factory construction and its failure path.
func Test_PushWith(t *testing.T) {
	opts, elems, _ := counted[testutil.Wide]()
	d := newWide(t, 3, opts)

	// Both ends sit on a buffer boundary, so each failure must also give
	// back the buffer linked for it.
	elems.Reset()
	live := elems.Stats().LiveBlocks

	err := d.PushBackWith(testutil.FailingFactory[testutil.Wide]())
	require.ErrorIs(t, err, testutil.ErrFactory)
	err = d.PushFrontWith(testutil.FailingFactory[testutil.Wide]())
	require.ErrorIs(t, err, testutil.ErrFactory)

	require.Equal(t, live, elems.Stats().LiveBlocks)
	require.Equal(t, 2, elems.Stats().Allocs)
	require.Equal(t, 2, elems.Stats().Frees)
	require.Equal(t, []int{0, 1, 2}, values(d))
	checkLayout(t, d)

	require.NoError(t, d.PushBackWith(testutil.Factory(testutil.W(3))))
	require.NoError(t, d.PushFrontWith(testutil.Factory(testutil.W(-1))))
	require.Equal(t, []int{-1, 0, 1, 2, 3}, values(d))

	// Fast-path failures touch nothing either.
	err = d.PushBackWith(testutil.FailingFactory[testutil.Wide]())
	require.ErrorIs(t, err, testutil.ErrFactory)
	err = d.PushFrontWith(testutil.FailingFactory[testutil.Wide]())
	require.ErrorIs(t, err, testutil.ErrFactory)
	require.Equal(t, []int{-1, 0, 1, 2, 3}, values(d))
}

// Test_Pop_ReturnsOwnership tests that popped elements are handed to the
// caller rather than destroyed.
func Test_Pop_ReturnsOwnership(t *testing.T) {
	var reg testutil.Registry
	d, err := New[testutil.Tracked](nil)
	require.NoError(t, err)

	for i := range 6 {
		require.NoError(t, d.PushBack(reg.New(i)))
	}
	require.Equal(t, 0, d.PopFront().ID)
	require.Equal(t, 5, d.PopBack().ID)
	require.Zero(t, reg.Destroyed)

	d.Close()
	require.Equal(t, 4, reg.Destroyed)
}

// Test_Pop_ReleasesBuffers tests that popping frees vacated buffers down to
// the resting one.
func Test_Pop_ReleasesBuffers(t *testing.T) {
	opts, elems, _ := counted[testutil.Wide]()
	d := newWide(t, 17, opts)
	require.Equal(t, 5, elems.Stats().LiveBlocks)

	for range 9 {
		d.PopBack()
	}
	require.Equal(t, 3, elems.Stats().LiveBlocks)
	require.Equal(t, 3, d.BufferCount())

	for range 8 {
		d.PopFront()
	}
	require.Equal(t, 1, elems.Stats().LiveBlocks)
	require.True(t, d.Empty())
	checkLayout(t, d)
}

// Test_Reserve tests that reserved capacity absorbs later pushes.
func Test_Reserve(t *testing.T) {
	opts, elems, _ := counted[testutil.Wide]()
	d := newWide(t, 0, opts)

	require.NoError(t, d.ReserveBack(10))
	require.Equal(t, 3, d.BufferCount())
	require.NoError(t, d.ReserveFront(10))
	require.Equal(t, 6, d.BufferCount())
	checkLayout(t, d)

	elems.Reset()
	for i := range 10 {
		require.NoError(t, d.PushBack(testutil.W(i)))
		require.NoError(t, d.PushFront(testutil.W(-1 - i)))
	}
	require.Zero(t, elems.Stats().Allocs)
	require.Equal(t, 20, d.Len())
	checkLayout(t, d)

	// Reserving what is already there allocates nothing.
	require.NoError(t, d.ReserveBack(1))
	require.NoError(t, d.ReserveFront(2))
	require.NoError(t, d.ReserveBack(0))
	require.Zero(t, elems.Stats().Allocs)
}

// Test_Reserve_AllOrNothing tests that a reservation that cannot be met
// links no buffer at all.
func Test_Reserve_AllOrNothing(t *testing.T) {
	budget := alloc.NewBudget[testutil.Wide](alloc.NewHeap[testutil.Wide](), 12)
	d := newWide(t, 1, &Options[testutil.Wide]{Elements: budget})

	err := d.ReserveBack(20)
	require.ErrorIs(t, err, alloc.ErrNoSpace)
	require.Equal(t, 1, d.BufferCount())
	require.Equal(t, 4, budget.Used())

	err = d.ReserveFront(20)
	require.ErrorIs(t, err, alloc.ErrNoSpace)
	require.Equal(t, 1, d.BufferCount())
	require.Equal(t, 4, budget.Used())
	checkLayout(t, d)
}

// Test_ShrinkToFit tests that reserved buffers are released.
func Test_ShrinkToFit(t *testing.T) {
	opts, elems, _ := counted[testutil.Wide]()
	d := newWide(t, 5, opts)

	require.NoError(t, d.ReserveBack(8))
	require.NoError(t, d.ReserveFront(8))
	require.Equal(t, 6, d.BufferCount())

	d.ShrinkToFit()
	require.Equal(t, 2, d.BufferCount())
	require.Equal(t, 2, elems.Stats().LiveBlocks)
	require.Equal(t, testutil.Seq(0, 5), values(d))
	checkLayout(t, d)
}

// Test_Push_SingleSlotBuffers tests element types too large to share a buffer.
func Test_Push_SingleSlotBuffers(t *testing.T) {
	type big struct {
		v int
		_ [600]byte
	}
	require.Equal(t, 1, BufferCapacity[big]())

	d, err := New[big](nil)
	require.NoError(t, err)
	defer d.Close()

	for i := range 20 {
		require.NoError(t, d.PushBack(big{v: i}))
		require.NoError(t, d.PushFront(big{v: -1 - i}))
	}
	require.Equal(t, 40, d.Len())
	require.Equal(t, 41, d.BufferCount())
	for i := range 40 {
		require.Equal(t, i-20, d.At(i).v)
	}
	checkLayout(t, d)

	for range 40 {
		d.PopBack()
	}
	require.Equal(t, 1, d.BufferCount())
	checkLayout(t, d)
}

// Test_Push_MappedBuffers tests a deque whose buffers live outside the Go heap.
func Test_Push_MappedBuffers(t *testing.T) {
	mapped, err := alloc.NewMapped[int64]()
	if err != nil {
		t.Skipf("mapped allocator unavailable: %v", err)
	}
	d, err := New(&Options[int64]{Elements: mapped})
	require.NoError(t, err)

	for i := range 1000 {
		require.NoError(t, d.PushBack(int64(i)))
		require.NoError(t, d.PushFront(int64(-1-i)))
	}
	require.Equal(t, 2000, d.Len())
	require.Equal(t, int64(-1000), d.Front())
	require.Equal(t, int64(999), d.Back())
	require.Equal(t, d.BufferCount(), mapped.Regions())

	d.EraseRange(d.Begin().Add(10), d.End().Sub(10))
	require.Equal(t, 20, d.Len())
	require.Equal(t, d.BufferCount(), mapped.Regions())

	d.Close()
	require.Zero(t, mapped.Regions())
}
