package deque

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/segdeque/internal/testutil"
	"github.com/joshuapare/segdeque/seq"
	"github.com/joshuapare/segdeque/seq/alloc"
)

// Test_Cursor_Distance tests that Distance and Add agree across buffer
// boundaries in both directions.
func Test_Cursor_Distance(t *testing.T) {
	d := newWide(t, 20, nil)
	b := d.Begin()

	for i := 0; i <= 20; i++ {
		for j := 0; j <= 20; j++ {
			ci, cj := b.Add(i), b.Add(j)
			require.Equal(t, j-i, cj.Distance(ci), "Distance(b+%d, b+%d)", j, i)
			require.Equal(t, i-j, ci.Distance(cj))
			require.True(t, ci.Add(j-i).Equal(cj), "b+%d+%d != b+%d", i, j-i, j)
		}
	}
}

// Test_Cursor_NegativeOffsets tests floor division when moving backward
// across buffers.
func Test_Cursor_NegativeOffsets(t *testing.T) {
	d := newWide(t, 20, nil)
	end := d.End()

	tests := []struct {
		name string
		c    Cursor[testutil.Wide]
		want int
	}{
		{"end-1", end.Add(-1), 19},
		{"end-4", end.Sub(4), 16},
		{"end-5", end.Add(-5), 15},
		{"end-8", end.Sub(8), 12},
		{"end-20", end.Add(-20), 0},
		{"begin+7-6", d.Begin().Add(7).Add(-6), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.c.Distance(d.Begin()))
			require.Equal(t, int64(tc.want), tc.c.Value().V)
		})
	}
}

// Test_Cursor_Walk tests Next and Prev over the whole deque.
func Test_Cursor_Walk(t *testing.T) {
	d := newWide(t, 13, nil)

	var fwd []int
	for c := d.Begin(); !c.Equal(d.End()); c = c.Next() {
		fwd = append(fwd, int(c.Value().V))
	}
	require.Equal(t, testutil.Seq(0, 13), fwd)

	var back []int
	for c := d.End(); !c.Equal(d.Begin()); {
		c = c.Prev()
		back = append(back, int(c.Value().V))
	}
	require.Len(t, back, 13)
	require.Equal(t, 12, back[0])
	require.Equal(t, 0, back[12])

	// Pre-increment semantics: the receiver is untouched.
	c := d.Begin()
	n := c.Next()
	require.Equal(t, 0, c.Distance(d.Begin()))
	require.Equal(t, 1, n.Distance(d.Begin()))
}

// Test_Cursor_Compare tests the ordering helpers.
func Test_Cursor_Compare(t *testing.T) {
	d := newWide(t, 10, nil)
	a, b := d.Begin().Add(3), d.Begin().Add(6)

	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(b.Sub(3)))
	require.True(t, a.Less(b))
	require.True(t, a.LessEq(b))
	require.True(t, a.LessEq(a))
	require.True(t, b.Greater(a))
	require.True(t, b.GreaterEq(b))
	require.False(t, b.Less(a))
}

// Test_Cursor_Access tests reading and writing through a cursor.
func Test_Cursor_Access(t *testing.T) {
	d := newWide(t, 10, nil)
	c := d.Begin().Add(5)

	c.Ptr().V = 50
	require.Equal(t, int64(50), d.At(5).V)

	c.Set(testutil.W(55))
	require.Equal(t, int64(55), d.At(5).V)
	require.Equal(t, int64(9), c.At(4).V)
	require.Equal(t, int64(0), c.At(-5).V)
}

// Test_Cursor_SetDestroys tests that overwriting through a cursor destroys
// the previous element.
func Test_Cursor_SetDestroys(t *testing.T) {
	var reg testutil.Registry
	d, err := New[testutil.Tracked](nil)
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.PushBack(reg.New(1)))
	d.Begin().Set(reg.New(2))

	require.Equal(t, 1, reg.Destroyed)
	require.Equal(t, 2, d.Front().ID)
}

// Test_Cursor_StaleAfterRealloc tests that replacing the index invalidates
// cursors and that a failed replacement does not.
func Test_Cursor_StaleAfterRealloc(t *testing.T) {
	opts, _, index := counted[testutil.Wide]()
	d := newWide(t, 15, opts)
	require.Equal(t, 8, d.IndexCapacity())

	c := d.Begin().Add(2)
	index.FailAfter(1)

	// The 16th element needs a fifth buffer, which needs a larger index.
	err := d.PushBack(testutil.W(15))
	require.ErrorIs(t, err, alloc.ErrNoSpace)
	require.ErrorIs(t, err, alloc.ErrInjected)
	require.Equal(t, 15, d.Len())
	require.Equal(t, 8, d.IndexCapacity())
	require.True(t, c.Valid(), "a failed growth must not invalidate cursors")
	checkLayout(t, d)

	require.NoError(t, d.PushBack(testutil.W(15)))
	require.Equal(t, 18, d.IndexCapacity())
	require.False(t, c.Valid())
	testutil.RequireViolation(t, seq.ErrStaleCursor, func() { c.Value() })
	testutil.RequireViolation(t, seq.ErrStaleCursor, func() { c.Add(1) })
	require.Equal(t, testutil.Seq(0, 16), values(d))
	checkLayout(t, d)
}

// Test_Cursor_StaleAfterRecentre tests that recentring the index in place
// invalidates cursors.
func Test_Cursor_StaleAfterRecentre(t *testing.T) {
	opts, _, index := counted[testutil.Wide]()
	d := newWide(t, 15, opts)
	for range 12 {
		d.PopFront()
	}
	require.Equal(t, 1, d.BufferCount())
	index.Reset()

	c := d.Begin()
	require.NoError(t, d.PushBack(testutil.W(15)))

	require.Zero(t, index.Stats().Allocs, "recentring must reuse the index")
	require.Equal(t, 8, d.IndexCapacity())
	require.False(t, c.Valid())
	require.Equal(t, []int{12, 13, 14, 15}, values(d))
	checkLayout(t, d)
}

// Test_Cursor_StaleAfterRelease tests that releasing a buffer invalidates
// exactly the cursors pointing into it.
func Test_Cursor_StaleAfterRelease(t *testing.T) {
	d := newWide(t, 8, nil)
	inner := d.Begin().Add(3)
	outer := d.Begin().Add(4)

	d.PopBack()
	require.True(t, outer.Valid())

	for range 3 {
		d.PopBack()
	}
	require.True(t, outer.Valid(), "the tail buffer is still allocated")

	d.PopBack()
	require.False(t, outer.Valid())
	require.True(t, inner.Valid())
	require.Equal(t, int64(3), inner.Value().V)
	testutil.RequireViolation(t, seq.ErrStaleCursor, func() { outer.Value() })

	// The released buffer id is recycled under a new generation.
	require.NoError(t, d.PushBack(testutil.W(3)))
	require.NoError(t, d.PushBack(testutil.W(4)))
	require.False(t, outer.Valid())
}

// Test_Cursor_SurvivesPush tests that pushes which only link a buffer keep
// cursors usable.
func Test_Cursor_SurvivesPush(t *testing.T) {
	d := newWide(t, 4, nil)
	c := d.Begin().Add(1)

	require.NoError(t, d.PushBack(testutil.W(4)))
	require.NoError(t, d.PushFront(testutil.W(-1)))
	require.True(t, c.Valid())
	require.Equal(t, int64(1), c.Value().V)
	require.Equal(t, 2, c.Distance(d.Begin()))
}
