package deque

import "github.com/joshuapare/segdeque/seq"

// Cursor is a random-access position in a Deque.
//
// A Cursor is a small value: copying it is how you keep the "before" position
// of a post-increment. Every moving method returns the moved cursor and leaves
// the receiver alone:
//
//	for c := d.Begin(); !c.Equal(d.End()); c = c.Next() {
//	    fmt.Println(c.Value())
//	}
//
// Cursors own nothing. A cursor goes stale when the deque's index is
// recentred or replaced, or when the buffer it points into is released.
// Using a stale cursor panics with seq.ErrStaleCursor.
type Cursor[T any] struct {
	lay   *layout[T]
	epoch uint64
	slot  int
	h     Handle
	off   int
}

// check panics unless c belongs to a live layout and was positioned under
// its current epoch.
func (c Cursor[T]) check(op string) {
	switch {
	case c.lay == nil:
		seq.Violate(op, seq.ErrStaleCursor, "zero cursor")
	case c.lay.closed:
		seq.Violate(op, seq.ErrClosed, "")
	case c.epoch != c.lay.epoch:
		seq.Violate(op, seq.ErrStaleCursor, "index layout changed (epoch %d, now %d)", c.epoch, c.lay.epoch)
	case !c.h.IsNil() && !c.lay.live(c.h):
		seq.Violate(op, seq.ErrStaleCursor, "buffer in slot %d was released", c.slot)
	}
}

// checkPair panics unless both cursors are usable and share a layout.
func (c Cursor[T]) checkPair(op string, o Cursor[T]) {
	c.check(op)
	o.check(op)
	if c.lay != o.lay {
		seq.Violate(op, seq.ErrForeignCursor, "")
	}
}

// setSlot moves c to slot s and picks up the handle stored there.
func (c *Cursor[T]) setSlot(s int) {
	c.slot = s
	c.h = c.lay.handleAt(s)
}

// add is Add without validation.
func (c Cursor[T]) add(n int) Cursor[T] {
	bc := c.lay.bufCap
	local := n + c.off
	if local >= 0 && local < bc {
		c.off = local
		return c
	}

	var delta int
	if local >= 0 {
		delta = local / bc
	} else {
		delta = -((-local - 1) / bc) - 1
	}
	c.setSlot(c.slot + delta)
	c.off = local - delta*bc
	return c
}

// distance is Distance without validation.
func (c Cursor[T]) distance(o Cursor[T]) int {
	return (c.slot-o.slot)*c.lay.bufCap + c.off - o.off
}

// Next returns the position after c.
func (c Cursor[T]) Next() Cursor[T] {
	c.check("deque.Cursor.Next")
	if c.off == c.lay.bufCap-1 {
		c.setSlot(c.slot + 1)
		c.off = 0
		return c
	}
	c.off++
	return c
}

// Prev returns the position before c.
func (c Cursor[T]) Prev() Cursor[T] {
	c.check("deque.Cursor.Prev")
	if c.off == 0 {
		c.setSlot(c.slot - 1)
		c.off = c.lay.bufCap - 1
		return c
	}
	c.off--
	return c
}

// Add returns the position n elements after c (before c when n < 0).
// Crossing buffers uses floor division, so negative offsets land on the
// correct earlier buffer.
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.check("deque.Cursor.Add")
	return c.add(n)
}

// Sub returns the position n elements before c.
func (c Cursor[T]) Sub(n int) Cursor[T] {
	c.check("deque.Cursor.Sub")
	return c.add(-n)
}

// Distance returns c - o, the number of steps from o to c.
func (c Cursor[T]) Distance(o Cursor[T]) int {
	c.checkPair("deque.Cursor.Distance", o)
	return c.distance(o)
}

// Compare returns -1, 0 or +1 ordering c against o (buffer slot first,
// then offset within the buffer).
func (c Cursor[T]) Compare(o Cursor[T]) int {
	c.checkPair("deque.Cursor.Compare", o)
	switch {
	case c.slot < o.slot:
		return -1
	case c.slot > o.slot:
		return 1
	case c.off < o.off:
		return -1
	case c.off > o.off:
		return 1
	}
	return 0
}

// Equal reports whether c and o are the same position.
func (c Cursor[T]) Equal(o Cursor[T]) bool { return c.Compare(o) == 0 }

// Less reports whether c comes before o.
func (c Cursor[T]) Less(o Cursor[T]) bool { return c.Compare(o) < 0 }

// LessEq reports whether c does not come after o.
func (c Cursor[T]) LessEq(o Cursor[T]) bool { return c.Compare(o) <= 0 }

// Greater reports whether c comes after o.
func (c Cursor[T]) Greater(o Cursor[T]) bool { return c.Compare(o) > 0 }

// GreaterEq reports whether c does not come before o.
func (c Cursor[T]) GreaterEq(o Cursor[T]) bool { return c.Compare(o) >= 0 }

// Valid reports whether c can still be used.
func (c Cursor[T]) Valid() bool {
	if c.lay == nil || c.lay.closed || c.epoch != c.lay.epoch {
		return false
	}
	return c.h.IsNil() || c.lay.live(c.h)
}

// Ptr returns the address of the element at c. The pointer is valid until
// the buffer is released or the element is moved by an erase or insert.
func (c Cursor[T]) Ptr() *T {
	c.check("deque.Cursor.Ptr")
	if c.h.IsNil() {
		seq.Violate("deque.Cursor.Ptr", seq.ErrOutOfRange, "slot %d holds no buffer", c.slot)
	}
	return &c.lay.data(c.h)[c.off]
}

// Value returns the element at c.
func (c Cursor[T]) Value() T { return *c.Ptr() }

// Set destroys the element at c and puts v in its place.
func (c Cursor[T]) Set(v T) {
	p := c.Ptr()
	c.lay.lc.Destroy(p)
	c.lay.lc.Construct(p, v)
}

// At returns the element n positions after c.
func (c Cursor[T]) At(n int) T { return c.Add(n).Value() }
