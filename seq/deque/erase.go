package deque

import (
	"fmt"

	"github.com/joshuapare/segdeque/internal/buf"
	"github.com/joshuapare/segdeque/seq"
	"github.com/joshuapare/segdeque/seq/alloc"
)

// Erase removes the element at pos and returns a cursor to the element that
// followed it. pos must be a dereferenceable cursor of d.
func (d *Deque[T]) Erase(pos Cursor[T]) Cursor[T] {
	d.checkOpen("deque.Erase")
	d.own("deque.Erase", pos)
	i := pos.distance(d.head)
	seq.CheckIndex("deque.Erase", i, d.Len())
	return d.eraseAt(i, 1)
}

// EraseRange removes [first, last) and returns a cursor to the element that
// followed the range.
//
// Only the shorter side of the deque moves: elements before first shift
// back toward the tail, or elements after last shift forward toward the
// head. Buffers emptied by the shift are released.
func (d *Deque[T]) EraseRange(first, last Cursor[T]) Cursor[T] {
	d.checkOpen("deque.EraseRange")
	d.own("deque.EraseRange", first)
	d.own("deque.EraseRange", last)

	i, j := first.distance(d.head), last.distance(d.head)
	if err := buf.CheckRange(d.Len(), i, j); err != nil {
		seq.Violate("deque.EraseRange", seq.ErrOutOfRange, "%v", err)
	}
	return d.eraseAt(i, j-i)
}

// eraseAt removes n elements starting at position i.
func (d *Deque[T]) eraseAt(i, n int) Cursor[T] {
	size := d.Len()
	if n == 0 {
		return d.head.add(i)
	}
	if n == size {
		d.Clear()
		return d.tail
	}

	lc := d.lay.lc
	d.forSegments(i, i+n, lc.DestroyRange)

	if i < (size-n)/2 {
		for k := i - 1; k >= 0; k-- {
			*d.ref(k + n) = *d.ref(k)
		}
		d.forSegments(0, n, lc.Vacate)

		old := d.head.slot
		d.head = d.head.add(n)
		for s := old; s < d.head.slot; s++ {
			d.releaseFront(s)
		}
	} else {
		for k := i + n; k < size; k++ {
			*d.ref(k - n) = *d.ref(k)
		}
		d.forSegments(size-n, size, lc.Vacate)

		old := d.tail.slot
		d.tail = d.head.add(size - n)
		for s := old; s > d.tail.slot; s-- {
			d.releaseBack(s)
		}
	}
	return d.head.add(i)
}

// Clear destroys every element and releases every buffer except one, which
// is kept as the resting buffer. The head is parked mid-buffer so that the
// next push on either side needs no allocation.
func (d *Deque[T]) Clear() {
	d.checkOpen("deque.Clear")
	d.destroyAll()

	keep := d.head.slot
	d.unlinkBuffers(keep+1, d.hi)
	d.unlinkBuffers(d.lo, keep)
	d.lo, d.hi = keep, keep+1

	d.head.off = (d.lay.bufCap - 1) / 2
	d.tail = d.head
}

// Insert places v before pos and returns a cursor to it.
//
// Inserting at either end is a push. Elsewhere the end nearer to pos is
// extended by one slot and the elements between that end and pos shift over
// by one. Only the extension can fail; on failure d is unchanged.
func (d *Deque[T]) Insert(pos Cursor[T], v T) (Cursor[T], error) {
	d.checkOpen("deque.Insert")
	d.own("deque.Insert", pos)

	size := d.Len()
	i := pos.distance(d.head)
	if i < 0 || i > size {
		seq.Violate("deque.Insert", seq.ErrOutOfRange, "position %d with length %d", i, size)
	}

	switch {
	case i == 0:
		if err := d.PushFront(v); err != nil {
			return Cursor[T]{}, err
		}
	case i == size:
		if err := d.PushBack(v); err != nil {
			return Cursor[T]{}, err
		}
	case i < size/2:
		// The pushed slot aliases the old front; the shift overwrites the
		// alias so every element still has exactly one owner.
		if err := d.PushFront(*d.ref(0)); err != nil {
			return Cursor[T]{}, err
		}
		for k := 1; k < i; k++ {
			*d.ref(k) = *d.ref(k + 1)
		}
		d.lay.lc.Construct(d.ref(i), v)
	default:
		if err := d.PushBack(*d.ref(size - 1)); err != nil {
			return Cursor[T]{}, err
		}
		for k := size - 1; k > i; k-- {
			*d.ref(k) = *d.ref(k - 1)
		}
		d.lay.lc.Construct(d.ref(i), v)
	}
	return d.head.add(i), nil
}

// Resize grows d to n elements by appending copies of fill, or shrinks it
// by erasing from the back. Growth reserves every buffer first, so it either
// completes or leaves d unchanged.
func (d *Deque[T]) Resize(n int, fill T) error {
	d.checkOpen("deque.Resize")
	if n < 0 {
		return fmt.Errorf("deque: resize: %w: %d", alloc.ErrBadCount, n)
	}

	size := d.Len()
	if n <= size {
		d.eraseAt(n, size-n)
		return nil
	}

	if err := d.ReserveBack(n - size); err != nil {
		return err
	}
	lc := d.lay.lc
	for range n - size {
		if err := d.PushBack(lc.Copy(fill)); err != nil {
			return err
		}
	}
	return nil
}
