package deque

import (
	"fmt"

	"github.com/joshuapare/segdeque/internal/logger"
	"github.com/joshuapare/segdeque/seq"
)

// PushBack appends v.
//
// If the tail buffer has a spare slot the element is placed there and no
// cursor is invalidated. Otherwise a buffer is linked into the next slot
// (growing the index first if needed). If that allocation fails, d is left
// exactly as it was and the error wraps alloc.ErrNoSpace.
func (d *Deque[T]) PushBack(v T) error {
	d.checkOpen("deque.PushBack")
	if d.tail.off != d.lay.bufCap-1 {
		d.lay.lc.Construct(d.ref(d.Len()), v)
		d.tail.off++
		return nil
	}
	return d.pushBackSlow(v, nil)
}

// PushBackWith appends the element produced by build. If build fails the
// error is returned and d is unchanged.
func (d *Deque[T]) PushBackWith(build func() (T, error)) error {
	d.checkOpen("deque.PushBackWith")
	if d.tail.off != d.lay.bufCap-1 {
		if err := d.lay.lc.ConstructWith(d.ref(d.Len()), build); err != nil {
			return err
		}
		d.tail.off++
		return nil
	}
	var zero T
	return d.pushBackSlow(zero, build)
}

// pushBackSlow fills the last slot of the tail buffer and moves the tail to
// the next buffer, linking one first when no reserved buffer is there.
func (d *Deque[T]) pushBackSlow(v T, build func() (T, error)) error {
	fresh := d.tail.slot+1 >= d.hi
	if fresh {
		if err := d.reserveIndex(1, false); err != nil {
			return err
		}
		if err := d.linkBuffers(d.hi, d.hi+1); err != nil {
			return fmt.Errorf("deque: push back: %w", err)
		}
		d.hi++
	}

	if err := d.construct(d.ref(d.Len()), v, build); err != nil {
		if fresh {
			d.hi--
			d.unlinkBuffers(d.hi, d.hi+1)
			logger.Debug("deque push back rolled back", "err", err)
		}
		return err
	}

	d.tail.setSlot(d.tail.slot + 1)
	d.tail.off = 0
	return nil
}

// PushFront prepends v. It mirrors PushBack: the fast path needs a spare
// slot before the head in the head buffer.
func (d *Deque[T]) PushFront(v T) error {
	d.checkOpen("deque.PushFront")
	if d.head.off != 0 {
		d.lay.lc.Construct(&d.buffer(d.head.slot)[d.head.off-1], v)
		d.head.off--
		return nil
	}
	return d.pushFrontSlow(v, nil)
}

// PushFrontWith prepends the element produced by build. If build fails the
// error is returned and d is unchanged.
func (d *Deque[T]) PushFrontWith(build func() (T, error)) error {
	d.checkOpen("deque.PushFrontWith")
	if d.head.off != 0 {
		if err := d.lay.lc.ConstructWith(&d.buffer(d.head.slot)[d.head.off-1], build); err != nil {
			return err
		}
		d.head.off--
		return nil
	}
	var zero T
	return d.pushFrontSlow(zero, build)
}

func (d *Deque[T]) pushFrontSlow(v T, build func() (T, error)) error {
	fresh := d.head.slot-1 < d.lo
	if fresh {
		if err := d.reserveIndex(1, true); err != nil {
			return err
		}
		if err := d.linkBuffers(d.lo-1, d.lo); err != nil {
			return fmt.Errorf("deque: push front: %w", err)
		}
		d.lo--
	}

	prev := d.head.slot - 1
	last := d.lay.bufCap - 1
	if err := d.construct(&d.buffer(prev)[last], v, build); err != nil {
		if fresh {
			d.unlinkBuffers(d.lo, d.lo+1)
			d.lo++
			logger.Debug("deque push front rolled back", "err", err)
		}
		return err
	}

	d.head.setSlot(prev)
	d.head.off = last
	return nil
}

// construct places v, or the result of build when build is set, into p.
func (d *Deque[T]) construct(p *T, v T, build func() (T, error)) error {
	if build != nil {
		return d.lay.lc.ConstructWith(p, build)
	}
	d.lay.lc.Construct(p, v)
	return nil
}

// PopBack removes and returns the last element. It panics on an empty Deque.
// A buffer left without elements is released unless it is reserved space.
func (d *Deque[T]) PopBack() T {
	d.checkOpen("deque.PopBack")
	if d.Empty() {
		seq.Violate("deque.PopBack", seq.ErrEmpty, "")
	}

	if d.tail.off != 0 {
		d.tail.off--
		return d.take(d.ref(d.Len()))
	}

	old := d.tail.slot
	d.tail.setSlot(old - 1)
	d.tail.off = d.lay.bufCap - 1
	v := d.take(d.ref(d.Len()))
	d.releaseBack(old)
	return v
}

// PopFront removes and returns the first element. It panics on an empty Deque.
func (d *Deque[T]) PopFront() T {
	d.checkOpen("deque.PopFront")
	if d.Empty() {
		seq.Violate("deque.PopFront", seq.ErrEmpty, "")
	}

	v := d.take(d.ref(0))
	if d.head.off != d.lay.bufCap-1 {
		d.head.off++
		return v
	}

	old := d.head.slot
	d.head.setSlot(old + 1)
	d.head.off = 0
	d.releaseFront(old)
	return v
}

// take moves the element out of p and zeroes the slot. Ownership passes to
// the caller, so nothing is destroyed.
func (d *Deque[T]) take(p *T) T {
	v := *p
	var zero T
	*p = zero
	return v
}

// ReserveBack links enough buffers after the tail that the next n calls to
// PushBack allocate nothing. Either all buffers are linked or none are.
func (d *Deque[T]) ReserveBack(n int) error {
	d.checkOpen("deque.ReserveBack")
	if n <= 0 {
		return nil
	}
	bc := d.lay.bufCap
	lastSlot := d.tail.slot + (d.tail.off+n)/bc
	extra := lastSlot - (d.hi - 1)
	if extra <= 0 {
		return nil
	}

	if err := d.reserveIndex(extra, false); err != nil {
		return err
	}
	if err := d.linkBuffers(d.hi, d.hi+extra); err != nil {
		return fmt.Errorf("deque: reserve %d at back: %w", n, err)
	}
	d.hi += extra
	return nil
}

// ReserveFront links enough buffers before the head that the next n calls
// to PushFront allocate nothing. Either all buffers are linked or none are.
func (d *Deque[T]) ReserveFront(n int) error {
	d.checkOpen("deque.ReserveFront")
	if n <= d.head.off {
		return nil
	}
	bc := d.lay.bufCap
	firstSlot := d.head.slot - (n-d.head.off+bc-1)/bc
	extra := d.lo - firstSlot
	if extra <= 0 {
		return nil
	}

	if err := d.reserveIndex(extra, true); err != nil {
		return err
	}
	if err := d.linkBuffers(d.lo-extra, d.lo); err != nil {
		return fmt.Errorf("deque: reserve %d at front: %w", n, err)
	}
	d.lo -= extra
	return nil
}

// ShrinkToFit releases every reserved buffer.
func (d *Deque[T]) ShrinkToFit() {
	d.checkOpen("deque.ShrinkToFit")
	d.unlinkBuffers(d.tail.slot+1, d.hi)
	d.unlinkBuffers(d.lo, d.head.slot)
	d.lo, d.hi = d.head.slot, d.tail.slot+1
}
