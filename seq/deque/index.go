package deque

import (
	"fmt"

	"github.com/joshuapare/segdeque/internal/logger"
)

// reserveIndex makes sure n more buffers can be linked on one side of the
// allocated range while still leaving one null slot of slack on that side.
func (d *Deque[T]) reserveIndex(n int, atFront bool) error {
	if atFront {
		if d.lo >= n+1 {
			return nil
		}
	} else if len(d.lay.slots)-d.hi >= n+1 {
		return nil
	}
	return d.growIndex(n, atFront)
}

// growIndex makes room for n more slots on one side of [lo, hi).
//
// If the index is more than twice the size the allocated range will need,
// the handles are recentred inside the same table. Otherwise a larger table
// is allocated, the handles are copied to its centre, and the old table is
// released. Buffers never move; only their handles do. Either way the
// layout epoch advances, which invalidates every outstanding cursor.
func (d *Deque[T]) growIndex(n int, atFront bool) error {
	slots := d.lay.slots
	oldCap := len(slots)
	used := d.hi - d.lo
	newUsed := used + n

	var newLo int
	if oldCap > 2*newUsed {
		newLo = (oldCap - newUsed) / 2
		if atFront {
			newLo += n
		}
		copy(slots[newLo:newLo+used], slots[d.lo:d.hi])
		clear(slots[:newLo])
		clear(slots[newLo+used:])

		logger.Debug("deque index recentred",
			"capacity", oldCap, "used", used, "from", d.lo, "to", newLo)
	} else {
		newCap := oldCap + max(oldCap, n) + 2
		grown, err := d.index.Allocate(newCap)
		if err != nil {
			logger.Debug("deque index growth failed", "capacity", oldCap, "requested", newCap, "err", err)
			return fmt.Errorf("deque: grow index to %d slots: %w", newCap, err)
		}
		clear(grown)

		newLo = (newCap - newUsed) / 2
		if atFront {
			newLo += n
		}
		copy(grown[newLo:], slots[d.lo:d.hi])
		clear(slots)
		d.index.Deallocate(slots, oldCap)
		d.lay.slots = grown

		logger.Debug("deque index reallocated",
			"old_capacity", oldCap, "new_capacity", newCap, "used", used)
	}

	shift := newLo - d.lo
	d.lo += shift
	d.hi += shift
	d.lay.epoch++
	d.head = d.reseat(d.head, shift)
	d.tail = d.reseat(d.tail, shift)
	return nil
}

// reseat moves an owned cursor by shift slots into the current epoch.
func (d *Deque[T]) reseat(c Cursor[T], shift int) Cursor[T] {
	c.slot += shift
	c.epoch = d.lay.epoch
	return c
}

// cursorAt builds a cursor at slot s, offset off under the current epoch.
func (d *Deque[T]) cursorAt(s, off int) Cursor[T] {
	c := Cursor[T]{lay: d.lay, epoch: d.lay.epoch, off: off}
	c.setSlot(s)
	return c
}

// linkBuffers allocates buffers into every slot of [from, to). On failure
// the buffers allocated so far are released and the slots nulled again.
func (d *Deque[T]) linkBuffers(from, to int) (err error) {
	s := from
	defer func() {
		if err != nil {
			d.unlinkBuffers(from, s)
		}
	}()

	for ; s < to; s++ {
		h, aerr := d.lay.acquire()
		if aerr != nil {
			return fmt.Errorf("deque: allocate buffer for slot %d: %w", s, aerr)
		}
		d.lay.slots[s] = h
	}
	return nil
}

// unlinkBuffers releases the buffers in [from, to) and nulls their slots.
func (d *Deque[T]) unlinkBuffers(from, to int) {
	for s := to - 1; s >= from; s-- {
		d.lay.release(d.lay.slots[s])
		d.lay.slots[s] = Handle{}
	}
}

// releaseFront is called when slot s, the old head slot, no longer holds
// live elements. It is freed when nothing is reserved in front of it.
func (d *Deque[T]) releaseFront(s int) {
	if s != d.lo {
		return
	}
	d.unlinkBuffers(s, s+1)
	d.lo++
}

// releaseBack is the mirror of releaseFront for the old tail slot.
func (d *Deque[T]) releaseBack(s int) {
	if s != d.hi-1 {
		return
	}
	d.unlinkBuffers(s, s+1)
	d.hi--
}
