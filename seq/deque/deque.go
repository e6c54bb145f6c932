package deque

import (
	"fmt"

	"github.com/joshuapare/segdeque/seq"
	"github.com/joshuapare/segdeque/seq/alloc"
)

// Deque is a double-ended queue with random access, stored as a table of
// fixed-size buffers.
//
// Pushing at either end is O(1) amortized and never moves existing elements:
// when a buffer fills, a new one is linked into the neighbouring index slot.
// Indexing is O(1) through two levels of indirection.
//
// A Deque must be created with New, NewFilled, NewFrom or FromSlice and
// released with Close. The zero Deque is not usable.
type Deque[T any] struct {
	lay *layout[T]

	// head is the first element, tail is one past the last. tail always
	// addresses a slot of an allocated buffer.
	head, tail Cursor[T]

	// lo and hi bound the index slots that hold buffers. Buffers in
	// [lo, head.slot) and (tail.slot, hi) are reserved but hold no elements.
	lo, hi int

	index alloc.Allocator[Handle]
}

// New creates an empty Deque.
func New[T any](opts *Options[T]) (*Deque[T], error) {
	return initialize(0, opts)
}

// NewFilled creates a Deque holding n copies of fill.
func NewFilled[T any](n int, fill T, opts *Options[T]) (*Deque[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("deque: %w: %d", alloc.ErrBadCount, n)
	}
	d, err := initialize(n, opts)
	if err != nil {
		return nil, err
	}
	lc := d.lay.lc
	d.forSegments(0, n, func(seg []T) { lc.Fill(seg, fill) })
	return d, nil
}

// NewFrom creates a Deque holding copies of the elements of src. Elements
// implementing seq.Cloner are cloned, so the two deques share nothing.
func NewFrom[T any](src *Deque[T], opts *Options[T]) (*Deque[T], error) {
	src.checkOpen("deque.NewFrom")
	n := src.Len()
	d, err := initialize(n, opts)
	if err != nil {
		return nil, err
	}

	lc := d.lay.lc
	i := 0
	src.forSegments(0, n, func(seg []T) {
		for _, v := range seg {
			lc.ConstructCopy(d.ref(i), v)
			i++
		}
	})
	return d, nil
}

// FromSlice creates a Deque holding copies of the elements of s.
func FromSlice[T any](s []T, opts *Options[T]) (*Deque[T], error) {
	d, err := initialize(len(s), opts)
	if err != nil {
		return nil, err
	}
	lc := d.lay.lc
	rest := s
	d.forSegments(0, len(s), func(seg []T) {
		rest = rest[lc.CopyInto(seg, rest):]
	})
	return d, nil
}

// initialize builds the index and the buffers for n elements without
// constructing any element. Either everything is allocated or nothing is.
func initialize[T any](n int, opts *Options[T]) (*Deque[T], error) {
	bc := BufferCapacity[T]()
	needed := n/bc + 1
	capacity := max(MinIndexCapacity, needed+2)

	d := &Deque[T]{
		lay: &layout[T]{
			bufCap: bc,
			elems:  opts.elements(),
			lc:     alloc.LifecycleFor[T](),
		},
		index: opts.index(),
	}

	slots, err := d.index.Allocate(capacity)
	if err != nil {
		return nil, fmt.Errorf("deque: allocate index of %d slots: %w", capacity, err)
	}
	clear(slots)
	d.lay.slots = slots

	d.lo = (capacity - needed) / 2
	d.hi = d.lo + needed
	if err := d.linkBuffers(d.lo, d.hi); err != nil {
		d.index.Deallocate(slots, capacity)
		d.lay.slots = nil
		return nil, err
	}

	d.head = d.cursorAt(d.lo, 0)
	d.tail = d.cursorAt(d.hi-1, n%bc)
	return d, nil
}

// Close destroys every element and releases all buffers and the index.
// Any further use of d or of its cursors is a contract violation.
func (d *Deque[T]) Close() {
	if d == nil || d.lay == nil || d.lay.closed {
		return
	}
	d.destroyAll()
	d.unlinkBuffers(d.lo, d.hi)
	d.index.Deallocate(d.lay.slots, len(d.lay.slots))
	d.lay.slots = nil
	d.lay.closed = true
	d.lay.epoch++
	d.lo, d.hi = 0, 0
}

// Swap exchanges the contents of d and other in O(1). Cursors follow the
// elements they point at into the other deque.
func (d *Deque[T]) Swap(other *Deque[T]) {
	*d, *other = *other, *d
}

// checkOpen panics if d is nil, zero or closed.
func (d *Deque[T]) checkOpen(op string) {
	if d == nil || d.lay == nil {
		seq.Violate(op, seq.ErrClosed, "deque was not created with a constructor")
	}
	if d.lay.closed {
		seq.Violate(op, seq.ErrClosed, "")
	}
}

// own panics unless c is a usable cursor of d.
func (d *Deque[T]) own(op string, c Cursor[T]) {
	if c.lay != d.lay {
		seq.Violate(op, seq.ErrForeignCursor, "")
	}
	c.check(op)
}

// ============================================================================
// Size and element access
// ============================================================================

// Len returns the number of elements. It is 0 for a nil or closed Deque.
func (d *Deque[T]) Len() int {
	if d == nil || d.lay == nil || d.lay.closed {
		return 0
	}
	return d.tail.distance(d.head)
}

// Empty reports whether d holds no elements.
func (d *Deque[T]) Empty() bool { return d.Len() == 0 }

// Begin returns a cursor at the first element.
func (d *Deque[T]) Begin() Cursor[T] {
	d.checkOpen("deque.Begin")
	return d.head
}

// End returns a cursor one past the last element.
func (d *Deque[T]) End() Cursor[T] {
	d.checkOpen("deque.End")
	return d.tail
}

// At returns the i-th element. It panics if i is out of range.
func (d *Deque[T]) At(i int) T {
	d.checkOpen("deque.At")
	seq.CheckIndex("deque.At", i, d.Len())
	return *d.ref(i)
}

// Set destroys the i-th element and puts v in its place.
func (d *Deque[T]) Set(i int, v T) {
	d.checkOpen("deque.Set")
	seq.CheckIndex("deque.Set", i, d.Len())
	p := d.ref(i)
	d.lay.lc.Destroy(p)
	d.lay.lc.Construct(p, v)
}

// Front returns the first element. It panics on an empty Deque.
func (d *Deque[T]) Front() T {
	d.checkOpen("deque.Front")
	if d.Empty() {
		seq.Violate("deque.Front", seq.ErrEmpty, "")
	}
	return *d.ref(0)
}

// Back returns the last element. It panics on an empty Deque.
func (d *Deque[T]) Back() T {
	d.checkOpen("deque.Back")
	if d.Empty() {
		seq.Violate("deque.Back", seq.ErrEmpty, "")
	}
	return *d.ref(d.Len() - 1)
}

// BufferCount returns the number of buffers currently allocated, including
// reserved ones.
func (d *Deque[T]) BufferCount() int { return d.hi - d.lo }

// IndexCapacity returns the number of slots in the index.
func (d *Deque[T]) IndexCapacity() int {
	if d.lay == nil {
		return 0
	}
	return len(d.lay.slots)
}

// ============================================================================
// Internal addressing
// ============================================================================

// buffer returns the storage linked into slot s.
func (d *Deque[T]) buffer(s int) []T {
	return d.lay.data(d.lay.slots[s])
}

// ref returns the address of the element at logical position i (0 = head).
// i may equal Len() to address the tail slot.
func (d *Deque[T]) ref(i int) *T {
	local := d.head.off + i
	bc := d.lay.bufCap
	return &d.buffer(d.head.slot + local/bc)[local%bc]
}

// forSegments calls fn with each run of positions [i, j) that lies inside a
// single buffer, front to back.
func (d *Deque[T]) forSegments(i, j int, fn func(seg []T)) {
	bc := d.lay.bufCap
	for i < j {
		local := d.head.off + i
		seg := d.buffer(d.head.slot + local/bc)[local%bc:]
		if len(seg) > j-i {
			seg = seg[:j-i]
		}
		fn(seg)
		i += len(seg)
	}
}

// destroyAll destroys every live element without touching buffers.
func (d *Deque[T]) destroyAll() {
	lc := d.lay.lc
	d.forSegments(0, d.Len(), lc.DestroyRange)
}

// Compile-time interface check
var _ seq.BackSequence[int] = (*Deque[int])(nil)
