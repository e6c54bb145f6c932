package deque

import "github.com/joshuapare/segdeque/seq/alloc"

// Handle names one buffer in a deque's arena. The zero Handle is the null
// handle stored in unused index slots.
//
// A handle carries the generation of the buffer it was issued for. Once the
// buffer is released the generation moves on and the handle goes stale, so
// a cursor holding it can tell instead of reading recycled storage.
type Handle struct {
	id  uint32
	gen uint32
}

// IsNil reports whether h is the null handle.
func (h Handle) IsNil() bool { return h.gen == 0 }

type block[T any] struct {
	data []T
	gen  uint32
}

// layout is the part of a deque that cursors navigate: the buffer arena and
// the index of handles. It knows nothing about which elements are live.
type layout[T any] struct {
	// slots is the index. Null handles mark slack.
	slots []Handle

	// epoch changes whenever handles move between slots or the index is
	// replaced. Cursors positioned under an older epoch are stale.
	epoch uint64

	bufCap int
	blocks []block[T]
	free   []uint32
	elems  alloc.Allocator[T]
	lc     alloc.Lifecycle[T]
	closed bool
}

// acquire allocates one buffer and returns its handle.
func (l *layout[T]) acquire() (Handle, error) {
	data, err := l.elems.Allocate(l.bufCap)
	if err != nil {
		return Handle{}, err
	}

	if n := len(l.free); n > 0 {
		id := l.free[n-1]
		l.free = l.free[:n-1]
		b := &l.blocks[id]
		b.data = data
		return Handle{id: id, gen: b.gen}, nil
	}

	l.blocks = append(l.blocks, block[T]{data: data, gen: 1})
	return Handle{id: uint32(len(l.blocks) - 1), gen: 1}, nil
}

// release hands a buffer back to the allocator. Elements must already be
// destroyed or moved out.
func (l *layout[T]) release(h Handle) {
	b := &l.blocks[h.id]
	l.elems.Deallocate(b.data, l.bufCap)
	b.data = nil
	b.gen++
	if b.gen == 0 {
		b.gen = 1
	}
	l.free = append(l.free, h.id)
}

// live reports whether h still names an allocated buffer.
func (l *layout[T]) live(h Handle) bool {
	if h.IsNil() || int(h.id) >= len(l.blocks) {
		return false
	}
	b := &l.blocks[h.id]
	return b.gen == h.gen && b.data != nil
}

// data returns the storage behind h without checking it.
func (l *layout[T]) data(h Handle) []T {
	return l.blocks[h.id].data
}

// handleAt returns the handle in slot s, or the null handle when s lies
// outside the index.
func (l *layout[T]) handleAt(s int) Handle {
	if s < 0 || s >= len(l.slots) {
		return Handle{}
	}
	return l.slots[s]
}
