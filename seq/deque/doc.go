// Package deque implements a double-ended queue stored in fixed-size
// buffers reached through a growable index.
//
// # Layout
//
// Elements live in buffers of BufferCapacity[T]() slots, BufferBytes bytes
// each (at least one slot). The index is a table of buffer handles; the live
// elements run from the head cursor to the tail cursor through consecutive
// index slots:
//
//	index:  [ nil | nil | b7 | b2 | b5 | nil | nil | nil ]
//	                       ^head          ^tail
//
// Pushing at either end touches only the buffer at that end. When that buffer
// is full a new one is linked into the neighbouring slot, and when the index
// runs out of slack it is recentred or replaced. Buffers never move, so
// growth costs O(buffers), not O(elements).
//
// # Cursors
//
// Cursor is a random-access position. Arithmetic crosses buffer boundaries
// transparently:
//
//	c := d.Begin().Add(10)
//	n := d.End().Distance(c) // elements from c to the end
//
// A cursor is invalidated when the index changes (recentring or reallocation
// during a push or reservation) or when the buffer it points into is
// released (pop, erase, clear). Any use of an invalidated cursor panics with
// seq.ErrStaleCursor rather than reading unrelated memory.
//
// # Failure
//
// Operations that allocate return an error wrapping alloc.ErrNoSpace and leave
// the deque unchanged. Misuse (popping an empty deque, erasing past the end,
// mixing cursors of two deques) panics with *seq.ContractViolation.
//
// # Allocation
//
// Buffers and the index are taken from the allocators in Options, defaulting
// to the Go heap. Wrapping them in alloc.Counting or alloc.Budget makes the
// allocation pattern observable:
//
//	elems := alloc.NewCounting[int](nil)
//	d, err := deque.New(&deque.Options[int]{Elements: elems})
//	...
//	fmt.Println(elems.Stats())
package deque
