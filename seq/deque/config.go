package deque

import "github.com/joshuapare/segdeque/seq/alloc"

// ============================================================================
// Build-time configuration
// ============================================================================

const (
	// BufferBytes is the byte budget of one buffer. A buffer holds
	// BufferBytes / sizeof(T) elements, and never fewer than one.
	BufferBytes = 512

	// MinIndexCapacity is the smallest number of slots the index is created with.
	MinIndexCapacity = 8
)

// BufferCapacity returns the number of elements one buffer holds for T.
// Zero-sized types count as one byte.
func BufferCapacity[T any]() int {
	size := max(alloc.SizeOf[T](), 1)
	return max(1, BufferBytes/size)
}

// Options configures where a Deque gets its storage from.
// A nil *Options, or nil fields, select the Go heap.
type Options[T any] struct {
	// Elements allocates element buffers of BufferCapacity[T]() slots.
	Elements alloc.Allocator[T]

	// Index allocates the handle table that maps slots to buffers.
	Index alloc.Allocator[Handle]
}

func (o *Options[T]) elements() alloc.Allocator[T] {
	if o == nil || o.Elements == nil {
		return alloc.NewHeap[T]()
	}
	return o.Elements
}

func (o *Options[T]) index() alloc.Allocator[Handle] {
	if o == nil || o.Index == nil {
		return alloc.NewHeap[Handle]()
	}
	return o.Index
}
