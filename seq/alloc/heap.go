package alloc

import (
	"fmt"
	"runtime"

	"github.com/joshuapare/segdeque/internal/buf"
	"github.com/joshuapare/segdeque/internal/logger"
)

// Heap allocates blocks from the Go heap.
//
// Requests whose byte size overflows, exceeds MaxBlockBytes, or exceeds the
// process address-space limit are refused with ErrNoSpace. The runtime would
// otherwise abort the process, which no caller can roll back from.
type Heap[T any] struct {
	elemSize int

	// ceiling is the largest block, in bytes, this heap will attempt.
	ceiling int
}

// NewHeap creates a Heap for elements of type T. The address-space limit is
// read once here; later changes to the limit are not observed.
func NewHeap[T any]() *Heap[T] {
	ceiling := MaxBlockBytes
	if limit := addressSpaceLimit(); limit > 0 && limit < ceiling {
		ceiling = limit
	}
	return &Heap[T]{
		elemSize: SizeOf[T](),
		ceiling:  ceiling,
	}
}

// Ceiling returns the largest block size in bytes this heap will attempt.
func (h *Heap[T]) Ceiling() int { return h.ceiling }

// Allocate returns a zeroed block of n slots.
func (h *Heap[T]) Allocate(n int) (block []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}

	size, err := buf.BlockBytes(n, h.elemSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSpace, err)
	}
	if size > h.ceiling {
		logger.Warn("heap allocation refused", "elems", n, "bytes", size, "ceiling", h.ceiling)
		return nil, fmt.Errorf("%w: %d bytes exceeds ceiling %d", ErrNoSpace, size, h.ceiling)
	}

	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			logger.Warn("heap allocation failed", "elems", n, "err", re)
			block, err = nil, fmt.Errorf("%w: %v", ErrNoSpace, re)
		}
	}()
	return make([]T, n), nil
}

// Deallocate releases a block. The Go heap reclaims it once unreferenced.
func (h *Heap[T]) Deallocate(block []T, n int) {
	checkRelease("alloc.Heap.Deallocate", block, n)
}

// Compile-time interface check
var _ Allocator[int] = (*Heap[int])(nil)
