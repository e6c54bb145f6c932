package alloc

import (
	"math"
	"unsafe"
)

// MaxBlockBytes is the largest single block any allocator in this package
// hands out (2GB), matching the largest block a 32-bit length can address.
const MaxBlockBytes = math.MaxInt32

// Allocator defines the interface for raw block allocation and release.
//
// Implementations:
//   - Heap: Go heap backed, with an upper ceiling
//   - Budget: hard element budget over another allocator
//   - Counting: instrumentation and fault injection over another allocator
//   - Mapped: one anonymous memory mapping per block, pointer-free types only
type Allocator[T any] interface {
	// Allocate returns a block of exactly n zeroed slots.
	// Returns an error wrapping ErrNoSpace when the request cannot be met.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block obtained from Allocate.
	// n must be the count the block was allocated with.
	Deallocate(block []T, n int)
}

// SizeOf returns the in-memory size of one T in bytes.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
