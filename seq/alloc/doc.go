// Package alloc provides raw block allocation and in-place element
// construction and destruction for the segdeque containers.
//
// # Overview
//
// Containers never call make() for element storage directly. They ask an
// Allocator for a block sized for n elements, construct elements into its
// slots through a Lifecycle, destroy them through the same Lifecycle, and
// hand the block back with the exact count it was allocated with.
//
// # Allocator Interface
//
//   - Allocate(n): obtain a block of n uninitialized (zeroed) slots
//   - Deallocate(block, n): release a block; n must match the allocation
//
// An allocator performs no size tracking of its own. Releasing a block with
// a different count is a contract violation and panics.
//
// # Implementations
//
// Heap: production allocator backed by the Go heap
//
//   - refuses blocks larger than MaxBlockBytes or the process address-space
//     limit with ErrNoSpace instead of letting the runtime abort
//   - converts runtime makeslice panics into ErrNoSpace
//
// Budget: wraps another allocator with a hard element budget
//
// Counting: instrumented wrapper that records allocations, releases and live
// bytes, and can inject a failure into the k-th next allocation
//
// Mapped: serves each block from its own anonymous mapping outside the Go
// heap (linux and darwin). Only element types without pointers qualify,
// since the collector does not scan mapped memory.
//
// # Usage Example
//
//	heap := alloc.NewHeap[int]()
//	counted := alloc.NewCounting[int](heap)
//
//	block, err := counted.Allocate(64)
//	if err != nil {
//	    return err
//	}
//	lc := alloc.LifecycleFor[int]()
//	lc.Construct(&block[0], 42)
//
//	lc.DestroyRange(block[:1])
//	counted.Deallocate(block, 64)
//
// # Destruction
//
// LifecycleFor decides once per element type how destruction works. Types
// whose pointer implements seq.Destroyer get Destroy called per element
// before the slots are zeroed; every other type takes a single bulk clear.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
