// Package seq holds the contracts shared by the segdeque containers.
//
// # Overview
//
// The module is split into a small core and two collaborators:
//
//   - seq/alloc: raw block allocation plus in-place construction and destruction
//   - seq/deque: the segmented-buffer double-ended queue and its Cursor
//   - seq/vector: a contiguous growable array built on seq/alloc
//   - seq/stack: a LIFO adapter over any BackSequence
//
// This package defines the element capabilities the containers look for
// (Cloner, Destroyer), the BackSequence interface the stack adapter consumes,
// and the error taxonomy.
//
// # Errors
//
// Two kinds of failure exist and they never mix:
//
//   - Allocation failures are returned as error values wrapping
//     alloc.ErrNoSpace. The call that returned the error left its receiver
//     exactly as it was before the call.
//   - Contract violations (popping an empty container, indexing past the end,
//     using a stale cursor) are caller bugs. They panic with a
//     *ContractViolation whose Err is one of the sentinels below.
//
// Recover a violation in tests with errors.As:
//
//	defer func() {
//	    var cv *seq.ContractViolation
//	    if errors.As(recover().(error), &cv) && errors.Is(cv, seq.ErrEmpty) {
//	        // expected
//	    }
//	}()
//
// # Thread Safety
//
// Nothing in this module is safe for concurrent mutation. Callers that share
// a container between goroutines must serialize access externally.
package seq
