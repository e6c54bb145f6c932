package alloc

import "errors"

var (
	// ErrNoSpace indicates that the request for a block could not be satisfied.
	ErrNoSpace = errors.New("alloc: cannot satisfy allocation")

	// ErrBadCount indicates a negative element count.
	ErrBadCount = errors.New("alloc: negative element count")

	// ErrInjected marks a failure produced by Counting.FailAfter. It always
	// wraps ErrNoSpace so callers handle it like a genuine refusal.
	ErrInjected = errors.New("alloc: injected failure")

	// ErrNotPointerFree indicates an element type that cannot live outside
	// the Go heap because it holds pointers.
	ErrNotPointerFree = errors.New("alloc: element type contains pointers")

	// ErrUnsupported indicates an allocator that this platform cannot provide.
	ErrUnsupported = errors.New("alloc: not supported on this platform")
)
