package seq

// Cloner is implemented by element types whose copy must not alias the
// original (types holding slices, maps or pointers they own). Containers use
// Clone whenever they copy-construct an element from another container.
type Cloner[T any] interface {
	Clone() T
}

// Destroyer is implemented (on the pointer receiver) by element types that
// need to release something when a container destroys them. Containers call
// Destroy exactly once per constructed element, before the slot is zeroed.
type Destroyer interface {
	Destroy()
}

// BackSequence is the capability set the stack adapter needs: insertion and
// removal at the back plus read access to the last element.
type BackSequence[T any] interface {
	PushBack(v T) error
	PopBack() T
	Back() T
	Len() int
}

// Closer is implemented by containers that hold allocator-owned storage.
type Closer interface {
	Close()
}
