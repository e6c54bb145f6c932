// Package vector implements a contiguous growable array on top of seq/alloc.
//
// Vector keeps its elements in one block. When the block is full a block of
// twice the capacity is allocated, the elements are moved over and the old
// block is released. A failed growth leaves the vector untouched.
package vector

import (
	"fmt"
	"iter"

	"github.com/joshuapare/segdeque/seq"
	"github.com/joshuapare/segdeque/seq/alloc"
)

// Vector is a contiguous growable array. The zero Vector is not usable; use
// New, NewFilled or NewFrom.
type Vector[T any] struct {
	block  []T // len(block) is the capacity
	n      int
	elems  alloc.Allocator[T]
	lc     alloc.Lifecycle[T]
	closed bool
}

// New creates an empty Vector drawing blocks from a. A nil a uses the Go heap.
func New[T any](a alloc.Allocator[T]) *Vector[T] {
	if a == nil {
		a = alloc.NewHeap[T]()
	}
	return &Vector[T]{elems: a, lc: alloc.LifecycleFor[T]()}
}

// NewFilled creates a Vector holding n copies of fill.
func NewFilled[T any](n int, fill T, a alloc.Allocator[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("vector: %w: %d", alloc.ErrBadCount, n)
	}
	v := New(a)
	if err := v.Reserve(n); err != nil {
		return nil, err
	}
	v.lc.Fill(v.block[:n], fill)
	v.n = n
	return v, nil
}

// NewFrom creates a Vector holding copies of the elements of src.
func NewFrom[T any](src *Vector[T], a alloc.Allocator[T]) (*Vector[T], error) {
	src.checkOpen("vector.NewFrom")
	v := New(a)
	if err := v.Reserve(src.n); err != nil {
		return nil, err
	}
	v.n = v.lc.CopyInto(v.block, src.block[:src.n])
	return v, nil
}

func (v *Vector[T]) checkOpen(op string) {
	if v == nil || v.elems == nil {
		seq.Violate(op, seq.ErrClosed, "vector was not created with a constructor")
	}
	if v.closed {
		seq.Violate(op, seq.ErrClosed, "")
	}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.n
}

// Cap returns the number of elements the current block holds.
func (v *Vector[T]) Cap() int { return len(v.block) }

// At returns the i-th element.
func (v *Vector[T]) At(i int) T {
	v.checkOpen("vector.At")
	seq.CheckIndex("vector.At", i, v.n)
	return v.block[i]
}

// Set destroys the i-th element and puts x in its place.
func (v *Vector[T]) Set(i int, x T) {
	v.checkOpen("vector.Set")
	seq.CheckIndex("vector.Set", i, v.n)
	v.lc.Destroy(&v.block[i])
	v.lc.Construct(&v.block[i], x)
}

// Back returns the last element.
func (v *Vector[T]) Back() T {
	v.checkOpen("vector.Back")
	if v.n == 0 {
		seq.Violate("vector.Back", seq.ErrEmpty, "")
	}
	return v.block[v.n-1]
}

// Reserve makes sure the block holds at least n elements.
func (v *Vector[T]) Reserve(n int) error {
	v.checkOpen("vector.Reserve")
	if n <= len(v.block) {
		return nil
	}
	return v.realloc(n)
}

// grow makes room for one more element, doubling the capacity.
func (v *Vector[T]) grow() error {
	if v.n < len(v.block) {
		return nil
	}
	return v.realloc(max(1, 2*len(v.block)))
}

// realloc moves the elements into a fresh block of capacity slots.
func (v *Vector[T]) realloc(capacity int) error {
	block, err := v.elems.Allocate(capacity)
	if err != nil {
		return fmt.Errorf("vector: grow to %d: %w", capacity, err)
	}
	copy(block, v.block[:v.n])
	if old := v.block; old != nil {
		v.lc.Vacate(old)
		v.elems.Deallocate(old, len(old))
	}
	v.block = block
	return nil
}

// PushBack appends x. If the block must grow and cannot, the error wraps
// alloc.ErrNoSpace and v is unchanged.
func (v *Vector[T]) PushBack(x T) error {
	v.checkOpen("vector.PushBack")
	if err := v.grow(); err != nil {
		return err
	}
	v.lc.Construct(&v.block[v.n], x)
	v.n++
	return nil
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() T {
	v.checkOpen("vector.PopBack")
	if v.n == 0 {
		seq.Violate("vector.PopBack", seq.ErrEmpty, "")
	}
	v.n--
	x := v.block[v.n]
	v.lc.Vacate(v.block[v.n : v.n+1])
	return x
}

// Insert places x at position i, shifting later elements up by one.
func (v *Vector[T]) Insert(i int, x T) error {
	v.checkOpen("vector.Insert")
	if i < 0 || i > v.n {
		seq.Violate("vector.Insert", seq.ErrOutOfRange, "position %d with length %d", i, v.n)
	}
	if err := v.grow(); err != nil {
		return err
	}
	copy(v.block[i+1:v.n+1], v.block[i:v.n])
	v.lc.Construct(&v.block[i], x)
	v.n++
	return nil
}

// Erase destroys the i-th element and closes the gap.
func (v *Vector[T]) Erase(i int) {
	v.checkOpen("vector.Erase")
	seq.CheckIndex("vector.Erase", i, v.n)
	v.lc.Destroy(&v.block[i])
	copy(v.block[i:], v.block[i+1:v.n])
	v.n--
	v.lc.Vacate(v.block[v.n : v.n+1])
}

// Clear destroys every element. The block is kept.
func (v *Vector[T]) Clear() {
	v.checkOpen("vector.Clear")
	v.lc.DestroyRange(v.block[:v.n])
	v.n = 0
}

// Close destroys every element and releases the block.
func (v *Vector[T]) Close() {
	if v == nil || v.elems == nil || v.closed {
		return
	}
	v.Clear()
	if v.block != nil {
		v.elems.Deallocate(v.block, len(v.block))
		v.block = nil
	}
	v.closed = true
}

// All returns an iterator over index/element pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T {
	if v.Len() == 0 {
		return nil
	}
	out := make([]T, v.n)
	copy(out, v.block[:v.n])
	return out
}

// Compile-time interface check
var _ seq.BackSequence[int] = (*Vector[int])(nil)
