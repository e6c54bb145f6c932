package deque

import (
	"iter"
	"slices"
)

// All returns an iterator over index/element pairs, front to back.
// Mutating d during iteration is not supported.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.Len(); i++ {
			if !yield(i, *d.ref(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.Len(); i++ {
			if !yield(*d.ref(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs, back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if !yield(i, *d.ref(i)) {
				return
			}
		}
	}
}

// Slice copies the elements into a new slice. The elements themselves are
// not cloned.
func (d *Deque[T]) Slice() []T {
	if d.Len() == 0 {
		return nil
	}
	out := make([]T, 0, d.Len())
	d.forSegments(0, d.Len(), func(seg []T) {
		out = append(out, seg...)
	})
	return out
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Deque[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Deque[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}
