// Package stack provides a last-in-first-out adapter over any sequence that
// supports insertion and removal at the back.
package stack

import (
	"iter"

	"github.com/joshuapare/segdeque/seq"
	"github.com/joshuapare/segdeque/seq/deque"
)

// Stack is a LIFO view of a BackSequence. The stack owns the sequence.
type Stack[T any, S seq.BackSequence[T]] struct {
	s S
}

// New wraps s.
func New[T any, S seq.BackSequence[T]](s S) *Stack[T, S] {
	return &Stack[T, S]{s: s}
}

// NewDequeStack creates a Stack backed by a heap-allocated Deque.
func NewDequeStack[T any]() (*Stack[T, *deque.Deque[T]], error) {
	d, err := deque.New[T](nil)
	if err != nil {
		return nil, err
	}
	return New[T](d), nil
}

// Push places v on top.
func (st *Stack[T, S]) Push(v T) error { return st.s.PushBack(v) }

// Pop removes and returns the top element. It panics on an empty stack.
func (st *Stack[T, S]) Pop() T {
	if st.s.Len() == 0 {
		seq.Violate("stack.Pop", seq.ErrEmpty, "")
	}
	return st.s.PopBack()
}

// Top returns the top element. It panics on an empty stack.
func (st *Stack[T, S]) Top() T {
	if st.s.Len() == 0 {
		seq.Violate("stack.Top", seq.ErrEmpty, "")
	}
	return st.s.Back()
}

// Len returns the number of elements.
func (st *Stack[T, S]) Len() int { return st.s.Len() }

// Empty reports whether the stack holds no elements.
func (st *Stack[T, S]) Empty() bool { return st.s.Len() == 0 }

// Underlying returns the wrapped sequence.
func (st *Stack[T, S]) Underlying() S { return st.s }

// Close releases the wrapped sequence if it holds storage.
func (st *Stack[T, S]) Close() {
	if c, ok := any(st.s).(seq.Closer); ok {
		c.Close()
	}
}

// ranger is implemented by sequences that can be walked without popping.
type ranger[T any] interface {
	All() iter.Seq2[int, T]
}

// Equal reports whether a and b hold equal elements, compared bottom to top
// with eq. Both stacks are left as they were.
//
// Sequences that expose All are walked in place. Any other sequence is
// popped and then pushed back; a push that fails while restoring is lost.
func Equal[T any, S1 seq.BackSequence[T], S2 seq.BackSequence[T]](a *Stack[T, S1], b *Stack[T, S2], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	ra, okA := any(a.s).(ranger[T])
	rb, okB := any(b.s).(ranger[T])
	if okA && okB {
		next, stop := iter.Pull2(rb.All())
		defer stop()
		for _, x := range ra.All() {
			_, y, _ := next()
			if !eq(x, y) {
				return false
			}
		}
		return true
	}

	var xs, ys []T
	defer func() {
		for i := len(xs) - 1; i >= 0; i-- {
			_ = a.s.PushBack(xs[i])
		}
		for i := len(ys) - 1; i >= 0; i-- {
			_ = b.s.PushBack(ys[i])
		}
	}()

	for a.Len() > 0 {
		xs = append(xs, a.s.PopBack())
		ys = append(ys, b.s.PopBack())
		if !eq(xs[len(xs)-1], ys[len(ys)-1]) {
			return false
		}
	}
	return true
}
