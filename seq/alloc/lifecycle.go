package alloc

import "github.com/joshuapare/segdeque/seq"

// Lifecycle places elements into raw slots and destroys them again.
//
// The destruction and copy strategies are chosen once, from the element type
// alone, by LifecycleFor. A Lifecycle is a small value; containers keep one.
type Lifecycle[T any] struct {
	destroyOne   func(*T)
	destroyRange func([]T)
	copyOf       func(T) T
	trivial      bool
}

// LifecycleFor returns the Lifecycle for T.
//
// If *T implements seq.Destroyer, destruction calls Destroy on every element
// and then zeroes the slots. Otherwise destruction is one bulk clear.
// If *T implements seq.Cloner[T], copy construction uses Clone.
func LifecycleFor[T any]() Lifecycle[T] {
	lc := Lifecycle[T]{
		copyOf: func(v T) T { return v },
	}

	if _, ok := any((*T)(nil)).(seq.Destroyer); ok {
		lc.destroyOne = func(p *T) {
			any(p).(seq.Destroyer).Destroy()
			var zero T
			*p = zero
		}
		lc.destroyRange = func(s []T) {
			for i := range s {
				any(&s[i]).(seq.Destroyer).Destroy()
			}
			clear(s)
		}
	} else {
		lc.trivial = true
		lc.destroyOne = func(p *T) {
			var zero T
			*p = zero
		}
		lc.destroyRange = func(s []T) { clear(s) }
	}

	if _, ok := any((*T)(nil)).(seq.Cloner[T]); ok {
		lc.copyOf = func(v T) T { return any(&v).(seq.Cloner[T]).Clone() }
	}
	return lc
}

// Trivial reports whether destroying a T needs no per-element work.
func (lc Lifecycle[T]) Trivial() bool { return lc.trivial }

// Construct moves v into slot.
func (lc Lifecycle[T]) Construct(slot *T, v T) { *slot = v }

// ConstructDefault places the zero value of T into slot.
func (lc Lifecycle[T]) ConstructDefault(slot *T) {
	var zero T
	*slot = zero
}

// ConstructCopy places a copy of v into slot, cloning when T supports it.
func (lc Lifecycle[T]) ConstructCopy(slot *T, v T) { *slot = lc.copyOf(v) }

// ConstructWith builds the element with build and places it into slot.
// If build fails, slot is left untouched and the error is returned.
func (lc Lifecycle[T]) ConstructWith(slot *T, build func() (T, error)) error {
	v, err := build()
	if err != nil {
		return err
	}
	*slot = v
	return nil
}

// Copy returns a copy of v, cloning when T supports it.
func (lc Lifecycle[T]) Copy(v T) T { return lc.copyOf(v) }

// Destroy destroys the element in slot and zeroes it.
func (lc Lifecycle[T]) Destroy(slot *T) { lc.destroyOne(slot) }

// DestroyRange destroys every element in slots and zeroes them.
func (lc Lifecycle[T]) DestroyRange(slots []T) {
	if len(slots) == 0 {
		return
	}
	lc.destroyRange(slots)
}

// Vacate zeroes slots whose elements were moved elsewhere. Nothing is
// destroyed: the elements live on in their new slots.
func (lc Lifecycle[T]) Vacate(slots []T) { clear(slots) }

// Fill copy-constructs v into every slot of dst.
func (lc Lifecycle[T]) Fill(dst []T, v T) {
	for i := range dst {
		dst[i] = lc.copyOf(v)
	}
}

// CopyInto copy-constructs src into the leading slots of dst and returns the
// number of elements placed.
func (lc Lifecycle[T]) CopyInto(dst, src []T) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = lc.copyOf(src[i])
	}
	return n
}
