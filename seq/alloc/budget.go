package alloc

import "fmt"

// Budget wraps an allocator with a hard limit on the number of elements that
// may be live across all blocks at once.
type Budget[T any] struct {
	next  Allocator[T]
	limit int
	used  int
}

// NewBudget creates a Budget over next that allows at most limit live elements.
func NewBudget[T any](next Allocator[T], limit int) *Budget[T] {
	return &Budget[T]{next: next, limit: limit}
}

// Allocate forwards to the wrapped allocator if the budget allows n more elements.
func (b *Budget[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	if n > b.limit-b.used {
		return nil, fmt.Errorf("%w: budget of %d elements exhausted (used=%d, requested=%d)",
			ErrNoSpace, b.limit, b.used, n)
	}
	block, err := b.next.Allocate(n)
	if err != nil {
		return nil, err
	}
	b.used += n
	return block, nil
}

// Deallocate returns n elements to the budget.
func (b *Budget[T]) Deallocate(block []T, n int) {
	b.next.Deallocate(block, n)
	b.used -= n
}

// Used returns the number of live elements charged against the budget.
func (b *Budget[T]) Used() int { return b.used }

// Remaining returns how many more elements may be allocated.
func (b *Budget[T]) Remaining() int { return b.limit - b.used }

// Compile-time interface check
var _ Allocator[int] = (*Budget[int])(nil)
