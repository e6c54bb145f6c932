package alloc

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/segdeque/internal/logger"
)

// Stats is a snapshot of a Counting allocator.
type Stats struct {
	Allocs     int // successful Allocate calls
	Frees      int // Deallocate calls
	Failures   int // Allocate calls that returned an error
	LiveBlocks int // blocks allocated and not yet released
	LiveElems  int // slots across live blocks
	PeakElems  int // high-water mark of LiveElems
	ElemSize   int // bytes per slot
}

// LiveBytes returns the byte size of all live blocks.
func (s Stats) LiveBytes() int { return s.LiveElems * s.ElemSize }

// String renders the snapshot with grouped digits, e.g.
// "allocs=2,501 frees=2,499 failures=0 live=2 blocks (1,024 bytes) peak=10,004 elems".
func (s Stats) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("allocs=%d frees=%d failures=%d live=%d blocks (%d bytes) peak=%d elems",
		s.Allocs, s.Frees, s.Failures, s.LiveBlocks, s.LiveBytes(), s.PeakElems)
}

// Counting is an instrumented allocator. It forwards to another allocator,
// records every call, and can be told to fail a future allocation.
type Counting[T any] struct {
	next  Allocator[T]
	stats Stats

	// failIn counts down to an injected failure; 0 disables injection.
	failIn int
}

// NewCounting wraps next. A nil next uses a Heap.
func NewCounting[T any](next Allocator[T]) *Counting[T] {
	if next == nil {
		next = NewHeap[T]()
	}
	return &Counting[T]{
		next:  next,
		stats: Stats{ElemSize: SizeOf[T]()},
	}
}

// FailAfter makes the k-th next Allocate call fail with ErrInjected
// (k = 1 fails the very next call). k <= 0 disables injection.
func (c *Counting[T]) FailAfter(k int) {
	c.failIn = max(k, 0)
}

// Allocate forwards to the wrapped allocator and records the outcome.
func (c *Counting[T]) Allocate(n int) ([]T, error) {
	if c.failIn > 0 {
		c.failIn--
		if c.failIn == 0 {
			c.stats.Failures++
			logger.Debug("injected allocation failure", "elems", n)
			return nil, fmt.Errorf("%w: %w", ErrNoSpace, ErrInjected)
		}
	}

	block, err := c.next.Allocate(n)
	if err != nil {
		c.stats.Failures++
		return nil, err
	}
	c.stats.Allocs++
	c.stats.LiveBlocks++
	c.stats.LiveElems += n
	c.stats.PeakElems = max(c.stats.PeakElems, c.stats.LiveElems)
	return block, nil
}

// Deallocate forwards to the wrapped allocator and records the release.
func (c *Counting[T]) Deallocate(block []T, n int) {
	c.next.Deallocate(block, n)
	c.stats.Frees++
	c.stats.LiveBlocks--
	c.stats.LiveElems -= n
}

// Stats returns a snapshot of the counters.
func (c *Counting[T]) Stats() Stats { return c.stats }

// Reset zeroes the call counters. Live block accounting is kept so that
// later releases of earlier blocks still balance.
func (c *Counting[T]) Reset() {
	c.stats.Allocs = 0
	c.stats.Frees = 0
	c.stats.Failures = 0
	c.stats.PeakElems = c.stats.LiveElems
}

// Compile-time interface check
var _ Allocator[int] = (*Counting[int])(nil)
