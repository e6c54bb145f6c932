package alloc

import "github.com/joshuapare/segdeque/seq"

// checkRelease panics unless block was allocated with exactly n slots.
func checkRelease[T any](op string, block []T, n int) {
	if len(block) != n {
		seq.Violate(op, seq.ErrSizeMismatch, "block of %d released as %d", len(block), n)
	}
}
