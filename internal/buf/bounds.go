package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for count * elementSize calculations when sizing blocks.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// BlockBytes returns the byte size of a block holding count elements of
// elementSize bytes each, or an error describing the specific failure
// (negative input or overflow).
//
// This is the recommended way to size a raw block before asking the runtime
// for memory:
//
//	size, err := buf.BlockBytes(n, int(unsafe.Sizeof(zero)))
//	if err != nil {
//	    return fmt.Errorf("allocate: %w", err)
//	}
func BlockBytes(count, elementSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elementSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elementSize)
	}
	total, ok := MulOverflowSafe(count, elementSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elementSize)
	}
	return total, nil
}

// CheckRange validates that [first, last) is a well-formed sub-range of a
// sequence of the given length.
func CheckRange(length, first, last int) error {
	if first < 0 {
		return fmt.Errorf("negative position: %d", first)
	}
	if last < first {
		return fmt.Errorf("inverted range: [%d, %d)", first, last)
	}
	if last > length {
		return fmt.Errorf("bounds: end=%d > len=%d", last, length)
	}
	return nil
}

// Has reports whether [off, off+n) lies within a sequence of the given length.
func Has(length, off, n int) bool {
	if off < 0 || n < 0 || off > length {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= length
}
