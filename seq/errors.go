package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a position or index outside the live range.
	ErrOutOfRange = errors.New("seq: position out of range")

	// ErrEmpty indicates an element access or removal on an empty container.
	ErrEmpty = errors.New("seq: container is empty")

	// ErrStaleCursor indicates use of a cursor whose buffer was released or
	// whose index layout changed since it was obtained.
	ErrStaleCursor = errors.New("seq: stale cursor")

	// ErrForeignCursor indicates a cursor that belongs to a different container.
	ErrForeignCursor = errors.New("seq: cursor belongs to another container")

	// ErrClosed indicates use of a container after Close.
	ErrClosed = errors.New("seq: container is closed")

	// ErrSizeMismatch indicates a block released with a count different from
	// the one it was allocated with.
	ErrSizeMismatch = errors.New("seq: deallocation size mismatch")
)

// ContractViolation is the panic value raised when a caller breaks a
// precondition. It is never returned as an error.
type ContractViolation struct {
	Op     string // operation that detected the violation, e.g. "deque.PopBack"
	Detail string
	Err    error // one of the sentinel errors above
}

func (e *ContractViolation) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Detail)
}

func (e *ContractViolation) Unwrap() error { return e.Err }

// Violate panics with a *ContractViolation.
func Violate(op string, err error, format string, args ...any) {
	panic(&ContractViolation{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)})
}

// CheckIndex panics with ErrOutOfRange unless 0 <= i < length.
func CheckIndex(op string, i, length int) {
	if i < 0 || i >= length {
		Violate(op, ErrOutOfRange, "index %d with length %d", i, length)
	}
}
