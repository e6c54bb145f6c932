package testutil

import (
	"errors"
	"testing"

	"github.com/joshuapare/segdeque/seq"
)

// RequireViolation runs fn and fails the test unless it panics with a
// *seq.ContractViolation wrapping want.
//
// Example:
//
//	testutil.RequireViolation(t, seq.ErrEmpty, func() { d.PopBack() })
func RequireViolation(t testing.TB, want error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected contract violation %v, got no panic", want)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected contract violation %v, got panic %v", want, r)
		}
		var cv *seq.ContractViolation
		if !errors.As(err, &cv) {
			t.Fatalf("expected *seq.ContractViolation, got %T: %v", err, err)
		}
		if !errors.Is(err, want) {
			t.Fatalf("expected violation %v, got %v", want, err)
		}
	}()
	fn()
}

// ErrFactory is returned by FailingFactory.
var ErrFactory = errors.New("testutil: factory failed")

// FailingFactory returns a construction function that always fails.
func FailingFactory[T any]() func() (T, error) {
	return func() (T, error) {
		var zero T
		return zero, ErrFactory
	}
}

// Factory returns a construction function that always yields v.
func Factory[T any](v T) func() (T, error) {
	return func() (T, error) { return v, nil }
}
