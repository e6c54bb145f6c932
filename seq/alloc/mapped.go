package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/segdeque/internal/buf"
	"github.com/joshuapare/segdeque/internal/logger"
	"github.com/joshuapare/segdeque/seq"
)

// Mapped allocates every block from its own anonymous private memory
// mapping, outside the Go heap. Released blocks go straight back to the
// operating system.
//
// The garbage collector never scans mapped memory, so Mapped only serves
// element types that hold no pointers; NewMapped refuses any other type.
type Mapped[T any] struct {
	elemSize int
	regions  map[uintptr][]byte
}

// NewMapped creates a Mapped allocator for T. It fails with ErrNotPointerFree
// when T contains pointers, and with ErrUnsupported on platforms without
// anonymous mappings.
func NewMapped[T any]() (*Mapped[T], error) {
	typ := reflect.TypeFor[T]()
	if !pointerFree(typ) {
		return nil, fmt.Errorf("%w: %v", ErrNotPointerFree, typ)
	}
	if !mappingSupported {
		return nil, ErrUnsupported
	}
	return &Mapped[T]{
		elemSize: SizeOf[T](),
		regions:  make(map[uintptr][]byte),
	}, nil
}

// Allocate maps a fresh zeroed region holding n slots.
func (m *Mapped[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	size, err := buf.BlockBytes(n, m.elemSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSpace, err)
	}
	if size == 0 {
		return make([]T, n), nil
	}
	if size > MaxBlockBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrNoSpace, size, MaxBlockBytes)
	}

	region, err := mapRegion(size)
	if err != nil {
		logger.Warn("mapping failed", "bytes", size, "err", err)
		return nil, fmt.Errorf("%w: map %d bytes: %v", ErrNoSpace, size, err)
	}
	base := unsafe.Pointer(unsafe.SliceData(region))
	m.regions[uintptr(base)] = region
	return unsafe.Slice((*T)(base), n), nil
}

// Deallocate unmaps the region behind block.
func (m *Mapped[T]) Deallocate(block []T, n int) {
	checkRelease("alloc.Mapped.Deallocate", block, n)
	if n == 0 || m.elemSize == 0 {
		return
	}

	key := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	region, ok := m.regions[key]
	if !ok {
		seq.Violate("alloc.Mapped.Deallocate", seq.ErrSizeMismatch, "block at %#x was not mapped here", key)
	}
	delete(m.regions, key)
	if err := unmapRegion(region); err != nil {
		logger.Error("unmap failed", "bytes", len(region), "err", err)
	}
}

// Regions returns the number of live mappings.
func (m *Mapped[T]) Regions() int { return len(m.regions) }

// pointerFree reports whether values of t contain no pointers.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

// Compile-time interface check
var _ Allocator[int] = (*Mapped[int])(nil)
