//go:build !linux && !darwin

package alloc

const mappingSupported = false

func mapRegion(int) ([]byte, error) { return nil, ErrUnsupported }

func unmapRegion([]byte) error { return nil }
