//go:build linux || darwin

package alloc

import (
	"errors"

	"golang.org/x/sys/unix"
)

const mappingSupported = true

func mapRegion(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmapRegion(region []byte) error {
	err := unix.Munmap(region)
	if errors.Is(err, unix.EINVAL) {
		// Already unmapped.
		return nil
	}
	return err
}
