//go:build !linux && !darwin

package alloc

// addressSpaceLimit is not available on this platform; only MaxBlockBytes applies.
func addressSpaceLimit() int {
	return 0
}
