//go:build linux || darwin

package alloc

import (
	"math"

	"golang.org/x/sys/unix"
)

// addressSpaceLimit returns the soft RLIMIT_AS in bytes, or 0 when the limit
// is unset, unreadable, or larger than an int can hold.
func addressSpaceLimit() int {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_AS, &rl); err != nil {
		return 0
	}
	if rl.Cur > uint64(math.MaxInt) {
		return 0
	}
	return int(rl.Cur)
}
