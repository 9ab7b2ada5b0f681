// Released under an MIT license. See LICENSE.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

func cpu() (user, system time.Duration, ok bool) {
	var ru unix.Rusage

	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, 0, false
	}

	return time.Duration(ru.Utime.Nano()), time.Duration(ru.Stime.Nano()), true
}
