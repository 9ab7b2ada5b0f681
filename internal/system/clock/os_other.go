// Released under an MIT license. See LICENSE.

//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package clock

import (
	"time"
)

func cpu() (user, system time.Duration, ok bool) {
	return 0, 0, false
}
