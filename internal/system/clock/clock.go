// Released under an MIT license. See LICENSE.

// Package clock measures how long a program runs.
package clock

import (
	"fmt"
	"time"
)

// T (clock) records when it was started.
type T struct {
	start  time.Time
	system time.Duration
	user   time.Duration
}

// Usage is the time used since a clock started.
type Usage struct {
	CPU    bool // True if User and System are known.
	System time.Duration
	User   time.Duration
	Wall   time.Duration
}

// Start starts a new clock.
func Start() *T {
	user, system, _ := cpu()

	return &T{
		start:  time.Now(),
		system: system,
		user:   user,
	}
}

// Elapsed returns the time used since the clock c was started.
func (c *T) Elapsed() Usage {
	u := Usage{Wall: time.Since(c.start)}

	user, system, ok := cpu()
	if ok {
		u.CPU = true
		u.System = system - c.system
		u.User = user - c.user
	}

	return u
}

// String reports the usage u in seconds.
func (u Usage) String() string {
	s := fmt.Sprintf("Finished in %gs", u.Wall.Seconds())
	if u.CPU {
		s += fmt.Sprintf(" (user %gs, sys %gs)", u.User.Seconds(), u.System.Seconds())
	}

	return s
}
