package clock

import (
	"strings"
	"testing"
	"time"
)

func TestElapsed(t *testing.T) {
	c := Start()

	time.Sleep(time.Millisecond)

	u := c.Elapsed()
	if u.Wall < time.Millisecond {
		t.Fatalf("Expected at least 1ms to have elapsed, got %v", u.Wall)
	}

	if u.User < 0 || u.System < 0 {
		t.Fatalf("Expected non-negative CPU time, got %+v", u)
	}
}

func TestString(t *testing.T) {
	u := Usage{Wall: 1500 * time.Millisecond}
	if s := u.String(); s != "Finished in 1.5s" {
		t.Fatalf("Unexpected report %q", s)
	}

	u.CPU = true
	u.User = 250 * time.Millisecond
	u.System = 0

	if s := u.String(); !strings.HasSuffix(s, "(user 0.25s, sys 0s)") {
		t.Fatalf("Unexpected report %q", s)
	}
}
