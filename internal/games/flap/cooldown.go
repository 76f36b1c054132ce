package flap

import (
	"math"
	"time"
)

// Cooldown records when a rate-limited event last happened, if ever.
type Cooldown struct {
	last time.Time
	set  bool
}

// Record marks the event as having happened at now.
func (c *Cooldown) Record(now time.Time) {
	c.last = now
	c.set = true
}

// Since returns the time elapsed since the last event.
// An event that never happened is infinitely long ago.
func (c Cooldown) Since(now time.Time) time.Duration {
	if !c.set {
		return time.Duration(math.MaxInt64)
	}
	return now.Sub(c.last)
}

// Ready reports whether strictly more than cooldown has passed since the last event.
func (c Cooldown) Ready(now time.Time, cooldown time.Duration) bool {
	return c.Since(now) > cooldown
}

// Last returns the time of the last event and whether there was one.
func (c Cooldown) Last() (time.Time, bool) {
	return c.last, c.set
}
