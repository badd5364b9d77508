package l9con

// DefaultThrottleLimit is the number of timed key probes per real key read.
const DefaultThrottleLimit = 1024

// Throttle paces timed key probes.
//
// Some games wait briefly for a key as a way of pausing and expect "no key"
// back, while multiple-choice games need a real keystroke from the same
// call. With no timed wait available on a line-buffered terminal, every
// probe but one in each cycle of limit answers "no key", and the last one
// does a blocking read. Games that ignore the empty answers behave correctly
// either way.
type Throttle struct {
	count int
	limit int
}

// NewThrottle creates a throttle allowing one real read every limit probes.
func NewThrottle(limit int) *Throttle {
	if limit < 1 {
		limit = DefaultThrottleLimit
	}
	return &Throttle{limit: limit}
}

// Tick counts one probe. It returns true when the probe should perform a real
// read, in which case the counter has been reset to zero.
func (t *Throttle) Tick() bool {
	t.count++
	if t.count < t.limit {
		return false
	}
	t.count = 0
	return true
}

// Count returns the number of probes since the last real read.
func (t *Throttle) Count() int {
	return t.count
}

// Limit returns the cycle length.
func (t *Throttle) Limit() int {
	return t.limit
}
