package outbox

import "time"

// Clock abstracts time so the reconciler can be stepped deterministically
// in tests instead of racing real timers.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock returns a Clock backed by the real time package.
func SystemClock() Clock {
	return systemClock{}
}
