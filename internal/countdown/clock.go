package countdown

import "time"

// Clock abstracts wall-clock reads so tests can advance time by hand.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the default Clock implementation.
var SystemClock Clock = systemClock{}
