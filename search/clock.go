package search

import "time"

// Timer is the stoppable handle behind the debounce delay.
type Timer interface {
	Stop() bool
}

// Clock schedules the debounce callback. The production clock is the real
// one; tests inject a manual clock to drive the state machine
// deterministically.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return systemClock{}
}
