package clock

import "time"

// Clock abstracts the wall clock so engine logic never reads device time
// directly and tests can substitute a fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns the real wall clock.
func System() Clock {
	return systemClock{}
}

// Fixed always reports the same instant. Test helper.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

// MinutesOfDay converts an instant to whole minutes since local midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// SecondsOfDay converts an instant to seconds since local midnight.
func SecondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
