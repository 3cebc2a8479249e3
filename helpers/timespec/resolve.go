package timespec

import (
	"fmt"
	"time"
)

// Target is a resolved specification: the absolute instant to wait for and
// the wait length measured from the reference instant.
type Target struct {
	Instant time.Time
	Wait    time.Duration
}

// Resolve turns a specification into a Target relative to now. Durations add
// to now, clock times resolve to their next occurrence in now's timezone and
// roll over to tomorrow once today's reading has passed, and absolute
// timestamps must not lie in the past. A target equal to now yields a zero
// wait.
func Resolve(spec Spec, now time.Time) (Target, error) {
	switch s := spec.(type) {
	case DurationSpec:
		wait := s.Duration()
		return Target{Instant: now.Add(wait), Wait: wait}, nil

	case ClockTime:
		instant := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, s.Second, 0, now.Location())
		if instant.Before(now) {
			instant = instant.AddDate(0, 0, 1)
		}
		return Target{Instant: instant, Wait: instant.Sub(now)}, nil

	case AbsoluteTimestamp:
		if s.Instant.Before(now) {
			return Target{}, &PastTimestampError{Target: s.Instant, Now: now}
		}
		return Target{Instant: s.Instant, Wait: s.Instant.Sub(now)}, nil

	default:
		return Target{}, fmt.Errorf("unsupported specification type %T", spec)
	}
}
