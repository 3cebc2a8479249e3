// Package clock abstracts the wall clock so waits can be tested without
// sleeping.
package clock

import (
	"context"
	"time"
)

// Clock supplies the current instant and a cancellable sleep. Now must
// return a location aware reading so callers can resolve wall clock targets
// in the right timezone.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// System is the Clock backed by the process wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Sleep blocks until d elapses or ctx is done, whichever comes first.
func (System) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
