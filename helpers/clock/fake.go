package clock

import (
	"context"
	"sync"
	"time"
)

// Fake is a deterministic Clock for tests. Now starts at a fixed instant and
// advances only when Sleep is called.
type Fake struct {
	mu    sync.Mutex
	now   time.Time
	slept []time.Duration
}

func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// Sleep advances the fake instant by d without blocking.
func (f *Fake) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
	f.slept = append(f.slept, d)

	return nil
}

// Slept returns the durations passed to Sleep so far.
func (f *Fake) Slept() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]time.Duration(nil), f.slept...)
}
