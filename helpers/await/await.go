// Package await blocks until an absolute instant arrives, either silently or
// behind a progress bar.
package await

import (
	"context"
	"time"

	"gitlab.com/zzsleep/zz/helpers/clock"
)

// Waiter blocks until an absolute instant arrives or the context is done.
// Instants that already passed return immediately.
type Waiter interface {
	Wait(ctx context.Context, until time.Time) error
}

// Quiet waits with a single cancellable sleep and no output.
type Quiet struct {
	Clock clock.Clock
}

func (q Quiet) Wait(ctx context.Context, until time.Time) error {
	remaining := until.Sub(q.Clock.Now())
	if remaining <= 0 {
		return nil
	}

	return q.Clock.Sleep(ctx, remaining)
}
