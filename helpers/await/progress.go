package await

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sourcegraph/conc"

	"gitlab.com/zzsleep/zz/helpers/clock"
)

const defaultTick = 100 * time.Millisecond

// Progress waits while drawing a countdown bar with the remaining time and
// the estimated arrival beside it.
type Progress struct {
	Clock clock.Clock

	// Out receives the rendered bar, os.Stderr when nil.
	Out io.Writer

	// Tick is the redraw interval, 100ms when zero.
	Tick time.Duration
}

func (p Progress) Wait(ctx context.Context, until time.Time) error {
	now := p.Clock.Now()
	total := until.Sub(now)
	if total <= 0 {
		return nil
	}

	totalSeconds := ceilSeconds(total)
	tracker := &progress.Tracker{
		Message: trackerMessage(total, until, now),
		Total:   totalSeconds,
		Units:   progress.UnitsDefault,
	}

	writer := p.newWriter()
	writer.AppendTracker(tracker)

	var renderer conc.WaitGroup
	renderer.Go(writer.Render)
	defer renderer.Wait()
	defer writer.Stop()

	ticker := time.NewTicker(p.tick())
	defer ticker.Stop()

	elapsedSeconds := int64(-1)
	for {
		now := p.Clock.Now()
		remaining := until.Sub(now)
		if remaining <= 0 {
			tracker.SetValue(totalSeconds)
			tracker.MarkAsDone()
			return nil
		}

		// Redraw the second countdown only when it changes.
		if elapsed := totalSeconds - ceilSeconds(remaining); elapsed != elapsedSeconds {
			elapsedSeconds = elapsed
			tracker.SetValue(elapsed)
			tracker.UpdateMessage(trackerMessage(remaining, until, now))
		}

		select {
		case <-ctx.Done():
			tracker.MarkAsErrored()
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p Progress) newWriter() progress.Writer {
	writer := progress.NewWriter()
	writer.SetOutputWriter(p.out())
	writer.SetAutoStop(false)
	writer.SetTrackerLength(40)
	writer.SetMessageWidth(30)
	writer.SetUpdateFrequency(p.tick())
	writer.SetTrackerPosition(progress.PositionLeft)

	style := progress.StyleDefault
	style.Chars.BoxLeft = "["
	style.Chars.BoxRight = "]"
	style.Chars.Finished = "█"
	style.Chars.Finished25 = "░"
	style.Chars.Finished50 = "▒"
	style.Chars.Finished75 = "▓"
	style.Chars.Unfinished = "░"
	style.Colors.Tracker = text.Colors{text.FgCyan}
	style.Visibility.ETA = false
	style.Visibility.ETAOverall = false
	style.Visibility.Percentage = false
	style.Visibility.Speed = false
	style.Visibility.SpeedOverall = false
	style.Visibility.Time = false
	style.Visibility.TrackerOverall = false
	style.Visibility.Value = false
	writer.SetStyle(style)

	return writer
}

func (p Progress) out() io.Writer {
	if p.Out != nil {
		return p.Out
	}

	return os.Stderr
}

func (p Progress) tick() time.Duration {
	if p.Tick > 0 {
		return p.Tick
	}

	return defaultTick
}

func ceilSeconds(d time.Duration) int64 {
	return int64((d + time.Second - 1) / time.Second)
}

// trackerMessage is the text beside the bar: the remaining time and the
// estimated arrival.
func trackerMessage(remaining time.Duration, until, now time.Time) string {
	return fmt.Sprintf("%s | ETA %s", formatRemaining(remaining), formatETA(until, now))
}
