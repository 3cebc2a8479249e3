package await

import (
	"fmt"
	"time"
)

// formatRemaining renders a duration as HH:MM:SS, rounding part seconds up
// so the countdown only reads 00:00:00 once the wait is over.
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	secs := int64((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}

// formatETA renders the arrival instant in the reference instant's timezone,
// with just enough of the date to disambiguate: time of day when the target
// is today, month and day within the same year, the full date otherwise.
func formatETA(target, now time.Time) string {
	target = target.In(now.Location())

	switch {
	case target.Year() == now.Year() && target.YearDay() == now.YearDay():
		return target.Format("15:04:05")
	case target.Year() == now.Year():
		return target.Format("01-02 15:04:05")
	default:
		return target.Format("2006-01-02 15:04:05")
	}
}
