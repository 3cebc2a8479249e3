//go:build !integration
// +build !integration

package timespec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, args ...string) Spec {
	t.Helper()

	spec, err := Parse(args)
	require.NoError(t, err)
	return spec
}

func TestResolveDurations(t *testing.T) {
	now := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		args []string
		want time.Duration
	}{
		"compound":       {args: []string{"2h", "5m", "30s"}, want: 7530 * time.Second},
		"bare seconds":   {args: []string{"45"}, want: 45 * time.Second},
		"zero wait":      {args: []string{"0"}, want: 0},
		"hours and half": {args: []string{"1h", "30m", "45s"}, want: 5445 * time.Second},
	}

	for tn, tc := range tests {
		t.Run(tn, func(t *testing.T) {
			target, err := Resolve(mustParse(t, tc.args...), now)
			require.NoError(t, err)

			assert.Equal(t, tc.want, target.Wait)
			assert.True(t, target.Instant.Equal(now.Add(tc.want)))
		})
	}
}

func TestResolveClockTimes(t *testing.T) {
	loc := time.FixedZone("ZZT", 3*3600)
	now := time.Date(2026, 2, 20, 10, 0, 0, 0, loc)

	tests := map[string]struct {
		arg  string
		want time.Time
	}{
		"later today":          {arg: "12:30", want: time.Date(2026, 2, 20, 12, 30, 0, 0, loc)},
		"already passed":       {arg: "08:00", want: time.Date(2026, 2, 21, 8, 0, 0, 0, loc)},
		"midnight rolls over":  {arg: "0:00", want: time.Date(2026, 2, 21, 0, 0, 0, 0, loc)},
		"one second from now":  {arg: "10:00:01", want: time.Date(2026, 2, 20, 10, 0, 1, 0, loc)},
		"one second ago rolls": {arg: "9:59:59", want: time.Date(2026, 2, 21, 9, 59, 59, 0, loc)},
	}

	for tn, tc := range tests {
		t.Run(tn, func(t *testing.T) {
			target, err := Resolve(mustParse(t, tc.arg), now)
			require.NoError(t, err)

			assert.True(t, target.Instant.Equal(tc.want), "resolved %s, want %s", target.Instant, tc.want)
			assert.Equal(t, tc.want.Sub(now), target.Wait)
		})
	}
}

func TestResolveClockTimeEqualToNow(t *testing.T) {
	now := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)

	target, err := Resolve(mustParse(t, "10:00"), now)
	require.NoError(t, err)

	assert.Zero(t, target.Wait)
	assert.True(t, target.Instant.Equal(now))
}

func TestResolveAbsoluteTimestamps(t *testing.T) {
	now := time.Date(2026, 2, 20, 1, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		arg  string
		want time.Duration
	}{
		"utc":             {arg: "20260220T123000Z", want: 11*time.Hour + 30*time.Minute},
		"positive offset": {arg: "20260220T123000+0900", want: 2*time.Hour + 30*time.Minute},
		"negative offset": {arg: "20260220T033000-0500", want: 7*time.Hour + 30*time.Minute},
	}

	for tn, tc := range tests {
		t.Run(tn, func(t *testing.T) {
			target, err := Resolve(mustParse(t, tc.arg), now)
			require.NoError(t, err)

			assert.Equal(t, tc.want, target.Wait)
			assert.True(t, target.Instant.Equal(now.Add(tc.want)))
		})
	}
}

func TestResolveEquivalentTimestampsAgree(t *testing.T) {
	now := time.Date(2026, 2, 20, 1, 0, 0, 0, time.UTC)

	offset, err := Resolve(mustParse(t, "20260220T123000+0900"), now)
	require.NoError(t, err)
	utc, err := Resolve(mustParse(t, "20260220T033000Z"), now)
	require.NoError(t, err)

	assert.True(t, offset.Instant.Equal(utc.Instant))
	assert.Equal(t, offset.Wait, utc.Wait)
}

func TestResolveTimestampIgnoresReferenceZone(t *testing.T) {
	// 06:45 at UTC+05:45 is 01:00 UTC, so the wait must match the UTC case.
	loc := time.FixedZone("ZZT", 5*3600+45*60)
	now := time.Date(2026, 2, 20, 6, 45, 0, 0, loc)

	target, err := Resolve(mustParse(t, "20260220T123000Z"), now)
	require.NoError(t, err)

	assert.Equal(t, 11*time.Hour+30*time.Minute, target.Wait)
}

func TestResolvePastTimestamp(t *testing.T) {
	now := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)

	target, err := Resolve(mustParse(t, "20260220T095959Z"), now)
	require.Error(t, err)
	assert.Zero(t, target)

	var past *PastTimestampError
	require.True(t, errors.As(err, &past))
	assert.True(t, past.Target.Equal(time.Date(2026, 2, 20, 9, 59, 59, 0, time.UTC)))
	assert.Contains(t, err.Error(), "already passed")
}

func TestResolveTimestampEqualToNow(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 30, 0, 0, time.UTC)

	target, err := Resolve(mustParse(t, "20260220T123000Z"), now)
	require.NoError(t, err)

	assert.Zero(t, target.Wait)
	assert.True(t, target.Instant.Equal(now))
}
