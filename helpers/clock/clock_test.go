//go:build !integration
// +build !integration

package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemNow(t *testing.T) {
	assert.WithinDuration(t, time.Now(), System{}.Now(), time.Second)
}

func TestSystemSleep(t *testing.T) {
	t.Run("elapses", func(t *testing.T) {
		start := time.Now()

		err := System{}.Sleep(context.Background(), 50*time.Millisecond)

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("zero duration returns immediately", func(t *testing.T) {
		assert.NoError(t, System{}.Sleep(context.Background(), 0))
	})

	t.Run("negative duration returns immediately", func(t *testing.T) {
		assert.NoError(t, System{}.Sleep(context.Background(), -time.Minute))
	})

	t.Run("cancelled while sleeping", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		err := System{}.Sleep(ctx, 10*time.Second)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, System{}.Sleep(ctx, time.Minute), context.Canceled)
	})
}

func TestFake(t *testing.T) {
	start := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)

	t.Run("now advances through sleeps", func(t *testing.T) {
		fake := NewFake(start)
		assert.True(t, fake.Now().Equal(start))

		require.NoError(t, fake.Sleep(context.Background(), 90*time.Second))
		require.NoError(t, fake.Sleep(context.Background(), time.Hour))

		assert.True(t, fake.Now().Equal(start.Add(time.Hour+90*time.Second)))
		assert.Equal(t, []time.Duration{90 * time.Second, time.Hour}, fake.Slept())
	})

	t.Run("zero sleep is not recorded", func(t *testing.T) {
		fake := NewFake(start)

		require.NoError(t, fake.Sleep(context.Background(), 0))

		assert.True(t, fake.Now().Equal(start))
		assert.Empty(t, fake.Slept())
	})

	t.Run("cancelled context stops the sleep", func(t *testing.T) {
		fake := NewFake(start)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, fake.Sleep(ctx, time.Minute), context.Canceled)
		assert.True(t, fake.Now().Equal(start))
	})
}
