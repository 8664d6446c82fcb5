package countdown_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/elouannasse/youshop-client/internal/countdown"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// steppedClock advances by one step per reading, making the tick
// sequence deterministic regardless of real ticker timing.
type steppedClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

func (c *steppedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.current
	c.current = c.current.Add(c.step)
	return t
}

func TestCountdownTicksDownAndExpires(t *testing.T) {
	start := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	clock := &steppedClock{current: start, step: time.Second}

	var (
		ticks       []time.Duration
		expireCount int
	)

	c := &countdown.Countdown{
		ExpiresAt: start.Add(3 * time.Second),
		Interval:  time.Millisecond,
		Now:       clock.Now,
		OnTick:    func(remaining time.Duration) { ticks = append(ticks, remaining) },
		OnExpire:  func() { expireCount++ },
	}

	require.NoError(t, c.Run(t.Context()))

	assert.Equal(t, []time.Duration{
		3 * time.Second,
		2 * time.Second,
		time.Second,
		0,
	}, ticks)
	assert.Equal(t, 1, expireCount)
}

func TestCountdownPastExpirationFiresImmediately(t *testing.T) {
	now := time.Now()

	var (
		ticks       []time.Duration
		expireCount int
	)

	c := &countdown.Countdown{
		ExpiresAt: now.Add(-time.Minute),
		OnTick:    func(remaining time.Duration) { ticks = append(ticks, remaining) },
		OnExpire:  func() { expireCount++ },
	}

	require.NoError(t, c.Run(t.Context()))

	assert.Equal(t, []time.Duration{0}, ticks)
	assert.Equal(t, 1, expireCount)
}

func TestCountdownCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	var expireCount int
	c := &countdown.Countdown{
		ExpiresAt: time.Now().Add(time.Hour),
		Interval:  time.Millisecond,
		OnTick:    func(time.Duration) { cancel() },
		OnExpire:  func() { expireCount++ },
	}

	err := c.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, expireCount)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00"},
		{"just over a minute", 65 * time.Second, "01:05"},
		{"half an hour", 30 * time.Minute, "30:00"},
		{"sub-second rounds", 900 * time.Millisecond, "00:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countdown.Format(tt.d))
		})
	}
}
