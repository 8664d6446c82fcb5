package countdown

import (
	"context"
	"fmt"
	"time"
)

// Countdown re-derives the seconds left until a server-supplied
// expiration once per tick. It is a presentation timer: reaching zero
// fires OnExpire (typically a re-fetch of the order) and stops, but
// the backend alone decides when the order actually expires.
type Countdown struct {
	ExpiresAt time.Time

	// Interval defaults to one second.
	Interval time.Duration

	OnTick   func(remaining time.Duration)
	OnExpire func()

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// Run blocks until the countdown reaches zero or ctx is cancelled.
// OnTick fires immediately and then once per interval; OnExpire fires
// exactly once, at zero.
func (c *Countdown) Run(ctx context.Context) error {
	interval := c.Interval
	if interval <= 0 {
		interval = time.Second
	}
	now := c.Now
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		remaining := c.ExpiresAt.Sub(now())
		if remaining < 0 {
			remaining = 0
		}

		if c.OnTick != nil {
			c.OnTick(remaining)
		}

		if remaining == 0 {
			if c.OnExpire != nil {
				c.OnExpire()
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Format renders a remaining duration as MM:SS for display.
func Format(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
