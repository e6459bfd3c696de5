package consumer

import (
	"context"
	"time"
)

// Backoff is an exponential retry delay. Zero fields take the defaults.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration
}

const (
	defaultBackoffInitial = 500 * time.Millisecond
	defaultBackoffMax     = 30 * time.Second
)

// Delay returns the wait before retry attempt n, starting at 1.
func (b Backoff) Delay(attempt int) time.Duration {
	initial, ceiling := b.Initial, b.Max
	if initial <= 0 {
		initial = defaultBackoffInitial
	}
	if ceiling <= 0 {
		ceiling = defaultBackoffMax
	}

	d := initial
	for i := 1; i < attempt && d < ceiling; i++ {
		d *= 2
	}
	if d > ceiling {
		d = ceiling
	}
	return d
}

// wait sleeps for d and reports false when ctx ends first.
func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
