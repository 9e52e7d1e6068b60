package game

import (
	"context"
	"time"
)

// countdown drives a session's once-per-interval wake-up. The tick func
// returns false to stop the loop from inside.
type countdown struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func startCountdown(interval time.Duration, generation uint64, tick func(generation uint64) bool) *countdown {
	ctx, cancel := context.WithCancel(context.Background())
	c := &countdown{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !tick(generation) {
					return
				}
			}
		}
	}()

	return c
}

// stop cancels the loop without waiting, so it is safe to call while
// holding the session lock. A tick already in flight is discarded by its
// stale generation.
func (c *countdown) stop() {
	if c != nil {
		c.cancel()
	}
}

// wait blocks until the loop has exited
func (c *countdown) wait() {
	if c != nil {
		<-c.done
	}
}
