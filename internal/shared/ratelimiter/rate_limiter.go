// Package ratelimiter bounds the frequency of outbound calls such as mail sends.
package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Limiter allows at most limit calls per interval, using a fixed window that
// resets when the interval elapses. The zero value is not usable; use New.
type Limiter struct {
	mu          sync.Mutex
	limit       int
	interval    time.Duration
	count       int
	windowStart time.Time
}

// New creates a Limiter permitting limit calls per interval.
func New(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:       limit,
		interval:    interval,
		windowStart: time.Now(),
	}
}

// Wait reserves one slot in the current window, blocking until the window
// resets if the limit has been reached. It returns the context's error if
// the context is cancelled while waiting.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		now := time.Now()
		if now.Sub(l.windowStart) >= l.interval {
			l.count = 0
			l.windowStart = now
		}
		if l.count < l.limit {
			l.count++
			l.mu.Unlock()
			return nil
		}
		sleep := l.interval - now.Sub(l.windowStart)
		l.mu.Unlock()

		if sleep <= 0 {
			continue
		}
		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
