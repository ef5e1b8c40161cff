package controller

import "time"

// SetClock replaces the limiter's time source.
func (l *RateLimiter) SetClock(now func() time.Time) {
	l.now = now
}

// Clients returns the number of tracked clients.
func (l *RateLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.clients)
}
