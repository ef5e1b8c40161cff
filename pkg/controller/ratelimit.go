package controller

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP with a token bucket that
// refills requests tokens every window.
type RateLimiter struct {
	limit             rate.Limit
	burst             int
	ttl               time.Duration
	trustForwardedFor bool
	now               func() time.Time

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows requests requests per window for each client.
// Idle clients are forgotten after one window. Clients are identified by the
// connection's peer address; forwarding headers are only honoured when
// trustForwardedFor is set, i.e. when the server sits behind a trusted proxy.
func NewRateLimiter(requests int, window time.Duration, trustForwardedFor bool) *RateLimiter {
	return &RateLimiter{
		limit:             rate.Limit(float64(requests) / window.Seconds()),
		burst:             requests,
		ttl:               window,
		trustForwardedFor: trustForwardedFor,
		now:               time.Now,
		clients:           map[string]*client{},
	}
}

// ClientKey returns the address r is rate limited by.
func (l *RateLimiter) ClientKey(r *http.Request) string {
	if l.trustForwardedFor {
		return GetClientIP(r)
	}

	return GetRemoteIP(r)
}

// Allow reports whether a request from ip may proceed now, and if not, how
// long the client should wait.
func (l *RateLimiter) Allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	if now.Sub(l.lastSweep) >= l.ttl {
		l.evict(now)
		l.lastSweep = now
	}

	r := c.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, l.ttl
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)

		return false, delay
	}

	return true, 0
}

// evict drops clients idle for longer than ttl. Callers hold mu.
func (l *RateLimiter) evict(now time.Time) {
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > l.ttl {
			delete(l.clients, ip)
		}
	}
}

// WithRateLimit returns a middleware rejecting requests over the limit with
// 429 Too Many Requests. A nil limiter disables rate limiting.
func WithRateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ok, wait := limiter.Allow(limiter.ClientKey(r)); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"code":"RATE_LIMITED","message":"Too many requests from this IP, please try again later."}`))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
