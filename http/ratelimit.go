package http

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultClientIdleTimeout is how long a client may stay silent before its
// limiter is dropped.
const DefaultClientIdleTimeout = 10 * time.Minute

// ClientLimiter provides per-client rate limiting using token buckets.
// It creates a separate limiter for each client key so one noisy client
// cannot starve the others.
//
// Limiters of clients idle for longer than IdleTimeout are swept during
// Allow, so the number of tracked clients is bounded by the clients seen
// within one IdleTimeout window.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	rps       float64
	burst     int
	lastSweep time.Time

	// IdleTimeout bounds how long an unused limiter is kept.
	// Defaults to DefaultClientIdleTimeout.
	IdleTimeout time.Duration
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with the given burst. A burst below 1 is raised to 1.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		clients:     make(map[string]*client),
		rps:         rps,
		burst:       burst,
		lastSweep:   time.Now(),
		IdleTimeout: DefaultClientIdleTimeout,
	}
}

// Allow reports whether the client identified by key may make a request now.
func (l *ClientLimiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.IdleTimeout {
		l.sweep(now)
	}
	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	l.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

// Len returns the number of clients currently tracked.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// sweep drops clients idle since before now-IdleTimeout. Caller holds mu.
func (l *ClientLimiter) sweep(now time.Time) {
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.IdleTimeout {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}
