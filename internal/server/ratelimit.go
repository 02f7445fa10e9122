package server

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL   = 10 * time.Minute
	limiterPruneSize = 1024
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter keeps one token bucket per client address.
type ipRateLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*limiterEntry
}

// newIPRateLimiter allows perMinute requests per address with the given burst.
// A non-positive perMinute disables limiting.
func newIPRateLimiter(perMinute, burst int) *ipRateLimiter {
	if perMinute <= 0 {
		return &ipRateLimiter{limit: rate.Inf}
	}
	if burst <= 0 {
		burst = 1
	}
	return &ipRateLimiter{
		limit:   rate.Limit(float64(perMinute) / 60),
		burst:   burst,
		clients: make(map[string]*limiterEntry),
	}
}

func (l *ipRateLimiter) Allow(ip string) bool {
	if l.limit == rate.Inf {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if len(l.clients) >= limiterPruneSize {
		for key, entry := range l.clients {
			if now.Sub(entry.lastSeen) > limiterIdleTTL {
				delete(l.clients, key)
			}
		}
	}

	entry, ok := l.clients[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}
