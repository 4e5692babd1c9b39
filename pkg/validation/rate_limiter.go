package validation

import (
	"sync"
	"time"
)

// RateLimiter is a token bucket per key. Hosts use it to keep a stream of
// rejected frames from flooding the log with identical warnings.
type RateLimiter struct {
	maxTokens int
	window    time.Duration
	now       func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// NewRateLimiter allows up to maxEvents per key within each window.
func NewRateLimiter(maxEvents int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxTokens: maxEvents,
		window:    window,
		now:       time.Now,
		buckets:   make(map[string]*bucket),
	}
}

// Allow consumes a token for key and reports whether one was available.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: rl.maxTokens, lastRefill: now}
		rl.buckets[key] = b
	}

	// Refill proportionally to the fraction of the window that has passed
	if elapsed := now.Sub(b.lastRefill); elapsed > 0 && b.tokens < rl.maxTokens {
		add := int(float64(rl.maxTokens) * float64(elapsed) / float64(rl.window))
		if add > 0 {
			b.tokens = min(b.tokens+add, rl.maxTokens)
			b.lastRefill = now
		}
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}
