// Package window provides a keyed sliding-window hit counter. The chat
// detectors (theta chant, caps scream, emoji surge, repeat text) and the
// scream cooldown share it.
package window

import (
	"sync"
	"time"

	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
)

// Counter tracks timestamped hits per key and prunes anything older than
// the window on every access.
type Counter struct {
	mu     sync.Mutex
	clock  clock.Clock
	window time.Duration
	hits   map[string][]time.Time
}

// New returns a counter with the given window
func New(c clock.Clock, window time.Duration) *Counter {
	if c == nil {
		c = clock.New()
	}
	return &Counter{
		clock:  c,
		window: window,
		hits:   make(map[string][]time.Time),
	}
}

// Add records n hits for key and reports whether the window now holds at
// least threshold hits. The caller decides whether to Reset on trigger.
func (c *Counter) Add(key string, n, threshold int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	hits := c.prune(key, now)
	for i := 0; i < n; i++ {
		hits = append(hits, now)
	}
	c.hits[key] = hits
	return threshold > 0 && len(hits) >= threshold
}

// Count returns the live hits for key
func (c *Counter) Count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.prune(key, c.clock.Now()))
}

// Reset clears key
func (c *Counter) Reset(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.hits, key)
}

// TryAcquire treats the window as a cooldown: it succeeds and records a hit
// only when key has no hit inside the window.
func (c *Counter) TryAcquire(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if len(c.prune(key, now)) > 0 {
		return false
	}
	c.hits[key] = []time.Time{now}
	return true
}

// prune drops hits at or beyond the window edge. Callers hold mu.
func (c *Counter) prune(key string, now time.Time) []time.Time {
	hits := c.hits[key]
	keep := 0
	for keep < len(hits) && now.Sub(hits[keep]) >= c.window {
		keep++
	}
	hits = hits[keep:]
	if len(hits) == 0 {
		delete(c.hits, key)
		return nil
	}
	c.hits[key] = hits
	return hits
}
