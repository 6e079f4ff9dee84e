package admission

import (
	"sync"
	"time"
)

const evictAfterWindows = 10

// Debouncer applies a per-key cool-down window, the admission control a
// transport puts in front of the agent. Unlike a plain map keyed by sender
// it evicts stale keys, so memory stays bounded.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[string]time.Time
	now    func() time.Time
}

func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = time.Second
	}
	return &Debouncer{
		window: window,
		seen:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// Allow reports whether the key is outside its cool-down window and, if
// so, restarts the window.
func (d *Debouncer) Allow(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if last, ok := d.seen[key]; ok && now.Sub(last) < d.window {
		return false
	}
	d.seen[key] = now
	d.evictStale(now)
	return true
}

// Len returns the number of tracked keys.
func (d *Debouncer) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

func (d *Debouncer) evictStale(now time.Time) {
	cutoff := now.Add(-evictAfterWindows * d.window)
	for key, last := range d.seen {
		if last.Before(cutoff) {
			delete(d.seen, key)
		}
	}
}
