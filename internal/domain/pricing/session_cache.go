package pricing

import (
	"context"
	"sync"
	"time"
)

// SessionCache remembers the resolved Region per visitor session so geo
// detection runs once per session. It is owned by whoever constructs it; there
// is no package-level cache. Dropping an entry is always safe because Resolve
// is deterministic.
type SessionCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]sessionEntry
}

type sessionEntry struct {
	region  Region
	expires time.Time
}

// NewSessionCache builds a cache. A ttl <= 0 keeps entries until deleted.
func NewSessionCache(ttl time.Duration) *SessionCache {
	return &SessionCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]sessionEntry),
	}
}

func (c *SessionCache) Get(_ context.Context, sessionID string) (Region, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[sessionID]
	if !ok {
		return Region{}, false, nil
	}
	if !e.expires.IsZero() && !c.now().Before(e.expires) {
		delete(c.entries, sessionID)
		return Region{}, false, nil
	}
	return e.region, true, nil
}

func (c *SessionCache) Set(_ context.Context, sessionID string, r Region) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := sessionEntry{region: r}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}
	c.entries[sessionID] = e
	return nil
}

func (c *SessionCache) Delete(_ context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, sessionID)
	return nil
}

// size reports the number of entries, expired ones included.
func (c *SessionCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
