package cache

import (
	"sync"
	"time"
)

// SessionCache maps admin session tokens to their expiry times
type SessionCache struct {
	mu       sync.RWMutex
	sessions map[string]time.Time
}

// NewSessionCache creates a new SessionCache
func NewSessionCache() *SessionCache {
	return &SessionCache{
		sessions: make(map[string]time.Time),
	}
}

// Valid reports whether a token exists and has not expired
func (c *SessionCache) Valid(token string, now time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	expiry, ok := c.sessions[token]
	return ok && now.Before(expiry)
}

// Set stores a token with its expiry time
func (c *SessionCache) Set(token string, expiry time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[token] = expiry
}

// Delete removes a token
func (c *SessionCache) Delete(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, token)
}

// Purge removes all tokens that expired before now
func (c *SessionCache) Purge(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for token, expiry := range c.sessions {
		if !now.Before(expiry) {
			delete(c.sessions, token)
		}
	}
}

// Reset clears all sessions from the cache
func (c *SessionCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions = make(map[string]time.Time)
}
