package cache

import (
	"sync"

	"github.com/guiate/guiate/pkg/core"
)

// PlayerCache indexes the football roster by Wikidata ID so guess
// checks never scan the roster slice.
type PlayerCache struct {
	mu      sync.RWMutex
	players map[string]core.Player
}

// NewPlayerCache builds the index from a loaded roster.
func NewPlayerCache(roster []core.Player) *PlayerCache {
	players := make(map[string]core.Player, len(roster))
	for _, p := range roster {
		players[p.ID] = p
	}
	return &PlayerCache{players: players}
}

// Get retrieves a player by ID
func (c *PlayerCache) Get(id string) (core.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.players[id]
	return p, ok
}

// Len returns the number of indexed players
func (c *PlayerCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.players)
}
