package cache

import (
	"sync"

	"github.com/guiate/guiate/pkg/core"
)

// DailyCache caches the selected country and player per date to avoid
// subsequent db reads. Latency in these calls is critical because every
// guess request resolves the day's answer.
type DailyCache struct {
	m         sync.Mutex
	Countries map[string]core.DailyCountry
	Players   map[string]core.DailyPlayer
}

func NewDailyCache() *DailyCache {
	return &DailyCache{
		m:         sync.Mutex{},
		Countries: make(map[string]core.DailyCountry),
		Players:   make(map[string]core.DailyPlayer),
	}
}

func (c *DailyCache) Reset() {
	c.m.Lock()
	defer c.m.Unlock()
	c.Countries = make(map[string]core.DailyCountry)
	c.Players = make(map[string]core.DailyPlayer)
}

func (c *DailyCache) GetCountry(date string) (core.DailyCountry, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	if d, ok := c.Countries[date]; ok {
		return d, true
	}
	return core.DailyCountry{}, false
}

func (c *DailyCache) GetPlayer(date string) (core.DailyPlayer, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	if d, ok := c.Players[date]; ok {
		return d, true
	}
	return core.DailyPlayer{}, false
}

func (c *DailyCache) AddCountry(d core.DailyCountry) {
	c.m.Lock()
	defer c.m.Unlock()
	c.Countries[d.Date] = d
}

func (c *DailyCache) AddPlayer(d core.DailyPlayer) {
	c.m.Lock()
	defer c.m.Unlock()
	c.Players[d.Date] = d
}

// DropCountry evicts a cached country selection, used when an admin
// forces a different answer for a date.
func (c *DailyCache) DropCountry(date string) {
	c.m.Lock()
	defer c.m.Unlock()
	delete(c.Countries, date)
}

// SafeCounter is a thread-safe counter
type SafeCounter struct {
	mu sync.Mutex
	v  int
}

func (c *SafeCounter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

func (c *SafeCounter) Set(v int) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

func (c *SafeCounter) Inc() {
	c.mu.Lock()
	c.v++
	c.mu.Unlock()
}
