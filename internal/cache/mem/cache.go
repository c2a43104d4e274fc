package mem

import (
	"sync"

	"github.com/stonehenge-collective/ladderserver/internal/domain"
	"github.com/stonehenge-collective/ladderserver/internal/normalize"
)

// Cache memoizes the last projected singles leaderboard between
// replays. It exists for the bot's by-name lookups; any new match
// invalidates it and the next query replays from scratch.
type Cache struct {
	mu        sync.RWMutex
	valid     bool
	standings []domain.Standing
	byName    map[string]domain.Standing
}

func New() *Cache {
	return &Cache{
		byName: make(map[string]domain.Standing),
	}
}

func (c *Cache) Update(standings []domain.Standing) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.standings = standings
	c.byName = make(map[string]domain.Standing, len(standings))
	for _, s := range standings {
		c.byName[normalize.Name(s.Entity)] = s
	}
	c.valid = true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}

func (c *Cache) Standings() ([]domain.Standing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid {
		return nil, false
	}
	return c.standings, true
}

func (c *Cache) GetByName(name string) (domain.Standing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid {
		return domain.Standing{}, false
	}
	s, ok := c.byName[normalize.Name(name)]
	return s, ok
}
