package progression

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// missionCache holds each user's completed mission ids with time-based expiry.
// Writes that go through this service invalidate the user's entry; writes made elsewhere
// become visible once the entry expires.
//
// Every invalidation stamps the user with a fresh generation. A load records the generation
// before it reads the store and only fills the cache if no invalidation happened meanwhile,
// so a read that raced a completion cannot park the old set for a whole TTL.
type missionCache struct {
	mu   sync.Mutex
	sets *expirable.LRU[string, map[int64]struct{}]
	gens *lru.Cache[string, uint64]
	next uint64
	// floor is the highest generation dropped from gens; absent users report it
	floor uint64
}

func newMissionCache(size int, ttl time.Duration) *missionCache {
	c := &missionCache{
		sets: expirable.NewLRU[string, map[int64]struct{}](size, nil, ttl),
	}
	// Evictions only happen inside Invalidate, which holds mu
	gens, err := lru.NewWithEvict[string, uint64](size, func(_ string, gen uint64) {
		c.floor = max(c.floor, gen)
	})
	if err != nil {
		panic(err)
	}
	c.gens = gens
	return c
}

// generation must be called with mu held
func (c *missionCache) generation(userID string) uint64 {
	if gen, ok := c.gens.Peek(userID); ok {
		return gen
	}
	return c.floor
}

// Get returns the completed set and whether it was cached
func (c *missionCache) Get(userID string) (map[int64]struct{}, bool) {
	return c.sets.Get(userID)
}

// Begin snapshots the user's generation ahead of a store read
func (c *missionCache) Begin(userID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation(userID)
}

// Set builds the completed set from a read that started at gen and caches it
// unless the user was invalidated since
func (c *missionCache) Set(userID string, gen uint64, missions []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(missions))
	for _, m := range missions {
		set[m] = struct{}{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation(userID) == gen {
		c.sets.Add(userID, set)
	}
	return set
}

// Invalidate drops a user's entry and fences off loads already in flight
func (c *missionCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	c.gens.Add(userID, c.next)
	c.sets.Remove(userID)
}

// Len reports the number of cached users
func (c *missionCache) Len() int {
	return c.sets.Len()
}
