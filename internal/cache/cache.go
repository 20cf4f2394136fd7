// Package cache memoizes icon derivation per seed.
package cache

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"identicon/internal/dot"
)

// DefaultSize is the capacity used by the CLI.
const DefaultSize = 1024

// Stats counts lookups since the cache was created.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Cache holds recently derived icons keyed by seed bytes.
// It is safe for concurrent use.
type Cache struct {
	icons  *lru.Cache[string, dot.Icon]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates a cache holding at most size icons.
func New(size int) (*Cache, error) {
	icons, err := lru.New[string, dot.Icon](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cache{icons: icons}, nil
}

// Derive returns the icon for seed, deriving it on a miss.
func (c *Cache) Derive(seed []byte) dot.Icon {
	key := string(seed)
	if icon, ok := c.icons.Get(key); ok {
		c.hits.Add(1)
		return icon
	}
	c.misses.Add(1)
	icon := dot.Derive(seed)
	c.icons.Add(key, icon)
	return icon
}

func (c *Cache) Len() int {
	return c.icons.Len()
}

func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}
