package service

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	searchCacheTTL      = 60 * time.Second
	connectionsCacheTTL = 30 * time.Second
)

// Caches bundles the read caches shared across services. A single instance
// is wired through the container so any write path can drop every cached
// view: a quick-added family member must show up in record searches, and a
// record update must show up in connection listings.
type Caches struct {
	search      *cache.Cache
	connections *cache.Cache
}

func NewCaches() *Caches {
	return &Caches{
		search:      cache.New(searchCacheTTL, 5*time.Minute),
		connections: cache.New(connectionsCacheTTL, 5*time.Minute),
	}
}

// FlushAll clears every cached read. Called on each write, whichever service
// performed it.
func (c *Caches) FlushAll() {
	c.search.Flush()
	c.connections.Flush()
}
