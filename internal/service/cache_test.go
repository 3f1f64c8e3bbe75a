package service

import (
	"testing"

	"github.com/patrickmn/go-cache"
)

func TestFlushAllClearsBothCaches(t *testing.T) {
	caches := NewCaches()
	caches.search.Set("search-key", []string{"a"}, cache.DefaultExpiration)
	caches.connections.Set("connections:1", []string{"b"}, cache.DefaultExpiration)

	caches.FlushAll()

	if _, found := caches.search.Get("search-key"); found {
		t.Error("search cache entry survived FlushAll")
	}
	if _, found := caches.connections.Get("connections:1"); found {
		t.Error("connections cache entry survived FlushAll")
	}
}
