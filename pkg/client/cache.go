package client

import "sync"

// collectionCache holds raw list bodies keyed by collection.
type collectionCache struct {
	mu      sync.RWMutex
	entries map[Collection][]byte
}

func newCollectionCache() *collectionCache {
	return &collectionCache{entries: make(map[Collection][]byte)}
}

func (c *collectionCache) Get(col Collection) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.entries[col]
	return data, ok
}

func (c *collectionCache) Set(col Collection, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[col] = data
}

func (c *collectionCache) Invalidate(cols ...Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, col := range cols {
		delete(c.entries, col)
	}
}
