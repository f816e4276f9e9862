package wsdl

import "sync"

// Cache memoizes extracted Definitions by resolved location. A Definitions
// is immutable once extracted, so cached values can be shared freely
// between callers and goroutines.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	loader  *Loader
}

type cacheEntry struct {
	once sync.Once
	defs *Definitions
	err  error
}

// NewCache returns a cache loading documents through loader. A nil loader
// uses a default one rooted at the current directory.
func NewCache(loader *Loader) *Cache {
	if loader == nil {
		loader = NewLoader("")
	}
	return &Cache{
		entries: make(map[string]*cacheEntry),
		loader:  loader,
	}
}

// Get returns the extracted model for location, loading it on first use.
// Concurrent callers for the same location share a single load.
func (c *Cache) Get(location string) (*Definitions, error) {
	resolved, err := c.loader.resolveLocation(location)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	entry, ok := c.entries[resolved]
	c.mu.RUnlock()

	if !ok {
		c.mu.Lock()
		if entry, ok = c.entries[resolved]; !ok {
			entry = &cacheEntry{}
			c.entries[resolved] = entry
		}
		c.mu.Unlock()
	}

	entry.once.Do(func() {
		entry.defs, entry.err = c.loader.Load(resolved)
	})
	return entry.defs, entry.err
}

// Remove drops the cached entry for location.
func (c *Cache) Remove(location string) {
	resolved, err := c.loader.resolveLocation(location)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, resolved)
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}
