package rates

import (
	"sync"
	"time"
)

const cacheTTL = 5 * time.Minute

// converterCache holds the most recently built Converter so that display
// pipelines do not hit the database on every request.
type converterCache struct {
	mu        sync.RWMutex
	converter *Converter
	expiresAt time.Time
}

func newConverterCache() *converterCache {
	return &converterCache{}
}

func (c *converterCache) get() (*Converter, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.converter == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	return c.converter, true
}

func (c *converterCache) set(conv *Converter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.converter = conv
	c.expiresAt = time.Now().Add(cacheTTL)
}

func (c *converterCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.converter = nil
}
