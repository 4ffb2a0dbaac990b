package cache

import (
	"sync"
	"time"

	"pesagem/models"
)

// ExportCache holds generated PDFs until the browser downloads them.
type ExportCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	exports map[string]models.Export
	now     func() time.Time
}

func NewExportCache(ttl time.Duration) *ExportCache {
	return &ExportCache{ttl: ttl, exports: make(map[string]models.Export), now: time.Now}
}

func (c *ExportCache) Add(token string, export models.Export) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.exports {
		if now.Sub(e.CreatedAt) > c.ttl {
			delete(c.exports, k)
		}
	}
	if export.CreatedAt.IsZero() {
		export.CreatedAt = now
	}
	c.exports[token] = export
}

// Get returns the export for token unless it has expired.
func (c *ExportCache) Get(token string) (models.Export, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.exports[token]
	if !ok || c.now().Sub(e.CreatedAt) > c.ttl {
		return models.Export{}, false
	}
	return e, true
}
