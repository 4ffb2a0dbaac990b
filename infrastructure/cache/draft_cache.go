package cache

import (
	"sync"
	"time"

	"pesagem/models"
)

// DraftIdleTTL is how long an untouched draft is kept before it is dropped.
var DraftIdleTTL = 24 * time.Hour

type draftEntry struct {
	draft     models.Draft
	updatedAt time.Time
}

// DraftCache stores one form draft per browser token. All transitions of a
// draft go through Update, which runs them one at a time.
type DraftCache struct {
	mu     sync.Mutex
	drafts map[string]draftEntry
	now    func() time.Time
}

func NewDraftCache() *DraftCache {
	return &DraftCache{drafts: make(map[string]draftEntry), now: time.Now}
}

// Get returns a copy of the draft for token, or the empty draft.
func (c *DraftCache) Get(token string) models.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drafts[token].draft.Clone()
}

// Update replaces the draft for token with the result of fn. The result is
// stored even when fn returns an error so typed input survives a failed
// action; fn is expected to leave the record itself unchanged in that case.
func (c *DraftCache) Update(token string, fn func(models.Draft) (models.Draft, error)) (models.Draft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.sweep(now)
	next, err := fn(c.drafts[token].draft.Clone())
	c.drafts[token] = draftEntry{draft: next, updatedAt: now}
	return next.Clone(), err
}

// Len returns the number of stored drafts.
func (c *DraftCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.drafts)
}

func (c *DraftCache) sweep(now time.Time) {
	for token, entry := range c.drafts {
		if now.Sub(entry.updatedAt) > DraftIdleTTL {
			delete(c.drafts, token)
		}
	}
}
