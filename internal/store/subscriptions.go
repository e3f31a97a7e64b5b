/**
 * @description
 * In-memory cache of subscription requests keyed by subscription id. Admin
 * transitions patch the cached status optimistically before the reconciling
 * refetch replaces the whole cache.
 */

package store

import (
	"sort"
	"sync"

	"github.com/workbridge/client-gateway/internal/domain"
)

// SubscriptionCache holds the admin session's view of subscription requests.
type SubscriptionCache struct {
	mu      sync.RWMutex
	subs    map[int64]domain.Subscription
	version uint64
}

// NewSubscriptionCache creates an empty subscription cache.
func NewSubscriptionCache() *SubscriptionCache {
	return &SubscriptionCache{subs: make(map[int64]domain.Subscription)}
}

// ReplaceAll swaps the cache contents for the server's current truth.
func (c *SubscriptionCache) ReplaceAll(subs []domain.Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = make(map[int64]domain.Subscription, len(subs))
	for _, s := range subs {
		c.subs[s.ID] = s
	}
	c.version++
}

// Get returns the cached subscription, if present.
func (c *SubscriptionCache) Get(id int64) (domain.Subscription, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.subs[id]
	return s, ok
}

// List returns all cached subscriptions ordered by id.
func (c *SubscriptionCache) List() []domain.Subscription {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Subscription, 0, len(c.subs))
	for _, s := range c.subs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out
}

// Patch applies fn to the cached subscription, if present (optimistic hint).
func (c *SubscriptionCache) Patch(id int64, fn func(*domain.Subscription)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.subs[id]
	if !ok {
		return false
	}
	fn(&s)
	c.subs[id] = s
	c.version++
	return true
}

// Version returns the write counter, monotonically increasing per mutation.
func (c *SubscriptionCache) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}
