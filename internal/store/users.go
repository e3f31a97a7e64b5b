/**
 * @description
 * In-memory cache of platform accounts, refreshed from the admin user listing.
 */

package store

import (
	"sort"
	"sync"

	"github.com/workbridge/client-gateway/internal/domain"
)

// UserCache holds the admin session's view of platform accounts.
type UserCache struct {
	mu      sync.RWMutex
	users   map[int64]domain.User
	version uint64
}

// NewUserCache creates an empty user cache.
func NewUserCache() *UserCache {
	return &UserCache{users: make(map[int64]domain.User)}
}

// ReplaceAll swaps the cache contents for the server's current truth.
func (c *UserCache) ReplaceAll(users []domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users = make(map[int64]domain.User, len(users))
	for _, u := range users {
		c.users[u.ID] = u
	}
	c.version++
}

// Get returns the cached user, if present.
func (c *UserCache) Get(id int64) (domain.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.users[id]
	return u, ok
}

// List returns all cached users ordered by id.
func (c *UserCache) List() []domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.User, 0, len(c.users))
	for _, u := range c.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out
}

// Version returns the write counter, monotonically increasing per mutation.
func (c *UserCache) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}
