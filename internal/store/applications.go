/**
 * @description
 * In-memory cache of applications keyed by the service-assigned application id,
 * with lookups by job and by the (job, user) composite identity.
 */

package store

import (
	"sort"
	"sync"

	"github.com/workbridge/client-gateway/internal/domain"
)

// ApplicationCache holds the session's view of applications across all of the
// caller's jobs.
type ApplicationCache struct {
	mu      sync.RWMutex
	apps    map[int64]domain.Application
	version uint64
}

// NewApplicationCache creates an empty application cache.
func NewApplicationCache() *ApplicationCache {
	return &ApplicationCache{apps: make(map[int64]domain.Application)}
}

// ReplaceAll swaps the cache contents for the server's current truth.
func (c *ApplicationCache) ReplaceAll(apps []domain.Application) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apps = make(map[int64]domain.Application, len(apps))
	for _, a := range apps {
		c.apps[a.ID] = a
	}
	c.version++
}

// Get returns the cached application by its service-assigned id.
func (c *ApplicationCache) Get(id int64) (domain.Application, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.apps[id]
	return a, ok
}

// GetByJobAndUser returns the application for the composite identity, if cached.
func (c *ApplicationCache) GetByJobAndUser(jobID, userID int64) (domain.Application, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.apps {
		if a.JobID == jobID && a.UserID == userID {
			return a, true
		}
	}
	return domain.Application{}, false
}

// ListByJob returns the cached applications for one job, ordered by id.
func (c *ApplicationCache) ListByJob(jobID int64) []domain.Application {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Application, 0)
	for _, a := range c.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out
}

// Version returns the write counter, monotonically increasing per mutation.
func (c *ApplicationCache) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}
