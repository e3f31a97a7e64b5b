/**
 * @description
 * In-memory cache of job postings keyed by id.
 */

package store

import (
	"sort"
	"sync"

	"github.com/workbridge/client-gateway/internal/domain"
)

// JobCache holds the session's view of job postings.
type JobCache struct {
	mu      sync.RWMutex
	jobs    map[int64]domain.Job
	version uint64
}

// NewJobCache creates an empty job cache.
func NewJobCache() *JobCache {
	return &JobCache{jobs: make(map[int64]domain.Job)}
}

// ReplaceAll swaps the cache contents for the server's current truth.
func (c *JobCache) ReplaceAll(jobs []domain.Job) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs = make(map[int64]domain.Job, len(jobs))
	for _, j := range jobs {
		c.jobs[j.ID] = j
	}
	c.version++
}

// Get returns the cached job, if present.
func (c *JobCache) Get(id int64) (domain.Job, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	j, ok := c.jobs[id]
	return j, ok
}

// List returns all cached jobs ordered by id.
func (c *JobCache) List() []domain.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Job, 0, len(c.jobs))
	for _, j := range c.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out
}

// Upsert inserts or overwrites one job (optimistic hint after a create).
func (c *JobCache) Upsert(job domain.Job) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs[job.ID] = job
	c.version++
}

// Patch applies fn to the cached job, if present (optimistic hint).
func (c *JobCache) Patch(id int64, fn func(*domain.Job)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	j, ok := c.jobs[id]
	if !ok {
		return false
	}
	fn(&j)
	c.jobs[id] = j
	c.version++
	return true
}

// Delete removes one job from the cache.
func (c *JobCache) Delete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.jobs, id)
	c.version++
}

// Version returns the write counter, monotonically increasing per mutation.
func (c *JobCache) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}
