/**
 * @description
 * This package holds the per-session in-memory entity caches the orchestration
 * layer renders from. The remote job service is the source of truth; every
 * mutation ends with a full refetch that replaces the relevant cache, and any
 * local Patch is only a short-lived optimistic hint until that refetch lands.
 *
 * Each cache carries a version counter bumped on every write, which makes
 * "optimistic update superseded by server truth" observable in tests and logs.
 * Mutation of a given cache is confined to the service that owns its refresh,
 * so the RWMutex only guards against concurrent facade requests, not against
 * cross-component writes.
 */

package store

// Caches bundles the per-session entity caches handed to the orchestration
// services.
type Caches struct {
	Jobs          *JobCache
	Applications  *ApplicationCache
	Subscriptions *SubscriptionCache
	Users         *UserCache
}

// NewCaches creates an empty cache set for a session.
func NewCaches() *Caches {
	return &Caches{
		Jobs:          NewJobCache(),
		Applications:  NewApplicationCache(),
		Subscriptions: NewSubscriptionCache(),
		Users:         NewUserCache(),
	}
}
