/**
 * @description
 * This file defines the orchestration Service: the core that sits between the UI
 * facade and the remote job service. It validates intents against the cached
 * entity state, issues the remote call, and reconciles the caches with a full
 * refetch afterwards. The MarketAPI interface decouples the service from the
 * concrete HTTP client so tests can substitute stubs.
 *
 * Refresh failures after a successful mutation are logged and tolerated: the
 * cache stays stale until the next refresh trigger, and the user remains the
 * retry mechanism. There is no background reconciliation.
 *
 * @dependencies
 * - context, log: Standard Go libraries.
 * - golang.org/x/sync/singleflight: Per-key serialization of the rating write protocol.
 * - internal/domain, internal/store: Domain models and the per-session caches.
 */

package app

import (
	"context"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/workbridge/client-gateway/internal/domain"
	"github.com/workbridge/client-gateway/internal/store"
)

// MarketAPI is the surface of the remote job service the orchestration layer
// consumes. Implemented by *marketclient.Client.
type MarketAPI interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	GetJob(ctx context.Context, id int64) (*domain.Job, error)
	CreateJob(ctx context.Context, draft domain.JobDraft) (*domain.Job, error)
	UpdateJob(ctx context.Context, id int64, draft domain.JobDraft) (*domain.Job, error)
	DeleteJob(ctx context.Context, id int64) error
	EndJob(ctx context.Context, id int64) error
	UpdateJobStatus(ctx context.Context, id int64, lifeCycle domain.JobLifeCycle) error

	ListApplications(ctx context.Context) ([]domain.Application, error)
	UpdateApplicationStatus(ctx context.Context, applicationID int64, status domain.ApplicationStatus, jobID int64) error

	GetRating(ctx context.Context, jobID, userID int64) (*domain.Rating, error)
	SubmitRating(ctx context.Context, jobID, userID int64, value int) error
	UpdateRating(ctx context.Context, jobID, userID int64, value int) error
	DeleteRating(ctx context.Context, jobID, userID int64) error

	ListSubscriptions(ctx context.Context) ([]domain.Subscription, error)
	UpdateUserSubscription(ctx context.Context, update domain.SubscriptionUpdate) error

	ListUsers(ctx context.Context) ([]domain.User, error)
}

// Service provides the job/application/rating/subscription orchestration logic.
type Service struct {
	api    MarketAPI
	caches *store.Caches

	// ratingWrites serializes the check-then-act rating protocol per
	// (job, user) key, so a double submission cannot interleave.
	ratingWrites singleflight.Group
}

// NewService creates a new orchestration service instance.
func NewService(api MarketAPI, caches *store.Caches) *Service {
	return &Service{api: api, caches: caches}
}

// Caches exposes the session caches for read-side handlers.
func (s *Service) Caches() *store.Caches { return s.caches }

// RefreshJobs replaces the job cache with the server's current truth.
func (s *Service) RefreshJobs(ctx context.Context) error {
	jobs, err := s.api.ListJobs(ctx)
	if err != nil {
		return err
	}
	s.caches.Jobs.ReplaceAll(jobs)
	return nil
}

// RefreshApplications replaces the application cache with the server's truth.
func (s *Service) RefreshApplications(ctx context.Context) error {
	apps, err := s.api.ListApplications(ctx)
	if err != nil {
		return err
	}
	s.caches.Applications.ReplaceAll(apps)
	return nil
}

// RefreshSubscriptions replaces the subscription cache with the server's truth.
func (s *Service) RefreshSubscriptions(ctx context.Context) error {
	subs, err := s.api.ListSubscriptions(ctx)
	if err != nil {
		return err
	}
	s.caches.Subscriptions.ReplaceAll(subs)
	return nil
}

// RefreshUsers replaces the user cache with the server's truth.
func (s *Service) RefreshUsers(ctx context.Context) error {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	s.caches.Users.ReplaceAll(users)
	return nil
}

// reconcile runs a refresh after a successful mutation. A refresh failure does
// not fail the mutation; it leaves the cache stale until the next trigger.
func (s *Service) reconcile(ctx context.Context, what string, refresh func(context.Context) error) {
	if err := refresh(ctx); err != nil {
		log.Printf("level=warn component=orchestrator op=reconcile cache=%s msg=\"refetch failed; cache stale until next refresh\" err=%v", what, err)
	}
}
