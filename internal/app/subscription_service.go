/**
 * @description
 * The admin subscription approval workflow. The legacy client drove every
 * transition through one overloaded call with a stringly-typed status; here each
 * intent is its own operation over a tagged transition, validated against the
 * cached status before anything is sent. Token counts only ever travel for
 * 20_token plans: a count supplied for an unlimited plan is dropped with a log
 * line instead of being written onto a record it would corrupt.
 *
 * Every transition applies an optimistic cache patch and then reconciles with a
 * full refetch, so the patch is a short-lived UI hint superseded by server
 * truth, never the final state.
 */

package app

import (
	"context"
	"log"

	"github.com/workbridge/client-gateway/internal/domain"
)

// Subscriptions returns the cached subscription listing.
func (s *Service) Subscriptions() []domain.Subscription { return s.caches.Subscriptions.List() }

// Users returns the cached account listing.
func (s *Service) Users() []domain.User { return s.caches.Users.List() }

// ApproveSubscription transitions a pending request to active, optionally
// setting the token balance for 20_token plans.
func (s *Service) ApproveSubscription(ctx context.Context, userID, subscriptionID int64, tokens *int64) error {
	return s.transitionSubscription(ctx, userID, subscriptionID, domain.SubscriptionOpApprove, tokens)
}

// RejectSubscription transitions a pending request to inactive.
func (s *Service) RejectSubscription(ctx context.Context, userID, subscriptionID int64) error {
	return s.transitionSubscription(ctx, userID, subscriptionID, domain.SubscriptionOpReject, nil)
}

// ReopenSubscription returns a decided request to pending. This is the former
// "reject with status=pending" path given its real name.
func (s *Service) ReopenSubscription(ctx context.Context, userID, subscriptionID int64) error {
	return s.transitionSubscription(ctx, userID, subscriptionID, domain.SubscriptionOpReopen, nil)
}

// ActivateSubscription is the manual admin override inactive -> active.
func (s *Service) ActivateSubscription(ctx context.Context, userID, subscriptionID int64) error {
	return s.transitionSubscription(ctx, userID, subscriptionID, domain.SubscriptionOpActivate, nil)
}

// DeactivateSubscription is the manual admin override active -> inactive.
func (s *Service) DeactivateSubscription(ctx context.Context, userID, subscriptionID int64) error {
	return s.transitionSubscription(ctx, userID, subscriptionID, domain.SubscriptionOpDeactivate, nil)
}

// SetTokenBalance edits the numeric balance of an already-active 20_token
// subscription. Split from approval: this is a field edit, not a transition.
func (s *Service) SetTokenBalance(ctx context.Context, userID, subscriptionID int64, tokens int64) error {
	if tokens < 0 {
		return newValidationError("token balance cannot be negative", "token_count")
	}

	sub, ok := s.caches.Subscriptions.Get(subscriptionID)
	if !ok {
		// The cache may simply not have been loaded yet for this session.
		if err := s.RefreshSubscriptions(ctx); err != nil {
			return err
		}
		if sub, ok = s.caches.Subscriptions.Get(subscriptionID); !ok {
			return newStateError("subscription", subscriptionID, "unknown subscription")
		}
	}
	if sub.Status != domain.SubscriptionStatusActive {
		return newStateError("subscription", subscriptionID, "token balance is editable only while active")
	}
	if !sub.Plan.TokenBased() {
		return newStateError("subscription", subscriptionID, "unlimited plans carry no token balance")
	}

	update := domain.SubscriptionUpdate{
		UserID:         userID,
		SubscriptionID: subscriptionID,
		Status:         domain.SubscriptionStatusActive,
		Tokens:         &tokens,
	}
	if err := s.api.UpdateUserSubscription(ctx, update); err != nil {
		return err
	}
	s.caches.Subscriptions.Patch(subscriptionID, func(d *domain.Subscription) { d.UserTokens = tokens })
	s.reconcile(ctx, "subscriptions", s.RefreshSubscriptions)
	return nil
}

func (s *Service) transitionSubscription(ctx context.Context, userID, subscriptionID int64, op domain.SubscriptionOp, tokens *int64) error {
	if sub, ok := s.caches.Subscriptions.Get(subscriptionID); ok {
		if !domain.AllowedSubscriptionOp(sub.Status, op) {
			return newStateError("subscription", subscriptionID, "cannot "+string(op)+" while "+string(sub.Status))
		}
		if tokens != nil && !sub.Plan.TokenBased() {
			log.Printf("level=warn component=orchestrator op=%s subscription_id=%d msg=\"token count supplied for unlimited plan; dropping\"", op, subscriptionID)
			tokens = nil
		}
	}

	update := domain.SubscriptionUpdate{
		UserID:         userID,
		SubscriptionID: subscriptionID,
		Status:         op.Target(),
		Tokens:         tokens,
	}
	if err := s.api.UpdateUserSubscription(ctx, update); err != nil {
		return err
	}

	s.caches.Subscriptions.Patch(subscriptionID, func(d *domain.Subscription) {
		d.Status = op.Target()
		if tokens != nil && d.Plan.TokenBased() {
			d.UserTokens = *tokens
		}
	})
	s.reconcile(ctx, "subscriptions", s.RefreshSubscriptions)
	return nil
}
