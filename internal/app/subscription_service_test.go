package app

import (
	"context"
	"errors"
	"testing"

	"github.com/workbridge/client-gateway/internal/domain"
)

func subscriptionStub() *marketStub {
	stub := newMarketStub()
	stub.subs = []domain.Subscription{
		{ID: 7, UserID: 3, Plan: domain.SubscriptionPlan20Token, Status: domain.SubscriptionStatusPending},
		{ID: 8, UserID: 4, Plan: domain.SubscriptionPlanUnlimited, Status: domain.SubscriptionStatusPending},
	}
	return stub
}

func tokens(n int64) *int64 { return &n }

func TestApproveSubscription_TokenPlanGetsBalance(t *testing.T) {
	stub := subscriptionStub()
	svc, caches := newTestService(stub)
	caches.Subscriptions.ReplaceAll(stub.subs)

	if err := svc.ApproveSubscription(context.Background(), 3, 7, tokens(20)); err != nil {
		t.Fatalf("ApproveSubscription returned error: %v", err)
	}

	sub, _ := caches.Subscriptions.Get(7)
	if sub.Status != domain.SubscriptionStatusActive {
		t.Fatalf("expected active subscription, got %s", sub.Status)
	}
	if sub.UserTokens != 20 {
		t.Fatalf("expected token balance 20, got %d", sub.UserTokens)
	}
	if len(stub.subUpdates) != 1 || stub.subUpdates[0].Tokens == nil || *stub.subUpdates[0].Tokens != 20 {
		t.Fatalf("expected the token count on the wire, got %+v", stub.subUpdates)
	}
}

func TestApproveSubscription_UnlimitedPlanDropsTokenCount(t *testing.T) {
	stub := subscriptionStub()
	svc, caches := newTestService(stub)
	caches.Subscriptions.ReplaceAll(stub.subs)

	if err := svc.ApproveSubscription(context.Background(), 4, 8, tokens(20)); err != nil {
		t.Fatalf("ApproveSubscription returned error: %v", err)
	}

	if len(stub.subUpdates) != 1 {
		t.Fatalf("expected one update, got %d", len(stub.subUpdates))
	}
	if stub.subUpdates[0].Tokens != nil {
		t.Fatal("expected token count to be dropped for an unlimited plan")
	}
	sub, _ := caches.Subscriptions.Get(8)
	if sub.Status != domain.SubscriptionStatusActive {
		t.Fatalf("expected active subscription, got %s", sub.Status)
	}
	if sub.UserTokens != 0 {
		t.Fatalf("expected unlimited plan record to stay clean, got token balance %d", sub.UserTokens)
	}
}

func TestApproveSubscription_OnlyPendingIsApprovable(t *testing.T) {
	stub := subscriptionStub()
	stub.subs[0].Status = domain.SubscriptionStatusActive
	svc, caches := newTestService(stub)
	caches.Subscriptions.ReplaceAll(stub.subs)

	err := svc.ApproveSubscription(context.Background(), 3, 7, nil)
	var sErr *StateError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
	if len(stub.subUpdates) != 0 {
		t.Fatal("expected no network call for an invalid transition")
	}
}

func TestRejectAndReopenSubscription(t *testing.T) {
	stub := subscriptionStub()
	svc, caches := newTestService(stub)
	caches.Subscriptions.ReplaceAll(stub.subs)

	if err := svc.RejectSubscription(context.Background(), 3, 7); err != nil {
		t.Fatalf("RejectSubscription returned error: %v", err)
	}
	sub, _ := caches.Subscriptions.Get(7)
	if sub.Status != domain.SubscriptionStatusInactive {
		t.Fatalf("expected inactive after reject, got %s", sub.Status)
	}

	// Re-opening is its own operation, not a "reject to pending".
	if err := svc.ReopenSubscription(context.Background(), 3, 7); err != nil {
		t.Fatalf("ReopenSubscription returned error: %v", err)
	}
	sub, _ = caches.Subscriptions.Get(7)
	if sub.Status != domain.SubscriptionStatusPending {
		t.Fatalf("expected pending after reopen, got %s", sub.Status)
	}
}

func TestActivateDeactivateOverride(t *testing.T) {
	stub := subscriptionStub()
	stub.subs[0].Status = domain.SubscriptionStatusActive
	svc, caches := newTestService(stub)
	caches.Subscriptions.ReplaceAll(stub.subs)

	if err := svc.DeactivateSubscription(context.Background(), 3, 7); err != nil {
		t.Fatalf("DeactivateSubscription returned error: %v", err)
	}
	sub, _ := caches.Subscriptions.Get(7)
	if sub.Status != domain.SubscriptionStatusInactive {
		t.Fatalf("expected inactive, got %s", sub.Status)
	}

	if err := svc.ActivateSubscription(context.Background(), 3, 7); err != nil {
		t.Fatalf("ActivateSubscription returned error: %v", err)
	}
	sub, _ = caches.Subscriptions.Get(7)
	if sub.Status != domain.SubscriptionStatusActive {
		t.Fatalf("expected active, got %s", sub.Status)
	}
}

func TestSetTokenBalance_RequiresActiveTokenPlan(t *testing.T) {
	stub := subscriptionStub()
	stub.subs[0].Status = domain.SubscriptionStatusActive
	stub.subs[1].Status = domain.SubscriptionStatusActive
	svc, caches := newTestService(stub)
	caches.Subscriptions.ReplaceAll(stub.subs)

	if err := svc.SetTokenBalance(context.Background(), 3, 7, 12); err != nil {
		t.Fatalf("SetTokenBalance returned error: %v", err)
	}
	sub, _ := caches.Subscriptions.Get(7)
	if sub.UserTokens != 12 {
		t.Fatalf("expected balance 12, got %d", sub.UserTokens)
	}

	// Unlimited plans carry no balance to edit.
	err := svc.SetTokenBalance(context.Background(), 4, 8, 12)
	var sErr *StateError
	if !errors.As(err, &sErr) {
		t.Fatalf("expected StateError for unlimited plan, got %v", err)
	}

	// Pending subscriptions are not editable either.
	caches.Subscriptions.Patch(7, func(d *domain.Subscription) { d.Status = domain.SubscriptionStatusPending })
	if err := svc.SetTokenBalance(context.Background(), 3, 7, 15); err == nil {
		t.Fatal("expected StateError for a pending subscription")
	}
}

func TestSetTokenBalance_RejectsNegative(t *testing.T) {
	stub := subscriptionStub()
	svc, _ := newTestService(stub)

	err := svc.SetTokenBalance(context.Background(), 3, 7, -1)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(stub.subUpdates) != 0 {
		t.Fatal("expected no network call for a negative balance")
	}
}

func TestSetTokenBalance_LoadsCacheOnDemand(t *testing.T) {
	stub := subscriptionStub()
	stub.subs[0].Status = domain.SubscriptionStatusActive
	svc, _ := newTestService(stub)
	// Cache intentionally empty: the service must refetch before judging.

	if err := svc.SetTokenBalance(context.Background(), 3, 7, 10); err != nil {
		t.Fatalf("SetTokenBalance returned error: %v", err)
	}
	if stub.listSubsCalls == 0 {
		t.Fatal("expected an on-demand subscription refetch")
	}
}
