/**
 * @description
 * This file defines the Subscription entity (a token-plan request) and the tagged
 * transition operations an admin may apply to it. The legacy client folded
 * approve, reject, re-open and token edits into one stringly-typed call; here
 * each intent is a named operation validated against the current status before
 * anything is sent to the remote service.
 *
 * Token counts are only meaningful for the 20_token plan. Unlimited plans carry
 * no numeric balance and must never have one written onto them.
 */

package domain

import "time"

// SubscriptionPlan enumerates the token plans an employee can request.
type SubscriptionPlan string

const (
	SubscriptionPlan20Token   SubscriptionPlan = "20_token"
	SubscriptionPlanUnlimited SubscriptionPlan = "unlimited_token"
)

// TokenBased reports whether the plan carries a numeric token balance.
func (p SubscriptionPlan) TokenBased() bool { return p == SubscriptionPlan20Token }

// SubscriptionStatus enumerates the approval states of a subscription request.
type SubscriptionStatus string

const (
	SubscriptionStatusPending  SubscriptionStatus = "pending"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
)

// Valid reports whether the status is one of the known values.
func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionStatusPending, SubscriptionStatusActive, SubscriptionStatusInactive:
		return true
	}
	return false
}

// SubscriptionOp is a tagged admin transition over a subscription request.
type SubscriptionOp string

const (
	SubscriptionOpApprove    SubscriptionOp = "approve"    // pending -> active
	SubscriptionOpReject     SubscriptionOp = "reject"     // pending -> inactive
	SubscriptionOpReopen     SubscriptionOp = "reopen"     // active|inactive -> pending
	SubscriptionOpActivate   SubscriptionOp = "activate"   // inactive -> active (manual override)
	SubscriptionOpDeactivate SubscriptionOp = "deactivate" // active -> inactive (manual override)
)

// Target returns the status the operation transitions into.
func (op SubscriptionOp) Target() SubscriptionStatus {
	switch op {
	case SubscriptionOpApprove, SubscriptionOpActivate:
		return SubscriptionStatusActive
	case SubscriptionOpReject, SubscriptionOpDeactivate:
		return SubscriptionStatusInactive
	case SubscriptionOpReopen:
		return SubscriptionStatusPending
	}
	return ""
}

// AllowedSubscriptionOp reports whether the operation may be applied to a
// subscription currently in the given status.
func AllowedSubscriptionOp(current SubscriptionStatus, op SubscriptionOp) bool {
	switch op {
	case SubscriptionOpApprove, SubscriptionOpReject:
		return current == SubscriptionStatusPending
	case SubscriptionOpReopen:
		return current == SubscriptionStatusActive || current == SubscriptionStatusInactive
	case SubscriptionOpActivate:
		return current == SubscriptionStatusInactive
	case SubscriptionOpDeactivate:
		return current == SubscriptionStatusActive
	}
	return false
}

// Subscription represents an employee's token-plan request, scoped to a user.
type Subscription struct {
	ID          int64              `json:"subscriptions_id"`
	UserID      int64              `json:"user_id"`
	Plan        SubscriptionPlan   `json:"subscription"`
	Status      SubscriptionStatus `json:"status"`
	UserTokens  int64              `json:"user_token"` // meaningful for 20_token only
	RequestedAt time.Time          `json:"requested_at"`
}

// SubscriptionUpdate carries an admin transition to the remote service. Tokens is
// nil when the balance should be left untouched.
type SubscriptionUpdate struct {
	UserID         int64
	SubscriptionID int64
	Status         SubscriptionStatus
	Tokens         *int64
}
