/**
 * @description
 * Admin subscription endpoints of the remote job service. The service exposes a
 * single combined update endpoint; the split between approve, reject, re-open
 * and token edits lives in the orchestration layer, not on the wire.
 */

package marketclient

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/workbridge/client-gateway/internal/domain"
)

type subscriptionWire struct {
	ID           FlexInt `json:"subscriptions_id"`
	UserID       FlexInt `json:"user_id"`
	Subscription string  `json:"subscription"`
	Status       string  `json:"status"`
	UserToken    FlexInt `json:"user_token"`
	RequestedAt  string  `json:"requested_at"`
}

func (w subscriptionWire) toDomain() domain.Subscription {
	sub := domain.Subscription{
		ID:         w.ID.Int64(),
		UserID:     w.UserID.Int64(),
		Plan:       domain.SubscriptionPlan(w.Subscription),
		Status:     domain.SubscriptionStatus(w.Status),
		UserTokens: w.UserToken.Int64(),
	}
	if w.RequestedAt != "" {
		if at, err := time.Parse(time.RFC3339, w.RequestedAt); err == nil {
			sub.RequestedAt = at
		}
	}
	return sub
}

// ListSubscriptions fetches every subscription request (admin only).
func (c *Client) ListSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	var wires []subscriptionWire
	if err := c.do(ctx, "GET", "/admin/get-subscriptions", nil, &wires); err != nil {
		if errors.Is(err, errNoData) {
			return nil, nil
		}
		return nil, err
	}
	subs := make([]domain.Subscription, 0, len(wires))
	for _, w := range wires {
		subs = append(subs, w.toDomain())
	}
	return subs, nil
}

// UpdateUserSubscription applies an admin transition. token_count travels as a
// string and is omitted entirely when no balance change is intended.
func (c *Client) UpdateUserSubscription(ctx context.Context, update domain.SubscriptionUpdate) error {
	payload := struct {
		UserID          int64  `json:"user_id"`
		SubscriptionsID int64  `json:"subscriptions_id"`
		Status          string `json:"status"`
		TokenCount      string `json:"token_count,omitempty"`
	}{
		UserID:          update.UserID,
		SubscriptionsID: update.SubscriptionID,
		Status:          string(update.Status),
	}
	if update.Tokens != nil {
		payload.TokenCount = strconv.FormatInt(*update.Tokens, 10)
	}
	return c.do(ctx, "POST", "/admin/update_user_subscription", payload, nil)
}
