/**
 * @description
 * Admin user-listing endpoint of the remote job service; feeds the Users cache
 * behind the admin views.
 */

package marketclient

import (
	"context"
	"errors"

	"github.com/workbridge/client-gateway/internal/domain"
)

type userWire struct {
	ID             FlexInt `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	ProfilePicture string  `json:"profile_picture"`
}

// ListUsers fetches every platform account (admin only).
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var wires []userWire
	if err := c.do(ctx, "GET", "/admin/get-users", nil, &wires); err != nil {
		if errors.Is(err, errNoData) {
			return nil, nil
		}
		return nil, err
	}
	users := make([]domain.User, 0, len(wires))
	for _, w := range wires {
		users = append(users, domain.User{
			ID:             w.ID.Int64(),
			FirstName:      w.FirstName,
			LastName:       w.LastName,
			Username:       w.Username,
			Email:          w.Email,
			Role:           domain.Role(w.Role),
			ProfilePicture: w.ProfilePicture,
		})
	}
	return users, nil
}
