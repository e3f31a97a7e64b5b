/**
 * @description
 * Rating endpoints of the remote job service, keyed by (job, user). The create
 * and update verbs are distinct (POST vs PUT); existence is probed with GET,
 * which reports absence as a successful envelope with empty data or as a 404.
 * Rating values travel as strings on the wire, per the legacy call sites.
 */

package marketclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/workbridge/client-gateway/internal/domain"
)

type ratingWire struct {
	JobID  FlexInt `json:"job_id"`
	UserID FlexInt `json:"user_id"`
	Rating FlexInt `json:"rating"`
}

type ratingPayload struct {
	Rating string `json:"rating"`
}

func ratingPath(jobID, userID int64) string {
	return fmt.Sprintf("/jobs/user-applied/rate/%d/%d", jobID, userID)
}

// GetRating fetches the rating for a (job, user) pair. Absence is reported as
// ErrRatingNotFound rather than an empty value, so callers can branch the
// create-vs-update decision on it explicitly.
func (c *Client) GetRating(ctx context.Context, jobID, userID int64) (*domain.Rating, error) {
	var wire ratingWire
	err := c.do(ctx, "GET", ratingPath(jobID, userID), nil, &wire)
	if err != nil {
		if errors.Is(err, errNoData) {
			return nil, ErrRatingNotFound
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	rating := &domain.Rating{
		JobID:  wire.JobID.Int64(),
		UserID: wire.UserID.Int64(),
		Value:  int(wire.Rating.Int64()),
	}
	if rating.JobID == 0 {
		rating.JobID = jobID
	}
	if rating.UserID == 0 {
		rating.UserID = userID
	}
	return rating, nil
}

// SubmitRating creates a rating for a pair that has none yet.
func (c *Client) SubmitRating(ctx context.Context, jobID, userID int64, value int) error {
	return c.do(ctx, "POST", ratingPath(jobID, userID), ratingPayload{Rating: strconv.Itoa(value)}, nil)
}

// UpdateRating replaces the existing rating's value.
func (c *Client) UpdateRating(ctx context.Context, jobID, userID int64, value int) error {
	return c.do(ctx, "PUT", ratingPath(jobID, userID), ratingPayload{Rating: strconv.Itoa(value)}, nil)
}

// DeleteRating removes the rating for a pair. Administrative correction path.
func (c *Client) DeleteRating(ctx context.Context, jobID, userID int64) error {
	return c.do(ctx, "DELETE", ratingPath(jobID, userID), nil, nil)
}
