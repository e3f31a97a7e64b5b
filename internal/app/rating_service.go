/**
 * @description
 * The rating subsystem. A rating is a 1..5 integer keyed by (job, user), written
 * only after the job has ended and only for a hired applicant. The write
 * protocol is check-then-act: probe for an existing rating, then update or
 * create. Within this process the sequence is serialized per key through a
 * singleflight group, so a double submission collapses into one write and two
 * sequential rates yield exactly one stored record. Cross-session races remain
 * possible; the remote service is the final authority on uniqueness.
 */

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/workbridge/client-gateway/internal/domain"
	"github.com/workbridge/client-gateway/pkg/marketclient"
)

// Rate records or revises the score for a hired applicant on an ended job.
func (s *Service) Rate(ctx context.Context, jobID, userID int64, value int) error {
	if !domain.ValidRatingValue(value) {
		return newValidationError(fmt.Sprintf("rating must be between %d and %d", domain.RatingMin, domain.RatingMax), "rating")
	}

	if job, ok := s.caches.Jobs.Get(jobID); ok {
		if !job.Ended() {
			return newStateError("job", jobID, "ratings open once the job has ended")
		}
		// An uncached application is left for the service to judge.
		if app, found := s.caches.Applications.GetByJobAndUser(jobID, userID); found {
			if !domain.RatingEligible(&job, &app) {
				return newStateError("application", app.ID, "only hired applicants can be rated")
			}
		}
	}

	key := fmt.Sprintf("%d:%d", jobID, userID)
	_, err, _ := s.ratingWrites.Do(key, func() (interface{}, error) {
		existing, err := s.api.GetRating(ctx, jobID, userID)
		if err != nil && !errors.Is(err, marketclient.ErrRatingNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, s.api.UpdateRating(ctx, jobID, userID, value)
		}
		return nil, s.api.SubmitRating(ctx, jobID, userID, value)
	})
	return err
}

// DeleteRating removes the rating for a pair; administrative correction path.
func (s *Service) DeleteRating(ctx context.Context, jobID, userID int64) error {
	return s.api.DeleteRating(ctx, jobID, userID)
}
