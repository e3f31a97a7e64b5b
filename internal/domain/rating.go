/**
 * @description
 * This file defines the Rating entity: a 1..5 integer score an employer assigns
 * to a hired applicant after the job has ended. At most one rating exists per
 * (job, user) pair; a second write for the same pair is an update, never a
 * duplicate. Fractional averages shown elsewhere in the product are computed by
 * the remote service and are not part of this model.
 */

package domain

// Bounds of the valid rating scale, inclusive.
const (
	RatingMin = 1
	RatingMax = 5
)

// ValidRatingValue reports whether v is inside the 1..5 scale.
func ValidRatingValue(v int) bool {
	return v >= RatingMin && v <= RatingMax
}

// Rating is a performance score keyed by (JobID, UserID).
type Rating struct {
	JobID  int64 `json:"job_id"`
	UserID int64 `json:"user_id"`
	Value  int   `json:"rating"`
}

// RatingEligible reports whether a rating may be written for the given job and
// application: the job must have ended and the applicant must have been hired.
func RatingEligible(job *Job, app *Application) bool {
	if job == nil || !job.Ended() {
		return false
	}
	return app != nil && app.Status == ApplicationStatusAccepted
}
