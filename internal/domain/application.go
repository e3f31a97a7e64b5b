/**
 * @description
 * This file defines the Application entity and its status state machine. An
 * application starts as 'applied' and may be moved by the employer (or an admin)
 * to 'accepted' or 'rejected' while the parent job is still active. Both outcomes
 * are terminal from the client's perspective; there is no un-hire path.
 *
 * TransitionAllowed is the client-side gate consulted before any status update is
 * sent to the remote service. The service remains the final authority.
 */

package domain

import "time"

// ApplicationStatus enumerates the states of a job application.
type ApplicationStatus string

const (
	ApplicationStatusApplied  ApplicationStatus = "applied"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether the status is one of the known values.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the status can no longer change client-side.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// Applicant is the snapshot of the applying user carried on each application.
type Applicant struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	Contact        string `json:"contact,omitempty"`
}

// Application represents a user's request to fill a job. Its composite identity
// is (JobID, UserID); the remote service additionally assigns a stable ID.
type Application struct {
	ID        int64             `json:"id"`
	JobID     int64             `json:"job_id"`
	UserID    int64             `json:"user_id"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"application_date"`
	Applicant Applicant         `json:"applicant"`
}

// TransitionAllowed reports whether an application may move to the target status
// given the state of its parent job. Status is mutable only while the job is
// active, only from 'applied', and only toward a terminal outcome.
func TransitionAllowed(job *Job, app *Application, target ApplicationStatus) bool {
	if job == nil || !job.Active() {
		return false
	}
	if app == nil || app.Status != ApplicationStatusApplied {
		return false
	}
	return target.Terminal()
}
