/**
 * @description
 * The application state machine: applied -> accepted | rejected, gated on the
 * parent job still being active. The legacy client only disabled the button for
 * ended jobs; here the transition is hard-blocked before the network call as
 * well, with the remote service remaining the final gate.
 *
 * The remote service has no per-job application filter, so JobApplications
 * fetches everything visible to the caller and filters on canonical integer
 * ids. That is O(total applications) per call and acceptable only because this
 * is a per-operator client convenience.
 */

package app

import (
	"context"

	"github.com/workbridge/client-gateway/internal/domain"
)

// UpdateApplicationStatus moves an application to accepted or rejected. On
// success the application cache is rebuilt from the server rather than patched,
// because applicants_count and status badges are server-computed. On failure
// the caches are untouched.
func (s *Service) UpdateApplicationStatus(ctx context.Context, applicationID int64, target domain.ApplicationStatus, jobID int64) error {
	if !target.Terminal() {
		return newValidationError("target status must be accepted or rejected", "status")
	}

	if job, ok := s.caches.Jobs.Get(jobID); ok {
		if !job.Active() {
			return newStateError("job", jobID, "applications are frozen once the job is no longer active")
		}
		if app, ok := s.caches.Applications.Get(applicationID); ok {
			if !domain.TransitionAllowed(&job, &app, target) {
				return newStateError("application", applicationID, "transition from "+string(app.Status)+" to "+string(target)+" is not allowed")
			}
		}
	}

	if err := s.api.UpdateApplicationStatus(ctx, applicationID, target, jobID); err != nil {
		return err
	}
	s.reconcile(ctx, "applications", s.RefreshApplications)
	s.reconcile(ctx, "jobs", s.RefreshJobs)
	return nil
}

// JobApplications returns the applications for one job. The full caller-visible
// list is fetched, cached, and filtered client-side by exact job id.
func (s *Service) JobApplications(ctx context.Context, jobID int64) ([]domain.Application, error) {
	apps, err := s.api.ListApplications(ctx)
	if err != nil {
		return nil, err
	}
	s.caches.Applications.ReplaceAll(apps)

	filtered := make([]domain.Application, 0)
	for _, app := range apps {
		if app.JobID == jobID {
			filtered = append(filtered, app)
		}
	}
	return filtered, nil
}
