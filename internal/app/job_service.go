/**
 * @description
 * Job lifecycle operations: create, edit, end, delete, and the admin lifecycle
 * patch. Required-field validation happens before any network call; lifecycle
 * gating is judged against the cached snapshot through the single transition
 * authority in the domain package.
 *
 * EndJob (employer path, dedicated endpoint) and UpdateJobStatus (admin path,
 * generic patch) are intentionally distinct privilege paths. Both are validated
 * by domain.CanTransitionLifeCycle, so neither can express a transition the
 * other would forbid.
 */

package app

import (
	"context"
	"log"
	"strings"

	"github.com/workbridge/client-gateway/internal/domain"
)

// validateJobDraft collects the missing required fields. Company is optional.
func validateJobDraft(draft domain.JobDraft) []string {
	var missing []string
	if strings.TrimSpace(draft.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(draft.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(draft.Location) == "" {
		missing = append(missing, "location")
	}
	if draft.Salary <= 0 {
		missing = append(missing, "salary")
	}
	if strings.TrimSpace(draft.Contact) == "" {
		missing = append(missing, "contact")
	}
	if draft.Duration.IsZero() {
		missing = append(missing, "duration")
	}
	return missing
}

// Jobs returns the cached job listing.
func (s *Service) Jobs() []domain.Job { return s.caches.Jobs.List() }

// Job returns one cached job.
func (s *Service) Job(id int64) (domain.Job, bool) { return s.caches.Jobs.Get(id) }

// CreateJob validates the draft, posts it, appends the created job to the cache
// and reconciles with a full refetch (applicant counts are server-computed).
func (s *Service) CreateJob(ctx context.Context, draft domain.JobDraft) (*domain.Job, error) {
	if missing := validateJobDraft(draft); len(missing) > 0 {
		return nil, newValidationError("required fields missing", missing...)
	}
	if draft.Type != "" && !draft.Type.Valid() {
		return nil, newValidationError("unknown job type", "type")
	}

	created, err := s.api.CreateJob(ctx, draft)
	if err != nil {
		return nil, err
	}
	if created != nil {
		s.caches.Jobs.Upsert(*created)
	}
	s.reconcile(ctx, "jobs", s.RefreshJobs)
	return created, nil
}

// UpdateJob validates the draft, refuses edits to a job the cache knows has
// ended, and reconciles after a successful remote update.
func (s *Service) UpdateJob(ctx context.Context, id int64, draft domain.JobDraft) (*domain.Job, error) {
	if missing := validateJobDraft(draft); len(missing) > 0 {
		return nil, newValidationError("required fields missing", missing...)
	}
	if cached, ok := s.caches.Jobs.Get(id); ok && cached.Ended() {
		return nil, newStateError("job", id, "cannot edit an ended job")
	}

	updated, err := s.api.UpdateJob(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		s.caches.Jobs.Upsert(*updated)
	}
	s.reconcile(ctx, "jobs", s.RefreshJobs)
	return updated, nil
}

// EndJob transitions a job from active to ended. Confirmation is a UI concern.
// Open applications under the job are left for the service to reconcile; the
// refetch displays whatever it decided.
func (s *Service) EndJob(ctx context.Context, id int64) error {
	if cached, ok := s.caches.Jobs.Get(id); ok {
		if !domain.CanTransitionLifeCycle(cached.LifeCycle, domain.JobLifeCycleEnded) {
			return newStateError("job", id, "cannot end a job in state "+string(cached.LifeCycle))
		}
	}

	if err := s.api.EndJob(ctx, id); err != nil {
		return err
	}
	s.caches.Jobs.Patch(id, func(j *domain.Job) { j.LifeCycle = domain.JobLifeCycleEnded })
	s.reconcile(ctx, "jobs", s.RefreshJobs)
	return nil
}

// DeleteJob removes a job permanently. Referential safety for completed hires
// is delegated to the service.
func (s *Service) DeleteJob(ctx context.Context, id int64) error {
	if err := s.api.DeleteJob(ctx, id); err != nil {
		return err
	}
	s.caches.Jobs.Delete(id)
	s.reconcile(ctx, "jobs", s.RefreshJobs)
	return nil
}

// UpdateJobStatus is the admin lifecycle patch. A patch to the current state is
// a no-op; an impossible transition is refused before any network call.
func (s *Service) UpdateJobStatus(ctx context.Context, id int64, target domain.JobLifeCycle) error {
	if !target.Valid() {
		return newValidationError("unknown lifecycle state", "life_cycle")
	}
	if cached, ok := s.caches.Jobs.Get(id); ok {
		if cached.LifeCycle == target {
			log.Printf("level=info component=orchestrator op=update_job_status job_id=%d msg=\"already in target state; skipping\" state=%s", id, target)
			return nil
		}
		if !domain.CanTransitionLifeCycle(cached.LifeCycle, target) {
			return newStateError("job", id, "cannot transition from "+string(cached.LifeCycle)+" to "+string(target))
		}
	}

	if err := s.api.UpdateJobStatus(ctx, id, target); err != nil {
		return err
	}
	s.caches.Jobs.Patch(id, func(j *domain.Job) { j.LifeCycle = target })
	s.reconcile(ctx, "jobs", s.RefreshJobs)
	return nil
}
