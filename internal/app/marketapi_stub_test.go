package app

import (
	"context"
	"fmt"

	"github.com/workbridge/client-gateway/internal/domain"
	"github.com/workbridge/client-gateway/pkg/marketclient"
)

// marketStub emulates the remote job service in memory. Mutations act on the
// stub's state so refetch-after-mutation behavior is observable, and call
// counters let tests assert that validation failures never reach the network.
type marketStub struct {
	jobs []domain.Job
	apps []domain.Application
	subs []domain.Subscription
	users []domain.User

	ratings map[string]*domain.Rating

	listJobsCalls        int
	createJobCalls       int
	updateJobCalls       int
	endJobCalls          int
	deleteJobCalls       int
	updateJobStatusCalls int
	lastJobStatus        domain.JobLifeCycle

	listAppsCalls        int
	updateAppStatusCalls int

	getRatingCalls    int
	submitRatingCalls int
	updateRatingCalls int
	deleteRatingCalls int

	listSubsCalls int
	subUpdates    []domain.SubscriptionUpdate

	updateAppStatusErr error
	endJobErr          error
}

func newMarketStub() *marketStub {
	return &marketStub{ratings: make(map[string]*domain.Rating)}
}

func ratingKey(jobID, userID int64) string { return fmt.Sprintf("%d:%d", jobID, userID) }

func (m *marketStub) ListJobs(ctx context.Context) ([]domain.Job, error) {
	m.listJobsCalls++
	return append([]domain.Job(nil), m.jobs...), nil
}

func (m *marketStub) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	for _, j := range m.jobs {
		if j.ID == id {
			job := j
			return &job, nil
		}
	}
	return nil, &marketclient.APIError{StatusCode: 404, Message: "job not found"}
}

func (m *marketStub) CreateJob(ctx context.Context, draft domain.JobDraft) (*domain.Job, error) {
	m.createJobCalls++
	job := domain.Job{
		ID:          int64(len(m.jobs) + 1),
		Title:       draft.Title,
		Description: draft.Description,
		Location:    draft.Location,
		Company:     draft.Company,
		Salary:      draft.Salary,
		Contact:     draft.Contact,
		Duration:    draft.Duration,
		Type:        draft.Type,
		LifeCycle:   domain.JobLifeCycleActive,
	}
	m.jobs = append(m.jobs, job)
	return &job, nil
}

func (m *marketStub) UpdateJob(ctx context.Context, id int64, draft domain.JobDraft) (*domain.Job, error) {
	m.updateJobCalls++
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs[i].Title = draft.Title
			m.jobs[i].Description = draft.Description
			m.jobs[i].Salary = draft.Salary
			job := m.jobs[i]
			return &job, nil
		}
	}
	return nil, &marketclient.APIError{StatusCode: 404, Message: "job not found"}
}

func (m *marketStub) DeleteJob(ctx context.Context, id int64) error {
	m.deleteJobCalls++
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return &marketclient.APIError{StatusCode: 404, Message: "job not found"}
}

func (m *marketStub) EndJob(ctx context.Context, id int64) error {
	m.endJobCalls++
	if m.endJobErr != nil {
		return m.endJobErr
	}
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs[i].LifeCycle = domain.JobLifeCycleEnded
			return nil
		}
	}
	return &marketclient.APIError{StatusCode: 404, Message: "job not found"}
}

func (m *marketStub) UpdateJobStatus(ctx context.Context, id int64, lifeCycle domain.JobLifeCycle) error {
	m.updateJobStatusCalls++
	m.lastJobStatus = lifeCycle
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs[i].LifeCycle = lifeCycle
			return nil
		}
	}
	return &marketclient.APIError{StatusCode: 404, Message: "job not found"}
}

func (m *marketStub) ListApplications(ctx context.Context) ([]domain.Application, error) {
	m.listAppsCalls++
	return append([]domain.Application(nil), m.apps...), nil
}

func (m *marketStub) UpdateApplicationStatus(ctx context.Context, applicationID int64, status domain.ApplicationStatus, jobID int64) error {
	m.updateAppStatusCalls++
	if m.updateAppStatusErr != nil {
		return m.updateAppStatusErr
	}
	for i := range m.apps {
		if m.apps[i].ID == applicationID {
			m.apps[i].Status = status
			return nil
		}
	}
	return &marketclient.APIError{StatusCode: 404, Message: "application not found"}
}

func (m *marketStub) GetRating(ctx context.Context, jobID, userID int64) (*domain.Rating, error) {
	m.getRatingCalls++
	if r, ok := m.ratings[ratingKey(jobID, userID)]; ok {
		rating := *r
		return &rating, nil
	}
	return nil, marketclient.ErrRatingNotFound
}

func (m *marketStub) SubmitRating(ctx context.Context, jobID, userID int64, value int) error {
	m.submitRatingCalls++
	m.ratings[ratingKey(jobID, userID)] = &domain.Rating{JobID: jobID, UserID: userID, Value: value}
	return nil
}

func (m *marketStub) UpdateRating(ctx context.Context, jobID, userID int64, value int) error {
	m.updateRatingCalls++
	key := ratingKey(jobID, userID)
	if _, ok := m.ratings[key]; !ok {
		return &marketclient.APIError{StatusCode: 404, Message: "rating not found"}
	}
	m.ratings[key] = &domain.Rating{JobID: jobID, UserID: userID, Value: value}
	return nil
}

func (m *marketStub) DeleteRating(ctx context.Context, jobID, userID int64) error {
	m.deleteRatingCalls++
	delete(m.ratings, ratingKey(jobID, userID))
	return nil
}

func (m *marketStub) ListSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	m.listSubsCalls++
	return append([]domain.Subscription(nil), m.subs...), nil
}

func (m *marketStub) UpdateUserSubscription(ctx context.Context, update domain.SubscriptionUpdate) error {
	m.subUpdates = append(m.subUpdates, update)
	for i := range m.subs {
		if m.subs[i].ID == update.SubscriptionID {
			m.subs[i].Status = update.Status
			if update.Tokens != nil && m.subs[i].Plan.TokenBased() {
				m.subs[i].UserTokens = *update.Tokens
			}
			return nil
		}
	}
	return &marketclient.APIError{StatusCode: 404, Message: "subscription not found"}
}

func (m *marketStub) ListUsers(ctx context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), m.users...), nil
}
