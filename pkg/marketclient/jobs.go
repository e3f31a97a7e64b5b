/**
 * @description
 * Job endpoints of the remote job service: CRUD, the employer end-job transition
 * and the admin lifecycle patch. Outbound payloads mirror the legacy API, which
 * expects salary as a string and the duration end date as YYYY-MM-DD.
 */

package marketclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/workbridge/client-gateway/internal/domain"
)

const durationDateLayout = "2006-01-02"

// jobWire is the remote representation of a job.
type jobWire struct {
	ID              FlexInt `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	Company         string  `json:"company"`
	Salary          FlexInt `json:"salary"`
	Contact         string  `json:"contact"`
	Duration        string  `json:"duration"`
	Type            string  `json:"type"`
	LifeCycle       string  `json:"life_cycle"`
	MaxApplicants   FlexInt `json:"max_applicants"`
	ApplicantsCount FlexInt `json:"applicants_count"`
	EmployerID      FlexInt `json:"employer_id"`
}

func (w jobWire) toDomain() domain.Job {
	job := domain.Job{
		ID:              w.ID.Int64(),
		Title:           w.Title,
		Description:     w.Description,
		Location:        w.Location,
		Company:         w.Company,
		Salary:          w.Salary.Int64(),
		Contact:         w.Contact,
		Type:            domain.JobType(w.Type),
		LifeCycle:       domain.JobLifeCycle(w.LifeCycle),
		MaxApplicants:   int(w.MaxApplicants.Int64()),
		ApplicantsCount: int(w.ApplicantsCount.Int64()),
		EmployerID:      w.EmployerID.Int64(),
	}
	if w.Duration != "" {
		if end, err := time.Parse(durationDateLayout, w.Duration); err == nil {
			job.Duration = end
		}
	}
	return job
}

// jobDraftWire is the outbound job payload. Salary travels as a string; the
// legacy service coerces it server-side.
type jobDraftWire struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Company       string `json:"company,omitempty"`
	Salary        string `json:"salary"`
	Contact       string `json:"contact"`
	Duration      string `json:"duration"`
	Type          string `json:"type"`
	MaxApplicants string `json:"max_applicants,omitempty"`
}

func draftToWire(draft domain.JobDraft) jobDraftWire {
	wire := jobDraftWire{
		Title:       draft.Title,
		Description: draft.Description,
		Location:    draft.Location,
		Company:     draft.Company,
		Salary:      strconv.FormatInt(draft.Salary, 10),
		Contact:     draft.Contact,
		Duration:    draft.Duration.Format(durationDateLayout),
		Type:        string(draft.Type),
	}
	if draft.MaxApplicants > 0 {
		wire.MaxApplicants = strconv.Itoa(draft.MaxApplicants)
	}
	return wire
}

// ListJobs fetches every job visible to the caller.
func (c *Client) ListJobs(ctx context.Context) ([]domain.Job, error) {
	var wires []jobWire
	if err := c.do(ctx, "GET", "/jobs", nil, &wires); err != nil {
		if errors.Is(err, errNoData) {
			return nil, nil
		}
		return nil, err
	}
	jobs := make([]domain.Job, 0, len(wires))
	for _, w := range wires {
		jobs = append(jobs, w.toDomain())
	}
	return jobs, nil
}

// GetJob fetches a single job by id.
func (c *Client) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	var wire jobWire
	if err := c.do(ctx, "GET", fmt.Sprintf("/jobs/%d", id), nil, &wire); err != nil {
		return nil, err
	}
	job := wire.toDomain()
	return &job, nil
}

// CreateJob posts a new job and returns the service's record of it.
func (c *Client) CreateJob(ctx context.Context, draft domain.JobDraft) (*domain.Job, error) {
	var wire jobWire
	err := c.do(ctx, "POST", "/jobs", draftToWire(draft), &wire)
	if err != nil {
		if errors.Is(err, errNoData) {
			return nil, nil
		}
		return nil, err
	}
	job := wire.toDomain()
	return &job, nil
}

// UpdateJob edits an existing job.
func (c *Client) UpdateJob(ctx context.Context, id int64, draft domain.JobDraft) (*domain.Job, error) {
	var wire jobWire
	err := c.do(ctx, "PUT", fmt.Sprintf("/jobs/%d", id), draftToWire(draft), &wire)
	if err != nil {
		if errors.Is(err, errNoData) {
			return nil, nil
		}
		return nil, err
	}
	job := wire.toDomain()
	return &job, nil
}

// DeleteJob removes a job. Irreversible.
func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/jobs/%d", id), nil, nil)
}

// EndJob transitions a job from active to ended. The service reconciles any
// still-open applications; the client never bulk-transitions them.
func (c *Client) EndJob(ctx context.Context, id int64) error {
	return c.do(ctx, "POST", fmt.Sprintf("/jobs/%d/end", id), nil, nil)
}

// UpdateJobStatus patches a job's lifecycle state (admin privilege path).
func (c *Client) UpdateJobStatus(ctx context.Context, id int64, lifeCycle domain.JobLifeCycle) error {
	payload := struct {
		LifeCycle string `json:"life_cycle"`
	}{LifeCycle: string(lifeCycle)}
	return c.do(ctx, "PATCH", fmt.Sprintf("/jobs/%d/status", id), payload, nil)
}
